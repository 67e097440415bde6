package sceneconfig

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"scene-engine/internal/anim"
	"scene-engine/internal/camera"
	"scene-engine/internal/clock"
	"scene-engine/internal/input"
	"scene-engine/internal/orbit"
)

// DefaultPath is where the executable looks for a scene file, relative to the working directory.
const DefaultPath = "config/scene.yaml"

//go:embed default.yaml
var defaultYAML []byte

var (
	ErrUnknownProfile = errors.New("unknown animation profile")
	ErrDuplicateID    = errors.New("duplicate entity id")
	ErrNoCollider     = errors.New("selectable entity needs a collider radius")
	ErrKeyConflict    = errors.New("key bound to two directions")
)

// Config is the scene description file.
type Config struct {
	Camera   CameraConfig        `yaml:"camera"`
	Orbit    OrbitConfig         `yaml:"orbit"`
	Clock    ClockConfig         `yaml:"clock"`
	Keys     map[string][]string `yaml:"keys"`
	Entities []EntityConfig      `yaml:"entities"`
	Sections map[string]Section  `yaml:"sections"`
}

type CameraConfig struct {
	Position          [3]float64 `yaml:"position"`
	Target            [3]float64 `yaml:"target"`
	Fov               float64    `yaml:"fov"`
	MoveSpeed         float64    `yaml:"move_speed"`
	NormalizeDiagonal bool       `yaml:"normalize_diagonal"`
}

type OrbitConfig struct {
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
	PanSpeed    float64 `yaml:"pan_speed"`
	Damping     float64 `yaml:"damping"`
}

type ClockConfig struct {
	MaxStep time.Duration `yaml:"max_step"`
}

// EntityConfig describes one entity, or Count entities when Count > 1 (orbit rings and
// particle fields); expanded ids get a "-<slot>" suffix.
type EntityConfig struct {
	ID             string     `yaml:"id"`
	Profile        string     `yaml:"profile"`
	Position       [3]float64 `yaml:"position"`
	Yaw            float64    `yaml:"yaw"`
	Seed           float64    `yaml:"seed"`
	Slot           int        `yaml:"slot"`
	Count          int        `yaml:"count"`
	ColliderRadius float64    `yaml:"collider_radius"`
	Selectable     bool       `yaml:"selectable"`
	Shape          string     `yaml:"shape"`
	Size           [3]float64 `yaml:"size"`
	Color          string     `yaml:"color"`
	Label          string     `yaml:"label"`
	Params         Params     `yaml:"params"`
}

type Params struct {
	Amplitude     float64 `yaml:"amplitude"`
	Omega         float64 `yaml:"omega"`
	SpinRate      float64 `yaml:"spin_rate"`
	TiltAmp       float64 `yaml:"tilt_amp"`
	TiltRate      float64 `yaml:"tilt_rate"`
	BaseIntensity float64 `yaml:"base_intensity"`
	PulseRate     float64 `yaml:"pulse_rate"`
	PulseDelta    float64 `yaml:"pulse_delta"`
	Slots         int     `yaml:"slots"`
	Radius        float64 `yaml:"radius"`
	Height        float64 `yaml:"height"`
	OrbitRate     float64 `yaml:"orbit_rate"`
	RadiusAmp     float64 `yaml:"radius_amp"`
	RadiusRate    float64 `yaml:"radius_rate"`
	Scale         float64 `yaml:"scale"`
}

// Section is the overlay content shown when a selectable entity is clicked.
type Section struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Visual is how the renderer draws an entity.
type Visual struct {
	Shape string
	Size  mgl64.Vec3
	Color string
	Label string
}

// Scene is a Config turned into engine values.
type Scene struct {
	Entities []*anim.Entity
	Visuals  map[anim.ID]Visual
}

// Default returns the embedded scene.
func Default() (*Config, error) {
	return Parse(defaultYAML)
}

// Load reads and validates the scene file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, falling back to the embedded scene when path is missing or
// invalid. The returned error explains the fallback and is nil when path loaded.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	def, derr := Default()
	if derr != nil {
		return nil, fmt.Errorf("embedded scene: %w", derr)
	}
	return def, err
}

// Parse decodes and validates YAML scene data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene config: %w", err)
	}
	if _, err := cfg.Build(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Build expands entity groups and converts the config to engine entities.
func (c *Config) Build() (*Scene, error) {
	sc := &Scene{Visuals: make(map[anim.ID]Visual)}
	seen := make(map[anim.ID]bool)
	for i, ec := range c.Entities {
		if ec.ID == "" {
			return nil, fmt.Errorf("entity %d: missing id", i)
		}
		profile, ok := anim.ParseProfile(ec.Profile)
		if !ok {
			return nil, fmt.Errorf("entity %q: %w: %q", ec.ID, ErrUnknownProfile, ec.Profile)
		}
		if ec.Selectable && ec.ColliderRadius <= 0 {
			return nil, fmt.Errorf("entity %q: %w", ec.ID, ErrNoCollider)
		}
		count := max(ec.Count, 1)
		for n := 0; n < count; n++ {
			id := anim.ID(ec.ID)
			slot := ec.Slot
			if count > 1 {
				id = anim.ID(fmt.Sprintf("%s-%d", ec.ID, n))
				slot = n
			}
			if seen[id] {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
			}
			seen[id] = true
			sc.Entities = append(sc.Entities, ec.entity(id, profile, slot, count))
			sc.Visuals[id] = Visual{Shape: ec.Shape, Size: mgl64.Vec3(ec.Size), Color: ec.Color, Label: ec.Label}
		}
	}
	return sc, nil
}

func (ec EntityConfig) entity(id anim.ID, profile anim.Profile, slot, count int) *anim.Entity {
	p := ec.Params
	if profile == anim.Orbit && p.Slots == 0 {
		p.Slots = count
	}
	return &anim.Entity{
		ID:             id,
		Base:           mgl64.Vec3(ec.Position),
		Seed:           ec.Seed,
		Profile:        profile,
		ColliderRadius: ec.ColliderRadius,
		Slot:           slot,
		BaseYaw:        ec.Yaw,
		Selectable:     ec.Selectable,
		Params: anim.Params{
			Amplitude:     p.Amplitude,
			Omega:         p.Omega,
			SpinRate:      p.SpinRate,
			TiltAmp:       p.TiltAmp,
			TiltRate:      p.TiltRate,
			BaseIntensity: p.BaseIntensity,
			PulseRate:     p.PulseRate,
			PulseDelta:    p.PulseDelta,
			Slots:         p.Slots,
			Radius:        p.Radius,
			Height:        p.Height,
			OrbitRate:     p.OrbitRate,
			RadiusAmp:     p.RadiusAmp,
			RadiusRate:    p.RadiusRate,
			Scale:         p.Scale,
		},
	}
}

// KeyMap converts the keys section. An empty section gives the W/S/A/D default. A key
// may appear only under one direction.
func (c *Config) KeyMap() (input.KeyMap, error) {
	if len(c.Keys) == 0 {
		return input.DefaultKeyMap(), nil
	}
	km := make(input.KeyMap)
	for dirName, keys := range c.Keys {
		dir, err := input.ParseDirection(dirName)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		for _, name := range keys {
			k, err := input.ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("keys.%s: %w", dirName, err)
			}
			if prev, ok := km[k]; ok && prev != dir {
				return nil, fmt.Errorf("keys: %w: %q is %s and %s", ErrKeyConflict, name, prev, dir)
			}
			km[k] = dir
		}
	}
	return km, nil
}

// CameraState returns the initial camera pose.
func (c *Config) CameraState() camera.State {
	return camera.State{
		Position: mgl64.Vec3(c.Camera.Position),
		Target:   mgl64.Vec3(c.Camera.Target),
		Up:       mgl64.Vec3{0, 1, 0},
	}
}

// RigOptions returns the free-move options.
func (c *Config) RigOptions() camera.Options {
	return camera.Options{Speed: c.Camera.MoveSpeed, NormalizeDiagonal: c.Camera.NormalizeDiagonal}
}

// OrbitSettings returns the orbit-control settings; zero fields fall back to orbit defaults.
func (c *Config) OrbitSettings() orbit.Settings {
	return orbit.Settings{
		MinDistance: c.Orbit.MinDistance,
		MaxDistance: c.Orbit.MaxDistance,
		RotateSpeed: c.Orbit.RotateSpeed,
		ZoomSpeed:   c.Orbit.ZoomSpeed,
		PanSpeed:    c.Orbit.PanSpeed,
		Damping:     c.Orbit.Damping,
	}
}

// MaxStep returns the clock step cap.
func (c *Config) MaxStep() time.Duration {
	if c.Clock.MaxStep <= 0 {
		return clock.DefaultMaxStep
	}
	return c.Clock.MaxStep
}

// Section returns the overlay content for id.
func (c *Config) Section(id anim.ID) (Section, bool) {
	s, ok := c.Sections[string(id)]
	return s, ok
}
