package engineconfig

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name; prefs live in the platform's per-user data dir.
const AppName = "scene_engine"

const (
	prefsObject   = "prefs"
	prefsProperty = "engine"
)

// Prefs holds engine-only preferences (debug overlays, grid). Persisted across runs.
// Scene state is never persisted.
type Prefs struct {
	GridVisible bool `yaml:"grid_visible"`
	ShowFPS     bool `yaml:"show_fps"`
	ShowMode    bool `yaml:"show_mode"`
}

// Default returns default engine preferences (grid and mode indicator on, FPS off).
func Default() Prefs {
	return Prefs{
		GridVisible: true,
		ShowFPS:     false,
		ShowMode:    true,
	}
}

// Store loads and saves Prefs through gdata. A Store without a gdata manager keeps prefs
// in memory only.
type Store struct {
	data  *gdata.Manager
	prefs Prefs
}

// Open opens the per-user prefs store. On failure it still returns a usable memory-only
// store together with the error.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("open prefs storage: %w", err)
	}
	s := NewStore(m)
	return s, s.Load()
}

// NewStore returns a store with default prefs over m, which may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{data: m, prefs: Default()}
}

// Load replaces the current prefs with the saved ones. Missing or unreadable prefs leave
// the defaults in place; unreadable ones are reported.
func (s *Store) Load() error {
	s.prefs = Default()
	if s.data == nil || !s.data.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	raw, err := s.data.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}
	p := Default()
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("decode prefs: %w", err)
	}
	s.prefs = p
	return nil
}

// Save writes the current prefs. It is a no-op for memory-only stores.
func (s *Store) Save() error {
	if s.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := s.data.SaveObjectProp(prefsObject, prefsProperty, raw); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// Prefs returns the current prefs.
func (s *Store) Prefs() Prefs {
	return s.prefs
}

// Update applies fn to the prefs and saves them.
func (s *Store) Update(fn func(*Prefs)) error {
	fn(&s.prefs)
	return s.Save()
}

// Persistent reports whether prefs survive a restart.
func (s *Store) Persistent() bool {
	return s.data != nil
}
