package sceneconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-engine/internal/anim"
	"scene-engine/internal/input"
)

func TestDefaultSceneBuilds(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	sc, err := cfg.Build()
	require.NoError(t, err)

	set, err := anim.NewSet(sc.Entities...)
	require.NoError(t, err)
	assert.ElementsMatch(t, []anim.ID{"central", "home", "projects", "skills", "contact"}, set.Selectable())

	for _, id := range set.Selectable() {
		_, ok := cfg.Section(id)
		assert.True(t, ok, "section for %s", id)
	}

	home, ok := set.Lookup("home")
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{-8, 0, -8}, home.Base)
	assert.Equal(t, "#00d4ff", sc.Visuals["home"].Color)

	assert.Equal(t, mgl64.Vec3{0, 15, 25}, cfg.CameraState().Position)
	assert.Equal(t, 100*time.Millisecond, cfg.MaxStep())
	assert.Equal(t, 50.0, cfg.OrbitSettings().MaxDistance)
}

func TestGroupsExpandIntoSlots(t *testing.T) {
	cfg, err := Parse([]byte(`
entities:
  - id: ring
    profile: orbit
    count: 3
    params: {radius: 2}
`))
	require.NoError(t, err)

	sc, err := cfg.Build()
	require.NoError(t, err)
	require.Len(t, sc.Entities, 3)
	for i, e := range sc.Entities {
		assert.Equal(t, i, e.Slot)
		assert.Equal(t, 3, e.Params.Slots)
	}
	assert.Equal(t, anim.ID("ring-2"), sc.Entities[2].ID)
}

func TestParseRejectsBadEntities(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "unknown profile",
			yaml: "entities:\n  - {id: a, profile: wobble}\n",
			want: ErrUnknownProfile,
		},
		{
			name: "duplicate id",
			yaml: "entities:\n  - {id: a, profile: float}\n  - {id: a, profile: pulse}\n",
			want: ErrDuplicateID,
		},
		{
			name: "selectable without collider",
			yaml: "entities:\n  - {id: a, profile: float, selectable: true}\n",
			want: ErrNoCollider,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestKeyMap(t *testing.T) {
	cfg := &Config{}
	km, err := cfg.KeyMap()
	require.NoError(t, err)
	assert.Equal(t, input.DefaultKeyMap(), km)

	cfg.Keys = map[string][]string{"forward": {"up", "w"}, "left": {"LEFT"}}
	km, err = cfg.KeyMap()
	require.NoError(t, err)
	assert.Equal(t, input.KeyMap{input.KeyArrowUp: input.Forward, input.KeyW: input.Forward, input.KeyArrowLeft: input.Left}, km)

	cfg.Keys = map[string][]string{"forward": {"W", "w"}}
	km, err = cfg.KeyMap()
	require.NoError(t, err, "repeating a key under one direction is harmless")
	assert.Equal(t, input.KeyMap{input.KeyW: input.Forward}, km)

	cfg.Keys = map[string][]string{"sideways": {"Q"}}
	_, err = cfg.KeyMap()
	assert.Error(t, err)
}

func TestKeyMapRejectsKeyUnderTwoDirections(t *testing.T) {
	cfg := &Config{Keys: map[string][]string{"forward": {"W"}, "back": {"S", "w"}}}

	for range 10 {
		_, err := cfg.KeyMap()
		assert.ErrorIs(t, err, ErrKeyConflict)
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadOrDefault(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.Entities)

	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  move_speed: 2\n"), 0o644))
	cfg, err = LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.RigOptions().Speed)
	assert.Empty(t, cfg.Entities)
}
