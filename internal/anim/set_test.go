package anim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetRejectsDuplicates(t *testing.T) {
	_, err := NewSet(&Entity{ID: "a"}, &Entity{ID: "a"})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestSetUpdateRederivesTransforms(t *testing.T) {
	orb := &Entity{ID: "orb", Base: mgl64.Vec3{0, 5, 0}, Profile: Float, Params: Params{Amplitude: 1, Omega: 1}}
	s, err := NewSet(orb, &Entity{ID: "home", Selectable: true})
	require.NoError(t, err)

	s.Update(2)
	at2, ok := s.Transform("orb")
	require.True(t, ok)

	for i := 0; i < 100; i++ {
		s.Update(float64(i) * 0.37)
	}
	s.Update(2)
	again, _ := s.Transform("orb")

	assert.Equal(t, at2, again)
	assert.Equal(t, 2.0, s.Elapsed())
}

func TestSetLookupAndSelectable(t *testing.T) {
	s, err := NewSet(
		&Entity{ID: "central", Selectable: true},
		&Entity{ID: "orb"},
		&Entity{ID: "home", Selectable: true},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []ID{"central", "home"}, s.Selectable())

	e, ok := s.Lookup("orb")
	require.True(t, ok)
	assert.Equal(t, ID("orb"), e.ID)

	_, ok = s.Lookup("nope")
	assert.False(t, ok)
	_, ok = s.Transform("nope")
	assert.False(t, ok)

	first, _ := s.At(0)
	assert.Equal(t, ID("central"), first.ID)
}

func TestSetHoveredIgnoresUnknownIDs(t *testing.T) {
	s, err := NewSet(&Entity{ID: "home", Selectable: true})
	require.NoError(t, err)

	s.SetHovered("ghost", true)
	s.SetHovered("home", true)

	e, _ := s.Lookup("home")
	assert.True(t, e.Hovered())
}
