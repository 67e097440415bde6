package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-engine/internal/anim"
	"scene-engine/internal/selection"
)

func TestNewGateIsClosed(t *testing.T) {
	g := New()

	assert.False(t, g.IsOpen())
	assert.True(t, g.LabelsVisible())
	_, ok := g.Selected()
	assert.False(t, ok)
}

func TestOpenSuppressesLabels(t *testing.T) {
	g := New()
	g.Open("skills")

	assert.True(t, g.IsOpen())
	assert.False(t, g.LabelsVisible())
	id, ok := g.Selected()
	assert.True(t, ok)
	assert.Equal(t, anim.ID("skills"), id)
}

func TestCloseClearsSelection(t *testing.T) {
	g := New()
	g.Open("skills")
	g.Close()

	assert.False(t, g.IsOpen())
	id, ok := g.Selected()
	assert.False(t, ok)
	assert.Equal(t, anim.ID(""), id)
}

func TestCloseTwiceEqualsOnce(t *testing.T) {
	once := New()
	once.Open("home")
	once.Close()

	twice := New()
	twice.Open("home")
	twice.Close()
	twice.Close()

	assert.Equal(t, once, twice)
}

func TestCloseFuncClosesGate(t *testing.T) {
	g := New()
	g.Open("contact")

	closeOverlay := g.CloseFunc()
	closeOverlay()

	assert.False(t, g.IsOpen())
}

func TestGateOpenedByRegistryClick(t *testing.T) {
	g := New()
	r := selection.NewRegistry([]anim.ID{"projects"}, nil, nil, g)

	r.OnClick("projects")

	assert.True(t, g.IsOpen())
	id, _ := g.Selected()
	assert.Equal(t, anim.ID("projects"), id)
}
