package anim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatOrb() *Entity {
	return &Entity{
		ID:      "orb",
		Base:    mgl64.Vec3{1, 2, 3},
		Profile: Float,
		Params:  Params{Amplitude: 0.2, Omega: 0.5, SpinRate: 0.5},
	}
}

func TestFloatAtZeroKeepsBase(t *testing.T) {
	tr := floatOrb().Update(0)

	assert.InDelta(t, 2.0, tr.Position.Y(), 1e-12)
	assert.InDelta(t, 0.0, tr.Rotation.Y(), 1e-12)
	assert.Equal(t, 1.0, tr.Scale)
}

func TestFloatAtPiReachesAmplitude(t *testing.T) {
	// sin(0.5*π) = 1, so the orb sits a full amplitude above its base.
	tr := floatOrb().Update(math.Pi)

	assert.InDelta(t, 2.2, tr.Position.Y(), 1e-9)
	assert.InDelta(t, 1.0, tr.Position.X(), 1e-12)
	assert.InDelta(t, 3.0, tr.Position.Z(), 1e-12)
	assert.InDelta(t, 0.5*math.Pi, tr.Rotation.Y(), 1e-12)
}

func TestSeedShiftsPhase(t *testing.T) {
	e := floatOrb()
	e.Seed = math.Pi / 2

	assert.InDelta(t, 2.2, e.Update(0).Position.Y(), 1e-9)
}

func TestPulseLeavesPositionAlone(t *testing.T) {
	e := &Entity{
		ID:      "fixture",
		Base:    mgl64.Vec3{-20, -1.5, -20},
		Profile: Pulse,
		Params:  Params{BaseIntensity: 1.2, PulseRate: 2, PulseDelta: 0.2},
	}

	for _, at := range []float64{0, 0.3, math.Pi / 4, 10} {
		tr := e.Update(at)
		assert.Equal(t, e.Base, tr.Position)
		assert.InDelta(t, 1.2+math.Sin(at*2)*0.2, tr.Intensity, 1e-12)
	}
}

func TestBeamOnlyOscillatesIntensity(t *testing.T) {
	e := &Entity{
		ID:      "beacon",
		Base:    mgl64.Vec3{0, 8, 0},
		Profile: Beam,
		Params:  Params{BaseIntensity: 1, PulseRate: 3, PulseDelta: 0.5},
	}

	a := e.Update(0.1)
	b := e.Update(0.6)
	assert.Equal(t, a.Position, b.Position)
	assert.NotEqual(t, a.Intensity, b.Intensity)
}

func TestOrbitSlotsAreEvenlySpaced(t *testing.T) {
	const slots = 4
	var positions []mgl64.Vec3
	for i := 0; i < slots; i++ {
		e := &Entity{
			ID:      ID("ring"),
			Profile: Orbit,
			Slot:    i,
			Params:  Params{Slots: slots, Radius: 1.5, Height: 0.5},
		}
		positions = append(positions, e.Update(0).Position)
	}

	want := []mgl64.Vec3{{1.5, 0.5, 0}, {0, 0.5, 1.5}, {-1.5, 0.5, 0}, {0, 0.5, -1.5}}
	for i, w := range want {
		assert.InDelta(t, 0, positions[i].Sub(w).Len(), 1e-9, "slot %d at %v", i, positions[i])
	}
}

func TestOrbitRotatesAndBreathes(t *testing.T) {
	e := &Entity{
		ID:      "particle",
		Base:    mgl64.Vec3{0, 1, 0},
		Profile: Orbit,
		Slot:    1,
		Params: Params{
			Slots: 6, Radius: 2, OrbitRate: 0.3,
			RadiusAmp: 0.5, RadiusRate: 1,
		},
	}

	at := 1.7
	angle := 1*2*math.Pi/6 + at*0.3
	r := 2 + math.Sin(at)*0.5
	want := mgl64.Vec3{math.Cos(angle) * r, 1, math.Sin(angle) * r}
	got := e.Update(at).Position

	assert.InDelta(t, 0, got.Sub(want).Len(), 1e-9, "got %v want %v", got, want)
}

func TestUpdateIsDeterministic(t *testing.T) {
	entities := []*Entity{
		floatOrb(),
		{ID: "p", Profile: Pulse, Seed: 0.7, Params: Params{BaseIntensity: 1, PulseRate: 2, PulseDelta: 0.3}},
		{ID: "o", Profile: Orbit, Slot: 3, Seed: 1.1, Params: Params{Slots: 8, Radius: 2, OrbitRate: 0.4, RadiusAmp: 0.2, RadiusRate: 0.9}},
		{ID: "b", Profile: Beam, Params: Params{BaseIntensity: 2, PulseRate: 1, PulseDelta: 1}},
	}
	for _, e := range entities {
		t.Run(string(e.ID), func(t *testing.T) {
			for _, at := range []float64{0, 0.016, 1, 12.5, 600} {
				first := e.Update(at)
				// Evaluate other times in between; no hidden state may leak.
				e.Update(at + 3)
				e.Update(at / 2)
				assert.Equal(t, first, e.Update(at))
			}
		})
	}
}

func TestHoverScalesAndLifts(t *testing.T) {
	e := &Entity{ID: "home", Base: mgl64.Vec3{-8, 0, -8}, Profile: Float, Selectable: true}
	rest := e.Update(1)

	e.SetHovered(true)
	hover := e.Update(1)
	require.True(t, e.Hovered())
	assert.InDelta(t, rest.Scale*HoverScale, hover.Scale, 1e-12)
	assert.InDelta(t, rest.Position.Y()+HoverLift, hover.Position.Y(), 1e-12)

	e.SetHovered(false)
	assert.Equal(t, rest, e.Update(1))
}

func TestParseProfile(t *testing.T) {
	for _, p := range []Profile{Float, Pulse, Orbit, Beam} {
		got, ok := ParseProfile(p.String())
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := ParseProfile("spin")
	assert.False(t, ok)
	assert.Equal(t, "Profile(9)", Profile(9).String())
}
