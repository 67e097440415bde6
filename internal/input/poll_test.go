package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-engine/internal/anim"
)

type event struct {
	kind Kind
	key  Key
	id   anim.ID
}

type eventLog struct {
	events []event
}

func (l *eventLog) HandleKeyDown(k Key) { l.events = append(l.events, event{kind: KeyDown, key: k}) }
func (l *eventLog) HandleKeyUp(k Key)   { l.events = append(l.events, event{kind: KeyUp, key: k}) }
func (l *eventLog) HandlePointerEnter(id anim.ID) {
	l.events = append(l.events, event{kind: PointerEnter, id: id})
}
func (l *eventLog) HandlePointerLeave(id anim.ID) {
	l.events = append(l.events, event{kind: PointerLeave, id: id})
}
func (l *eventLog) HandlePointerClick(id anim.ID) {
	l.events = append(l.events, event{kind: Click, id: id})
}

func TestKeyPollerReportsEdges(t *testing.T) {
	log := &eventLog{}
	p := NewKeyPoller(log, DefaultKeyMap().Keys())
	down := map[Key]bool{}
	poll := func() { p.Poll(func(k Key) bool { return down[k] }) }

	down[KeyW] = true
	poll()
	poll()
	down[KeyD] = true
	poll()
	down[KeyW] = false
	poll()

	assert.Equal(t, []event{
		{kind: KeyDown, key: KeyW},
		{kind: KeyDown, key: KeyD},
		{kind: KeyUp, key: KeyW},
	}, log.events)
}

func TestKeyPollerReleaseAll(t *testing.T) {
	log := &eventLog{}
	p := NewKeyPoller(log, []Key{KeyA, KeyS})
	p.Poll(func(Key) bool { return true })
	log.events = nil

	p.ReleaseAll()
	p.ReleaseAll()

	assert.Equal(t, []event{{kind: KeyUp, key: KeyA}, {kind: KeyUp, key: KeyS}}, log.events)
}

func TestPointerTrackerEnterLeave(t *testing.T) {
	log := &eventLog{}
	p := NewPointerTracker(log)

	p.Update(PointerSample{Hit: "home", HasHit: true})
	p.Update(PointerSample{Hit: "home", HasHit: true})
	p.Update(PointerSample{Hit: "projects", HasHit: true})
	p.Update(PointerSample{})

	assert.Equal(t, []event{
		{kind: PointerEnter, id: "home"},
		{kind: PointerLeave, id: "home"},
		{kind: PointerEnter, id: "projects"},
		{kind: PointerLeave, id: "projects"},
	}, log.events)
}

func TestPointerTrackerClick(t *testing.T) {
	tests := []struct {
		name    string
		samples []PointerSample
		click   bool
	}{
		{
			name: "press and release in place",
			samples: []PointerSample{
				{Hit: "home", HasHit: true, Pressed: true},
				{Hit: "home", HasHit: true, Released: true},
			},
			click: true,
		},
		{
			name: "drag between press and release",
			samples: []PointerSample{
				{Hit: "home", HasHit: true, Pressed: true},
				{Hit: "home", HasHit: true, DX: 30},
				{Hit: "home", HasHit: true, Released: true},
			},
		},
		{
			name: "released over another entity",
			samples: []PointerSample{
				{Hit: "home", HasHit: true, Pressed: true},
				{Hit: "skills", HasHit: true, Released: true},
			},
		},
		{
			name: "pressed over empty space",
			samples: []PointerSample{
				{Pressed: true},
				{Hit: "home", HasHit: true, Released: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &eventLog{}
			p := NewPointerTracker(log)
			for _, s := range tt.samples {
				p.Update(s)
			}
			clicked := false
			for _, e := range log.events {
				if e.kind == Click {
					clicked = true
				}
			}
			assert.Equal(t, tt.click, clicked)
		})
	}
}

func TestPointerTrackerClear(t *testing.T) {
	log := &eventLog{}
	p := NewPointerTracker(log)
	p.Update(PointerSample{Hit: "home", HasHit: true, Pressed: true})

	p.Clear()
	p.Update(PointerSample{Released: true})

	assert.Equal(t, []event{{kind: PointerEnter, id: "home"}, {kind: PointerLeave, id: "home"}}, log.events)
	assert.False(t, p.Dragging())
}

func TestHubFansOutAndUnsubscribes(t *testing.T) {
	var h Hub
	a, b := &eventLog{}, &eventLog{}
	unsubA := h.Subscribe(a)
	h.Subscribe(b)

	h.HandleKeyDown(KeyW)
	unsubA()
	unsubA()
	h.HandlePointerClick("home")

	assert.Equal(t, []event{{kind: KeyDown, key: KeyW}}, a.events)
	assert.Equal(t, []event{{kind: KeyDown, key: KeyW}, {kind: Click, id: "home"}}, b.events)
	assert.Equal(t, 1, h.Len())
}

func TestRouterAttachedToHub(t *testing.T) {
	var h Hub
	r := NewRouter(nil, nil)
	r.Attach(&h)

	h.HandleKeyDown(KeyA)
	assert.Equal(t, DirectionSet(0).With(Left), r.Drain())

	r.Close()
	assert.Zero(t, h.Len())
	h.HandleKeyDown(KeyW)
	assert.Zero(t, r.Pending())
}
