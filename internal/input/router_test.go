package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-engine/internal/anim"
)

type pointerLog struct {
	calls []string
}

func (p *pointerLog) OnPointerEnter(id anim.ID) { p.calls = append(p.calls, "enter:"+string(id)) }
func (p *pointerLog) OnPointerLeave(id anim.ID) { p.calls = append(p.calls, "leave:"+string(id)) }
func (p *pointerLog) OnClick(id anim.ID)        { p.calls = append(p.calls, "click:"+string(id)) }

type fakeSource struct {
	listener     Listener
	unsubscribed int
}

func (f *fakeSource) Subscribe(l Listener) func() {
	f.listener = l
	return func() {
		f.listener = nil
		f.unsubscribed++
	}
}

func TestKeyDownHoldsDirection(t *testing.T) {
	r := NewRouter(nil, nil)

	r.HandleKeyDown(KeyW)
	held := r.Drain()

	assert.True(t, held.Has(Forward))
	assert.False(t, held.Has(Back))
}

func TestNothingChangesBeforeDrain(t *testing.T) {
	r := NewRouter(nil, nil)
	r.HandleKeyDown(KeyD)

	assert.True(t, r.Held().Empty())
	assert.Equal(t, 1, r.Pending())
}

func TestRepeatedKeyDownIsIdempotent(t *testing.T) {
	r := NewRouter(nil, nil)

	r.HandleKeyDown(KeyA)
	r.HandleKeyDown(KeyA)
	r.HandleKeyDown(KeyA)
	r.Drain()
	r.HandleKeyUp(KeyA)

	assert.True(t, r.Drain().Empty(), "one release must clear a key pressed repeatedly")
}

func TestKeyUpWithoutDownIsNoop(t *testing.T) {
	r := NewRouter(nil, nil)
	r.HandleKeyDown(KeyW)
	r.Drain()

	r.HandleKeyUp(KeyS)
	held := r.Drain()

	assert.Equal(t, DirectionSet(0).With(Forward), held)
}

func TestNonMovementKeysIgnored(t *testing.T) {
	r := NewRouter(nil, nil)

	r.HandleKeyDown(Key('Q'))
	r.HandleKeyDown(KeyArrowUp)

	assert.True(t, r.Drain().Empty())
}

func TestCustomKeyMap(t *testing.T) {
	r := NewRouter(KeyMap{KeyArrowUp: Forward, KeyW: Forward}, nil)

	r.HandleKeyDown(KeyArrowUp)
	r.HandleKeyDown(KeyW)
	r.HandleKeyUp(KeyArrowUp)

	assert.True(t, r.Drain().Has(Forward), "W still holds forward after Up is released")
}

func TestDrainEmptiesQueue(t *testing.T) {
	p := &pointerLog{}
	r := NewRouter(nil, p)

	r.HandlePointerClick("home")
	r.Drain()
	r.Drain()

	assert.Equal(t, []string{"click:home"}, p.calls)
	assert.Zero(t, r.Pending())
}

// clickForwarder re-queues every click it sees as an enter on the same router.
type clickForwarder struct {
	pointerLog
	router *Router
}

func (c *clickForwarder) OnClick(id anim.ID) {
	c.pointerLog.OnClick(id)
	c.router.HandlePointerEnter(id)
}

func TestIntentsQueuedDuringDrainWaitForNextDrain(t *testing.T) {
	p := &clickForwarder{}
	r := NewRouter(nil, p)
	p.router = r

	r.HandlePointerClick("home")
	r.HandlePointerClick("skills")
	r.Drain()

	assert.Equal(t, []string{"click:home", "click:skills"}, p.calls)
	assert.Equal(t, 2, r.Pending())

	r.Drain()
	assert.Equal(t, []string{"click:home", "click:skills", "enter:home", "enter:skills"}, p.calls)
	assert.Zero(t, r.Pending())
}

func TestPointerIntentsRelayedInOrder(t *testing.T) {
	p := &pointerLog{}
	r := NewRouter(nil, p)

	r.HandlePointerEnter("home")
	r.HandlePointerLeave("home")
	r.HandlePointerEnter("skills")
	r.HandlePointerClick("skills")
	r.Drain()

	assert.Equal(t, []string{"enter:home", "leave:home", "enter:skills", "click:skills"}, p.calls)
}

func TestAttachAndClose(t *testing.T) {
	src := &fakeSource{}
	r := NewRouter(nil, nil)

	sub := r.Attach(src)
	require.NotNil(t, src.listener)
	src.listener.HandleKeyDown(KeyW)
	assert.Equal(t, 1, r.Pending())

	r.Close()
	assert.Nil(t, src.listener)
	assert.Equal(t, 1, src.unsubscribed)
	assert.Zero(t, r.Pending())

	sub.Release()
	assert.Equal(t, 1, src.unsubscribed, "release after close must not deregister twice")
}

func TestParseKeyAndDirection(t *testing.T) {
	k, err := ParseKey("w")
	require.NoError(t, err)
	assert.Equal(t, KeyW, k)

	k, err = ParseKey("Up")
	require.NoError(t, err)
	assert.Equal(t, KeyArrowUp, k)

	k, err = ParseKey(" down ")
	require.NoError(t, err)
	assert.Equal(t, KeyArrowDown, k)
	assert.Equal(t, "key-down", KeyDown.String())

	k, err = ParseKey("q")
	require.NoError(t, err)
	assert.Equal(t, Key('Q'), k)

	_, err = ParseKey("F13")
	assert.Error(t, err)

	d, err := ParseDirection("Right")
	require.NoError(t, err)
	assert.Equal(t, Right, d)

	_, err = ParseDirection("up")
	assert.Error(t, err)
}

func TestDirectionSetString(t *testing.T) {
	s := DirectionSet(0).With(Forward).With(Right)

	assert.Equal(t, "{forward,right}", s.String())
	assert.Equal(t, "{}", DirectionSet(0).String())
}
