package input

import (
	"fmt"
	"slices"
	"strings"
)

// Key is a keyboard key code. Values follow the GLFW numbering raylib uses, so raylib's
// key constants convert directly.
type Key int32

const (
	KeyA          Key = 65
	KeyD          Key = 68
	KeyS          Key = 83
	KeyW          Key = 87
	KeyArrowRight Key = 262
	KeyArrowLeft  Key = 263
	KeyArrowDown  Key = 264
	KeyArrowUp    Key = 265
)

var keyNames = map[string]Key{
	"A": KeyA, "D": KeyD, "S": KeyS, "W": KeyW,
	"RIGHT": KeyArrowRight, "LEFT": KeyArrowLeft, "DOWN": KeyArrowDown, "UP": KeyArrowUp,
}

// ParseKey resolves a key name such as "W" or "up". Single letters map to their
// upper-case code.
func ParseKey(name string) (Key, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if k, ok := keyNames[n]; ok {
		return k, nil
	}
	if len(n) == 1 && n[0] >= 'A' && n[0] <= 'Z' {
		return Key(n[0]), nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Direction is a camera movement direction.
type Direction uint8

const (
	Forward Direction = iota
	Back
	Left
	Right
)

var directionNames = [...]string{Forward: "forward", Back: "back", Left: "left", Right: "right"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection maps "forward", "back", "left" or "right" to a Direction.
func ParseDirection(name string) (Direction, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, dn := range directionNames {
		if dn == n {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

// DirectionSet is a bit set of held directions.
type DirectionSet uint8

// With returns s with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | 1<<d
}

// Has reports whether d is in s.
func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// Empty reports whether no direction is held.
func (s DirectionSet) Empty() bool {
	return s == 0
}

func (s DirectionSet) String() string {
	var parts []string
	for d := Forward; d <= Right; d++ {
		if s.Has(d) {
			parts = append(parts, d.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// KeyMap binds movement keys to directions. Keys absent from the map are not movement keys.
type KeyMap map[Key]Direction

// DefaultKeyMap is W/S/A/D.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyW: Forward,
		KeyS: Back,
		KeyA: Left,
		KeyD: Right,
	}
}

// Keys returns the bound keys in ascending order.
func (m KeyMap) Keys() []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
