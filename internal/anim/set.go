package anim

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned by NewSet when two entities share an ID.
var ErrDuplicateID = errors.New("duplicate entity id")

// Set is the ordered collection of scene entities together with the transforms computed
// on the latest tick.
type Set struct {
	entities   []*Entity
	index      map[ID]int
	transforms []Transform
	elapsed    float64
}

// NewSet builds a set from entities, keeping their order for drawing.
func NewSet(entities ...*Entity) (*Set, error) {
	s := &Set{
		entities:   make([]*Entity, 0, len(entities)),
		index:      make(map[ID]int, len(entities)),
		transforms: make([]Transform, len(entities)),
	}
	for _, e := range entities {
		if _, dup := s.index[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
		}
		s.index[e.ID] = len(s.entities)
		s.entities = append(s.entities, e)
	}
	s.Update(0)
	return s, nil
}

// Update recomputes every transform from t.
func (s *Set) Update(t float64) {
	s.elapsed = t
	for i, e := range s.entities {
		s.transforms[i] = e.Update(t)
	}
}

// Elapsed returns the time the current transforms were computed for.
func (s *Set) Elapsed() float64 {
	return s.elapsed
}

// Len returns the number of entities.
func (s *Set) Len() int {
	return len(s.entities)
}

// At returns the i-th entity and its current transform.
func (s *Set) At(i int) (*Entity, Transform) {
	return s.entities[i], s.transforms[i]
}

// Lookup returns the entity with the given id.
func (s *Set) Lookup(id ID) (*Entity, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.entities[i], true
}

// Transform returns the current transform of the entity with the given id.
func (s *Set) Transform(id ID) (Transform, bool) {
	i, ok := s.index[id]
	if !ok {
		return Transform{}, false
	}
	return s.transforms[i], true
}

// Selectable returns the ids of entities that accept pointer interaction, in set order.
func (s *Set) Selectable() []ID {
	var ids []ID
	for _, e := range s.entities {
		if e.Selectable {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// SetHovered turns the hover visual of id on or off. Unknown ids are ignored.
func (s *Set) SetHovered(id ID, hovered bool) {
	if e, ok := s.Lookup(id); ok {
		e.SetHovered(hovered)
	}
}
