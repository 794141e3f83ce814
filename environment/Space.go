package environment

import (
	"fmt"
)

// Any is the wildcard value of a Descriptor entry
const Any int = -1

// Descriptor is a partial state description. Entries equal to Any
// match any value of the corresponding feature.
type Descriptor []int

// NewDescriptor returns a Descriptor of arity Features with every
// entry set to Any
func NewDescriptor() Descriptor {
	d := make(Descriptor, Features)
	for i := range d {
		d[i] = Any
	}
	return d
}

// Matches returns whether the state vector v is compatible with d
func (d Descriptor) Matches(v []int) bool {
	if len(v) != len(d) {
		return false
	}
	for i := range d {
		if d[i] != Any && d[i] != v[i] {
			return false
		}
	}
	return true
}

// Space enumerates a discrete state space as the cartesian product of
// discrete features. Feature i takes values in [0, Cardinalities[i]).
// States are indexed in mixed radix with feature 0 most significant.
type Space struct {
	cardinalities []int
	size          int
}

// NewSpace returns a new Space with the given per-feature cardinalities
func NewSpace(cardinalities []int) (Space, error) {
	if len(cardinalities) == 0 {
		return Space{}, fmt.Errorf("newSpace: no features")
	}

	size := 1
	for i, c := range cardinalities {
		if c < 1 {
			return Space{}, fmt.Errorf("newSpace: feature %d has "+
				"cardinality %d < 1", i, c)
		}
		size *= c
	}

	card := make([]int, len(cardinalities))
	copy(card, cardinalities)

	return Space{cardinalities: card, size: size}, nil
}

// Size returns the number of states in the Space
func (s Space) Size() int {
	return s.size
}

// Arity returns the length of the state vectors of the Space
func (s Space) Arity() int {
	return len(s.cardinalities)
}

// Encode returns the index of state vector v
func (s Space) Encode(v []int) (int, error) {
	if len(v) != len(s.cardinalities) {
		return 0, fmt.Errorf("encode: vector length %d != arity %d",
			len(v), len(s.cardinalities))
	}

	index := 0
	for i, c := range s.cardinalities {
		if v[i] < 0 || v[i] >= c {
			return 0, fmt.Errorf("encode: feature %d value %d out of "+
				"range [0, %d)", i, v[i], c)
		}
		index = index*c + v[i]
	}
	return index, nil
}

// Decode returns the state vector of index
func (s Space) Decode(index int) ([]int, error) {
	if index < 0 || index >= s.size {
		return nil, fmt.Errorf("decode: state %d out of range [0, %d)",
			index, s.size)
	}

	v := make([]int, len(s.cardinalities))
	for i := len(s.cardinalities) - 1; i >= 0; i-- {
		v[i] = index % s.cardinalities[i]
		index /= s.cardinalities[i]
	}
	return v, nil
}

// Compatible returns the indices, in increasing order, of all states
// matching d
func (s Space) Compatible(d Descriptor) ([]int, error) {
	if len(d) != len(s.cardinalities) {
		return nil, fmt.Errorf("compatible: descriptor length %d != "+
			"arity %d", len(d), len(s.cardinalities))
	}

	var states []int
	for i := 0; i < s.size; i++ {
		v, _ := s.Decode(i)
		if d.Matches(v) {
			states = append(states, i)
		}
	}
	return states, nil
}
