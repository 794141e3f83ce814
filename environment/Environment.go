// Package environment outlines the interfaces and structs needed to
// implement concrete discrete environments that a tabular agent can
// learn in
package environment

// Feature indices of a decoded state vector. Every environment in this
// module decodes its states into vectors of length Features laid out
// in this order.
const (
	Z1Level int = iota
	Z2Level
	Z1Light
	Z2Light
	Z1Blinds
	Z2Blinds
	Sunshine

	// Features is the length of a decoded state vector
	Features
)

// MaxLevel is the highest discrete illumination (and sunshine) level
const MaxLevel int = 3

// Environment implements a live, stateful environment with a finite
// number of discrete states and actions.
//
// Environments are not safe for concurrent use. An agent must observe
// the result of one action before performing the next.
type Environment interface {
	// StateCount returns the total number of discrete states
	StateCount() (int, error)

	// ActionCount returns the total number of discrete actions
	ActionCount() (int, error)

	// ReadCurrentState returns the index of the current state and
	// refreshes the cached vector returned by CurrentStateVector
	ReadCurrentState() (int, error)

	// CurrentStateVector returns the decoded feature vector of the
	// state most recently returned by ReadCurrentState
	CurrentStateVector() []int

	// ApplicableActions returns the actions that may be performed in
	// state. The returned slice may be empty.
	ApplicableActions(state int) ([]int, error)

	// PerformAction performs an action in the environment
	PerformAction(action int) error

	// CompatibleStates returns the indices of all states that match
	// the partial state description d
	CompatibleStates(d Descriptor) ([]int, error)
}

// Tagger is implemented by environments whose actions carry a semantic
// annotation
type Tagger interface {
	// ActionTag returns the annotation of action, or "" if action is
	// out of range
	ActionTag(action int) string
}

// Levels returns the two zone illumination levels of a decoded state
// vector
func Levels(state []int) (z1, z2 int) {
	return state[Z1Level], state[Z2Level]
}
