// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended. It is only meaningful on
// Last TimeSteps.
type EndType int

const (
	// Unended denotes that the episode has not ended
	Unended EndType = iota

	// TerminalStateReached denotes that a goal state was reached
	TerminalStateReached

	// Timeout denotes that the episode hit its step cap
	Timeout

	// NoActions denotes that the episode reached a state with no
	// applicable actions
	NoActions
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	case NoActions:
		return "NoActions"
	default:
		return "Unended"
	}
}

// TimeStep packages together a single timestep in an environment.
// State is the discrete state index observed after Action was taken.
// The first TimeStep of an episode has Action == -1.
type TimeStep struct {
	StepType
	Reward   float64
	Discount float64
	State    int
	Action   int
	Number   int
	Episode  int

	endType EndType
}

// New returns a new TimeStep
func New(t StepType, r, d float64, state, action, n, episode int) TimeStep {
	return TimeStep{
		StepType: t,
		Reward:   r,
		Discount: d,
		State:    state,
		Action:   action,
		Number:   n,
		Episode:  episode,
	}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd marks the TimeStep as the last of its episode, ending for
// reason e
func (t *TimeStep) SetEnd(e EndType) {
	t.StepType = Last
	t.endType = e
}

// EndType returns the reason the episode ended on this TimeStep
func (t *TimeStep) EndType() EndType {
	return t.endType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"State: %v  |  Action: %v  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.State,
		t.Action, t.Number)
}
