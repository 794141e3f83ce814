// Package dimmer implements a two-zone dimmer environment.
//
// The dimmer has only illumination levels: each zone's level can be
// turned up or down by one, within [0, environment.MaxLevel]. All other
// features of the state vector are fixed at zero, so the dimmer has
// (MaxLevel+1)^2 states and four actions.
package dimmer

import (
	"fmt"

	env "github.com/samuelfneumann/zonelearn/environment"
)

// Actions of the dimmer
const (
	Z1Up int = iota
	Z1Down
	Z2Up
	Z2Down

	numActions
)

// Dimmer is a two-zone dimmer environment
type Dimmer struct {
	space  env.Space
	z1, z2 int
	cached []int
}

// New returns a new Dimmer starting at levels (z1, z2)
func New(z1, z2 int) (*Dimmer, error) {
	levels := env.MaxLevel + 1
	space, err := env.NewSpace([]int{levels, levels, 1, 1, 1, 1, 1})
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	d := &Dimmer{space: space}
	if err := d.Set(z1, z2); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	d.cached = d.vector()

	return d, nil
}

// Set sets the levels of the dimmer
func (d *Dimmer) Set(z1, z2 int) error {
	if !inRange(z1) || !inRange(z2) {
		return fmt.Errorf("set: levels (%d, %d) out of range [0, %d]",
			z1, z2, env.MaxLevel)
	}
	d.z1, d.z2 = z1, z2
	return nil
}

// StateCount returns the number of states of the dimmer
func (d *Dimmer) StateCount() (int, error) {
	return d.space.Size(), nil
}

// ActionCount returns the number of actions of the dimmer
func (d *Dimmer) ActionCount() (int, error) {
	return numActions, nil
}

// ReadCurrentState returns the current state index
func (d *Dimmer) ReadCurrentState() (int, error) {
	d.cached = d.vector()
	return d.space.Encode(d.cached)
}

// CurrentStateVector returns the state vector at the last call to
// ReadCurrentState
func (d *Dimmer) CurrentStateVector() []int {
	v := make([]int, len(d.cached))
	copy(v, d.cached)
	return v
}

// ApplicableActions returns the actions that keep both levels in range
func (d *Dimmer) ApplicableActions(state int) ([]int, error) {
	v, err := d.space.Decode(state)
	if err != nil {
		return nil, fmt.Errorf("applicableActions: %w", err)
	}

	actions := make([]int, 0, numActions)
	for a := 0; a < numActions; a++ {
		z1, z2 := step(v[env.Z1Level], v[env.Z2Level], a)
		if inRange(z1) && inRange(z2) {
			actions = append(actions, a)
		}
	}
	return actions, nil
}

// PerformAction performs action
func (d *Dimmer) PerformAction(action int) error {
	if action < 0 || action >= numActions {
		return fmt.Errorf("performAction: action %d out of range [0, %d)",
			action, numActions)
	}

	z1, z2 := step(d.z1, d.z2, action)
	if !inRange(z1) || !inRange(z2) {
		return fmt.Errorf("performAction: action %d not applicable at "+
			"levels (%d, %d)", action, d.z1, d.z2)
	}
	d.z1, d.z2 = z1, z2
	return nil
}

// CompatibleStates returns all states matching desc
func (d *Dimmer) CompatibleStates(desc env.Descriptor) ([]int, error) {
	return d.space.Compatible(desc)
}

func (d *Dimmer) vector() []int {
	v := make([]int, env.Features)
	v[env.Z1Level] = d.z1
	v[env.Z2Level] = d.z2
	return v
}

func (d *Dimmer) String() string {
	return fmt.Sprintf("Dimmer | Levels: (%d, %d)", d.z1, d.z2)
}

// step returns the levels after taking action a at levels (z1, z2)
func step(z1, z2, a int) (int, int) {
	switch a {
	case Z1Up:
		return z1 + 1, z2
	case Z1Down:
		return z1 - 1, z2
	case Z2Up:
		return z1, z2 + 1
	case Z2Down:
		return z1, z2 - 1
	}
	return z1, z2
}

func inRange(level int) bool {
	return level >= 0 && level <= env.MaxLevel
}
