// Package lab implements a simulated two-zone lighting lab.
//
// Each zone of the lab has a light and a set of blinds. The
// illumination level of a zone is determined by its light and, when
// its blinds are not deployed, by the ambient sunshine. Deployed blinds
// block sunshine entirely. Zone 2 has fewer windows than zone 1, so it
// receives one level less of natural light.
//
// States are vectors of environment.Features discrete values:
//
//	[Z1Level, Z2Level, Z1Light, Z2Light, Z1Blinds, Z2Blinds, Sunshine]
//
// Actions set a single light or blinds feature to on or off. An action
// is applicable only if it changes the lab.
package lab

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	env "github.com/samuelfneumann/zonelearn/environment"
)

// ErrNotApplicable is returned when performing an action that is not
// applicable in the current state of the lab
var ErrNotApplicable = errors.New("action not applicable")

// lightContribution is the illumination level a light adds to its zone
const lightContribution int = 2

// Action describes one discrete action of the lab
type Action struct {
	// Tag is the semantic annotation of the action
	Tag string

	// Feature is the index of the state feature the action sets
	Feature int

	// Value is the value the action sets Feature to
	Value int
}

// Actions lists the actions of the lab, indexed by action number
var Actions = []Action{
	{"http://example.org/was#SetZ1Light", env.Z1Light, 1},
	{"http://example.org/was#SetZ1Light", env.Z1Light, 0},
	{"http://example.org/was#SetZ2Light", env.Z2Light, 1},
	{"http://example.org/was#SetZ2Light", env.Z2Light, 0},
	{"http://example.org/was#SetZ1Blinds", env.Z1Blinds, 1},
	{"http://example.org/was#SetZ1Blinds", env.Z1Blinds, 0},
	{"http://example.org/was#SetZ2Blinds", env.Z2Blinds, 1},
	{"http://example.org/was#SetZ2Blinds", env.Z2Blinds, 0},
}

// Lab is a simulated lighting lab
type Lab struct {
	space env.Space

	state  []int // true state of the lab
	cached []int // state at the last call to ReadCurrentState

	// drift samples whether the sunshine changes after an action
	drift distuv.Bernoulli
	rng   *rand.Rand
}

// New returns a new Lab with all lights off, all blinds raised, and the
// given sunshine level. After each action, the sunshine moves one level
// up or down with probability drift.
func New(sunshine int, drift float64, seed uint64) (*Lab, error) {
	if sunshine < 0 || sunshine > env.MaxLevel {
		return nil, fmt.Errorf("new: sunshine %d out of range [0, %d]",
			sunshine, env.MaxLevel)
	}
	if drift < 0 || drift > 1 {
		return nil, fmt.Errorf("new: drift %v out of range [0, 1]", drift)
	}

	levels := env.MaxLevel + 1
	space, err := env.NewSpace([]int{levels, levels, 2, 2, 2, 2, levels})
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	source := rand.NewSource(seed)
	l := &Lab{
		space: space,
		state: make([]int, env.Features),
		drift: distuv.Bernoulli{P: drift, Src: source},
		rng:   rand.New(source),
	}
	l.state[env.Sunshine] = sunshine
	l.illuminate()
	l.cached = l.copyState()

	return l, nil
}

// StateCount returns the number of discrete states of the lab
func (l *Lab) StateCount() (int, error) {
	return l.space.Size(), nil
}

// ActionCount returns the number of discrete actions of the lab
func (l *Lab) ActionCount() (int, error) {
	return len(Actions), nil
}

// ReadCurrentState returns the index of the current state
func (l *Lab) ReadCurrentState() (int, error) {
	index, err := l.space.Encode(l.state)
	if err != nil {
		return 0, fmt.Errorf("readCurrentState: %w", err)
	}
	l.cached = l.copyState()
	return index, nil
}

// CurrentStateVector returns the state vector at the last call to
// ReadCurrentState
func (l *Lab) CurrentStateVector() []int {
	v := make([]int, len(l.cached))
	copy(v, l.cached)
	return v
}

// ApplicableActions returns the actions that change state
func (l *Lab) ApplicableActions(state int) ([]int, error) {
	v, err := l.space.Decode(state)
	if err != nil {
		return nil, fmt.Errorf("applicableActions: %w", err)
	}

	actions := make([]int, 0, len(Actions))
	for i, a := range Actions {
		if v[a.Feature] != a.Value {
			actions = append(actions, i)
		}
	}
	return actions, nil
}

// PerformAction performs action in the lab
func (l *Lab) PerformAction(action int) error {
	if action < 0 || action >= len(Actions) {
		return fmt.Errorf("performAction: action %d out of range [0, %d)",
			action, len(Actions))
	}

	a := Actions[action]
	if l.state[a.Feature] == a.Value {
		return fmt.Errorf("performAction: action %d: %w", action,
			ErrNotApplicable)
	}
	l.state[a.Feature] = a.Value

	if l.drift.Rand() == 1 {
		sunshine := l.state[env.Sunshine]
		if l.rng.Intn(2) == 0 {
			sunshine--
		} else {
			sunshine++
		}
		if sunshine >= 0 && sunshine <= env.MaxLevel {
			l.state[env.Sunshine] = sunshine
		}
	}

	l.illuminate()
	return nil
}

// ActionTag returns the semantic annotation of action, or "" if action
// is out of range
func (l *Lab) ActionTag(action int) string {
	if action < 0 || action >= len(Actions) {
		return ""
	}
	return Actions[action].Tag
}

// CompatibleStates returns all states matching d
func (l *Lab) CompatibleStates(d env.Descriptor) ([]int, error) {
	return l.space.Compatible(d)
}

// Set places the lab in the state described by v. The illumination
// levels of v are ignored and recomputed from the other features.
func (l *Lab) Set(v []int) error {
	if _, err := l.space.Encode(v); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	copy(l.state, v)
	l.illuminate()
	return nil
}

// illuminate recomputes the zone illumination levels
func (l *Lab) illuminate() {
	sunshine := l.state[env.Sunshine]
	l.state[env.Z1Level] = level(l.state[env.Z1Light],
		l.state[env.Z1Blinds], sunshine)
	l.state[env.Z2Level] = level(l.state[env.Z2Light],
		l.state[env.Z2Blinds], sunshine-1)
}

func (l *Lab) copyState() []int {
	v := make([]int, len(l.state))
	copy(v, l.state)
	return v
}

// level returns the illumination level of a zone
func level(light, blinds, natural int) int {
	lvl := light * lightContribution
	if blinds == 0 && natural > 0 {
		lvl += natural
	}
	if lvl > env.MaxLevel {
		return env.MaxLevel
	}
	return lvl
}

func (l *Lab) String() string {
	return fmt.Sprintf("Lab | State: %v", l.state)
}
