package environment_test

import (
	"errors"
	"testing"

	env "github.com/samuelfneumann/zonelearn/environment"
	"github.com/samuelfneumann/zonelearn/environment/dimmer"
)

// stuck is an environment with a single goal state that no action can
// leave
type stuck struct {
	actions   []int
	performed int
	failWith  error
}

func (s *stuck) StateCount() (int, error)             { return 1, nil }
func (s *stuck) ActionCount() (int, error)            { return 1, nil }
func (s *stuck) ReadCurrentState() (int, error)       { return 0, nil }
func (s *stuck) CurrentStateVector() []int            { return []int{2, 3, 0, 0, 0, 0, 0} }
func (s *stuck) ApplicableActions(int) ([]int, error) { return s.actions, nil }
func (s *stuck) CompatibleStates(env.Descriptor) ([]int, error) {
	return []int{0}, nil
}
func (s *stuck) PerformAction(int) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.performed++
	return nil
}

func atLevels(z1, z2 int) func([]int) bool {
	return func(v []int) bool {
		return v[env.Z1Level] == z1 && v[env.Z2Level] == z2
	}
}

func TestResetOutsideGoalIsNoOp(t *testing.T) {
	d, _ := dimmer.New(0, 0)
	r, err := env.NewRandomWalkStarter(d, 10, 3, 3, 1)
	if err != nil {
		t.Fatal(err)
	}

	result, err := r.Reset(atLevels(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if result.Actions != 0 || result.Exhausted {
		t.Errorf("reset: want no actions, have %+v", result)
	}

	d.ReadCurrentState()
	if z1, z2 := env.Levels(d.CurrentStateVector()); z1 != 0 || z2 != 0 {
		t.Errorf("reset: levels changed to (%d, %d)", z1, z2)
	}
}

func TestResetLeavesGoal(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		d, _ := dimmer.New(2, 3)
		r, _ := env.NewRandomWalkStarter(d, env.DefaultResetAttempts,
			env.DefaultAggressiveAttempts, env.DefaultAggressiveBurst, seed)

		result, err := r.Reset(atLevels(2, 3))
		if err != nil {
			t.Fatal(err)
		}
		if result.Exhausted || result.Actions == 0 {
			t.Errorf("seed %d: reset did not leave goal: %+v", seed, result)
		}

		d.ReadCurrentState()
		if z1, z2 := env.Levels(d.CurrentStateVector()); z1 == 2 && z2 == 3 {
			t.Errorf("seed %d: environment still at goal", seed)
		}
	}
}

func TestResetExhausted(t *testing.T) {
	s := &stuck{actions: []int{0}}
	r, _ := env.NewRandomWalkStarter(s, 5, 2, 3, 1)

	result, err := r.Reset(atLevels(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !result.Exhausted {
		t.Error("reset: expected exhaustion")
	}
	if want := 5 + 2*3; result.Actions != want || s.performed != want {
		t.Errorf("reset: want %d actions, have %d (performed %d)", want,
			result.Actions, s.performed)
	}
}

func TestResetNoApplicableActions(t *testing.T) {
	s := &stuck{}
	r, _ := env.NewRandomWalkStarter(s, 5, 2, 3, 1)

	result, err := r.Reset(atLevels(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !result.Exhausted || result.Actions != 0 {
		t.Errorf("reset: want exhausted with no actions, have %+v", result)
	}
}

func TestResetPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	s := &stuck{actions: []int{0}, failWith: boom}
	r, _ := env.NewRandomWalkStarter(s, 5, 2, 3, 1)

	if _, err := r.Reset(atLevels(2, 3)); !errors.Is(err, boom) {
		t.Errorf("reset: want %v, have %v", boom, err)
	}
}

func TestNewRandomWalkStarterErrors(t *testing.T) {
	d, _ := dimmer.New(0, 0)
	if _, err := env.NewRandomWalkStarter(d, -1, 0, 1, 1); err == nil {
		t.Error("expected error for negative attempts")
	}
	if _, err := env.NewRandomWalkStarter(d, 1, 1, 0, 1); err == nil {
		t.Error("expected error for empty burst")
	}
}
