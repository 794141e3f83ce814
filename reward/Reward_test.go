package reward

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/samuelfneumann/zonelearn/goal"
)

func TestReward(t *testing.T) {
	g := goal.Goal{Z1: 2, Z2: 3}
	m := Default()

	tests := []struct {
		name  string
		state []int
		prev  Levels
		want  float64
	}{
		{"goal", []int{2, 3, 0, 0, 0, 0, 0}, Levels{2, 3}, 99},
		{"lights", []int{0, 0, 1, 1, 0, 0, 0}, Levels{0, 0}, -11},
		{"blinds", []int{0, 0, 0, 0, 1, 1, 0}, Levels{0, 0}, -1.2},
		{"level change", []int{3, 0, 0, 0, 0, 0, 0}, Levels{0, 2}, -1.5},
		{"wasted light", []int{3, 3, 1, 1, 1, 1, 2}, Levels{3, 3}, -13.2},
		{"dim light", []int{3, 3, 1, 1, 1, 1, 1}, Levels{3, 3}, -11.2},
		{"goal with costs", []int{2, 3, 1, 0, 0, 0, 1}, Levels{0, 3}, 93.8},
	}

	for _, test := range tests {
		have, next := m.Reward(g, test.state, test.prev, 100)
		if !scalar.EqualWithinAbs(have, test.want, 1e-9) {
			t.Errorf("%s: want %v, have %v", test.name, test.want, have)
		}
		if next.Z1 != test.state[0] || next.Z2 != test.state[1] {
			t.Errorf("%s: want next levels (%d, %d), have %+v", test.name,
				test.state[0], test.state[1], next)
		}
	}
}

func TestRewardGoalRewardOnlyAtGoal(t *testing.T) {
	m := Default()
	state := []int{1, 1, 0, 0, 0, 0, 0}

	atGoal, _ := m.Reward(goal.Goal{Z1: 1, Z2: 1}, state, Levels{1, 1}, 50)
	elsewhere, _ := m.Reward(goal.Goal{Z1: 1, Z2: 2}, state, Levels{1, 1}, 50)

	if !scalar.EqualWithinAbs(atGoal-elsewhere, 50, 1e-9) {
		t.Errorf("goal reward: want difference 50, have %v",
			atGoal-elsewhere)
	}
}

func TestRewardDeterministic(t *testing.T) {
	m := Default()
	g := goal.Goal{Z1: 3, Z2: 0}
	state := []int{3, 1, 1, 0, 1, 0, 3}
	prev := Levels{1, 1}

	first, firstNext := m.Reward(g, state, prev, 10)
	for i := 0; i < 10; i++ {
		r, next := m.Reward(g, state, prev, 10)
		if r != first || next != firstNext {
			t.Fatalf("reward not deterministic: (%v, %v) then (%v, %v)",
				first, firstNext, r, next)
		}
	}
}
