// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/zonelearn/agent/tabular/qtable"
)

// EGreedy implements an ε-greedy policy over the applicable actions of
// a state
type EGreedy struct {
	epsilon float64
	explore distuv.Bernoulli // 1 with probability epsilon
	rng     *rand.Rand
}

// NewEGreedy returns a new EGreedy policy that selects a uniformly
// random applicable action with probability e and the greedy action
// otherwise
func NewEGreedy(e float64, seed uint64) (*EGreedy, error) {
	if !(e >= 0 && e <= 1) {
		return nil, fmt.Errorf("newEGreedy: epsilon %v out of range [0, 1]",
			e)
	}

	source := rand.NewSource(seed)
	return &EGreedy{
		epsilon: e,
		explore: distuv.Bernoulli{P: e, Src: source},
		rng:     rand.New(source),
	}, nil
}

// Epsilon returns the exploration probability of the policy
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SelectAction selects an action from an ε-greedy policy. The greedy
// action is the first action in actions with the highest value in row.
// actions must not be empty.
func (p *EGreedy) SelectAction(row []float64, actions []int) int {
	if p.epsilon > 0 && p.explore.Rand() == 1 {
		return actions[p.rng.Intn(len(actions))]
	}
	return qtable.ArgMax(row, actions)
}
