package policy

import (
	"github.com/samuelfneumann/zonelearn/agent"
	"github.com/samuelfneumann/zonelearn/agent/tabular/qtable"
)

var (
	_ agent.Policy = Greedy{}
	_ agent.Policy = (*EGreedy)(nil)
)

// Greedy always selects the first applicable action with the highest
// action value
type Greedy struct{}

// NewGreedy creates a new Greedy policy
func NewGreedy() Greedy {
	return Greedy{}
}

// SelectAction selects the greedy action
func (Greedy) SelectAction(row []float64, actions []int) int {
	return qtable.ArgMax(row, actions)
}
