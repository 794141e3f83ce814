// Package agent defines the interfaces shared by tabular agents
package agent

// Policy represents a policy that selects actions from a row of
// action values.
//
// A Policy is given the action values of the current state and the
// actions applicable in that state, and must return one of the
// applicable actions. actions is never empty.
type Policy interface {
	SelectAction(row []float64, actions []int) int
}
