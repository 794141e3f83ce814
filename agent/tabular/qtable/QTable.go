// Package qtable implements dense tabular action-value functions
package qtable

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// QTable is a dense states × actions table of action values. Entry
// (s, a) estimates the discounted return of taking action a in state s.
type QTable struct {
	values *mat.Dense
}

// New returns a new zero-initialized QTable. Both dimensions must be
// positive.
func New(states, actions int) (*QTable, error) {
	if states < 1 || actions < 1 {
		return nil, fmt.Errorf("new: table dimensions must be positive, "+
			"got (%d, %d)", states, actions)
	}
	return &QTable{values: mat.NewDense(states, actions, nil)}, nil
}

// Dims returns the number of states and actions of the table
func (q *QTable) Dims() (states, actions int) {
	return q.values.Dims()
}

// At returns the action value of (state, action)
func (q *QTable) At(state, action int) float64 {
	return q.values.At(state, action)
}

// Set sets the action value of (state, action)
func (q *QTable) Set(state, action int, value float64) {
	q.values.Set(state, action, value)
}

// Row returns the action values of state. The returned slice shares
// storage with the table.
func (q *QTable) Row(state int) []float64 {
	return q.values.RawRowView(state)
}

// Update applies the Q-learning update to (state, action):
//
//	Q(s, a) ← Q(s, a) + α(r + γ maxQNext − Q(s, a))
//
// and returns the temporal difference error.
func (q *QTable) Update(state, action int, reward, maxQNext, alpha,
	gamma float64) float64 {
	current := q.values.At(state, action)
	tdError := reward + gamma*maxQNext - current
	q.values.Set(state, action, current+alpha*tdError)
	return tdError
}

// ArgMax returns the action in actions with the highest value in
// state. Ties are broken by the order of actions. actions must not be
// empty.
func (q *QTable) ArgMax(state int, actions []int) int {
	return ArgMax(q.Row(state), actions)
}

// Max returns the highest action value in state over actions, or 0 if
// actions is empty
func (q *QTable) Max(state int, actions []int) float64 {
	if len(actions) == 0 {
		return 0
	}
	row := q.Row(state)
	return row[ArgMax(row, actions)]
}

// Finite returns whether every entry of the table is finite
func (q *QTable) Finite() bool {
	states, _ := q.Dims()
	for s := 0; s < states; s++ {
		row := q.Row(s)
		if floats.HasNaN(row) {
			return false
		}
		if math.IsInf(floats.Max(row), 1) || math.IsInf(floats.Min(row), -1) {
			return false
		}
	}
	return true
}

// Print writes the table to w, one row per state and one fixed-width
// column per action
func (q *QTable) Print(w io.Writer) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintln(buf, "Q matrix")

	states, actions := q.Dims()
	for s := 0; s < states; s++ {
		fmt.Fprintf(buf, "From state %d:  ", s)
		for a := 0; a < actions; a++ {
			fmt.Fprintf(buf, "%6.2f ", q.values.At(s, a))
		}
		fmt.Fprintln(buf)
	}
	return buf.Flush()
}

func (q *QTable) String() string {
	var b strings.Builder
	q.Print(&b)
	return b.String()
}

// ArgMax returns the action in actions with the highest value in row.
// If multiple actions have the maximum value, the first one in actions
// is returned. actions must not be empty.
func ArgMax(row []float64, actions []int) int {
	best := actions[0]
	for _, a := range actions[1:] {
		if row[a] > row[best] {
			best = a
		}
	}
	return best
}
