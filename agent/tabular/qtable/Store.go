package qtable

import (
	"sort"

	"github.com/samuelfneumann/zonelearn/goal"
)

// Store holds one QTable per Goal. Tables are never shared between
// goals. A Store is not safe for concurrent use.
type Store struct {
	tables map[goal.Goal]*QTable
}

// NewStore returns a new empty Store
func NewStore() *Store {
	return &Store{tables: make(map[goal.Goal]*QTable)}
}

// Put stores q under g, replacing any previous table for g
func (s *Store) Put(g goal.Goal, q *QTable) {
	s.tables[g] = q
}

// Get returns the table stored under g and whether it exists
func (s *Store) Get(g goal.Goal) (*QTable, bool) {
	q, ok := s.tables[g]
	return q, ok
}

// Len returns the number of stored tables
func (s *Store) Len() int {
	return len(s.tables)
}

// Goals returns the goals that have a stored table, in ascending order
func (s *Store) Goals() []goal.Goal {
	goals := make([]goal.Goal, 0, len(s.tables))
	for g := range s.tables {
		goals = append(goals, g)
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Less(goals[j])
	})
	return goals
}
