package goal

import (
	"fmt"

	env "github.com/samuelfneumann/zonelearn/environment"
)

// States returns the set of state indices of e that satisfy g
func States(e env.Environment, g Goal) (map[int]struct{}, error) {
	states, err := e.CompatibleStates(g.Descriptor())
	if err != nil {
		return nil, fmt.Errorf("states: could not get compatible states "+
			"for goal %v: %w", g, err)
	}

	set := make(map[int]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set, nil
}

// IsGoalState returns whether state satisfies g in environment e
func IsGoalState(e env.Environment, state int, g Goal) (bool, error) {
	states, err := States(e, g)
	if err != nil {
		return false, fmt.Errorf("isGoalState: %w", err)
	}

	_, ok := states[state]
	return ok, nil
}
