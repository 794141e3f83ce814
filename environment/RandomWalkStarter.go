package environment

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Default bounds of a RandomWalkStarter
const (
	DefaultResetAttempts      int = 10_000
	DefaultAggressiveAttempts int = 30
	DefaultAggressiveBurst    int = 3
)

// ResetResult summarizes a call to RandomWalkStarter.Reset
type ResetResult struct {
	// Actions is the number of actions performed in the environment
	Actions int

	// Exhausted is true if every attempt was used and the environment
	// still satisfied the goal
	Exhausted bool
}

// RandomWalkStarter moves a live environment away from a set of goal
// states at the start of an episode by performing uniformly random
// applicable actions.
//
// A reset first performs single random actions, checking the goal
// after each, for up to attempts tries. If the environment still
// satisfies the goal, an aggressive pass performs up to aggressive
// bursts of burst random actions each, checking the goal only after
// each burst.
type RandomWalkStarter struct {
	env        Environment
	attempts   int
	aggressive int
	burst      int
	rng        *rand.Rand
}

// NewRandomWalkStarter returns a new RandomWalkStarter driving env
func NewRandomWalkStarter(env Environment, attempts, aggressive, burst int,
	seed uint64) (*RandomWalkStarter, error) {
	if attempts < 0 || aggressive < 0 {
		return nil, fmt.Errorf("newRandomWalkStarter: attempt bounds must "+
			"be non-negative, got %d and %d", attempts, aggressive)
	}
	if burst < 1 {
		return nil, fmt.Errorf("newRandomWalkStarter: burst %d < 1", burst)
	}

	return &RandomWalkStarter{
		env:        env,
		attempts:   attempts,
		aggressive: aggressive,
		burst:      burst,
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

// Reset drives the environment away from states whose decoded vector
// satisfies atGoal. No action is performed if the environment starts
// outside the goal. Errors from the environment are returned as is.
func (r *RandomWalkStarter) Reset(atGoal func([]int) bool) (ResetResult,
	error) {
	var result ResetResult

	inGoal, err := r.inGoal(atGoal)
	if err != nil || !inGoal {
		return result, err
	}

	for i := 0; i < r.attempts; i++ {
		acted, err := r.randomAction()
		if err != nil {
			return result, err
		}
		if !acted {
			// Stuck: no action can move the environment
			result.Exhausted = true
			return result, nil
		}
		result.Actions++

		if inGoal, err = r.inGoal(atGoal); err != nil || !inGoal {
			return result, err
		}
	}

	for i := 0; i < r.aggressive; i++ {
		for j := 0; j < r.burst; j++ {
			acted, err := r.randomAction()
			if err != nil {
				return result, err
			}
			if !acted {
				break
			}
			result.Actions++
		}

		if inGoal, err = r.inGoal(atGoal); err != nil || !inGoal {
			return result, err
		}
	}

	result.Exhausted = true
	return result, nil
}

// inGoal reads the current state and checks it against atGoal
func (r *RandomWalkStarter) inGoal(atGoal func([]int) bool) (bool, error) {
	if _, err := r.env.ReadCurrentState(); err != nil {
		return false, fmt.Errorf("reset: could not read state: %w", err)
	}
	return atGoal(r.env.CurrentStateVector()), nil
}

// randomAction performs a single uniformly random applicable action in
// the current state. It returns false if no action is applicable.
func (r *RandomWalkStarter) randomAction() (bool, error) {
	state, err := r.env.ReadCurrentState()
	if err != nil {
		return false, fmt.Errorf("reset: could not read state: %w", err)
	}

	actions, err := r.env.ApplicableActions(state)
	if err != nil {
		return false, fmt.Errorf("reset: could not get applicable "+
			"actions: %w", err)
	}
	if len(actions) == 0 {
		return false, nil
	}

	action := actions[r.rng.Intn(len(actions))]
	if err := r.env.PerformAction(action); err != nil {
		return false, fmt.Errorf("reset: could not perform action %d: %w",
			action, err)
	}
	return true, nil
}
