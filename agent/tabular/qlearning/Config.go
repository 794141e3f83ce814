package qlearning

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	env "github.com/samuelfneumann/zonelearn/environment"
)

// Config represents the hyperparameters of one call to Train. Values
// are validated but never clamped.
type Config struct {
	Episodes     int     `json:"episodes" yaml:"episodes" mapstructure:"episodes"`
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate" mapstructure:"learning_rate"`
	Discount     float64 `json:"discount" yaml:"discount" mapstructure:"discount"`
	Epsilon      float64 `json:"epsilon" yaml:"epsilon" mapstructure:"epsilon"`
	GoalReward   float64 `json:"goal_reward" yaml:"goal_reward" mapstructure:"goal_reward"`
}

// Validate ensures that the Config is valid. All invalid
// hyperparameters are reported, each wrapping ErrInvalidHyperparameter.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Episodes < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: episodes %d < 0",
			ErrInvalidHyperparameter, c.Episodes))
	}
	if !unit(c.LearningRate) {
		result = multierror.Append(result, fmt.Errorf("%w: learning rate "+
			"%v out of range [0, 1]", ErrInvalidHyperparameter,
			c.LearningRate))
	}
	if !unit(c.Discount) {
		result = multierror.Append(result, fmt.Errorf("%w: discount %v "+
			"out of range [0, 1]", ErrInvalidHyperparameter, c.Discount))
	}
	if !unit(c.Epsilon) {
		result = multierror.Append(result, fmt.Errorf("%w: epsilon %v out "+
			"of range [0, 1]", ErrInvalidHyperparameter, c.Epsilon))
	}
	if !finite(c.GoalReward) {
		result = multierror.Append(result, fmt.Errorf("%w: goal reward %v "+
			"not finite", ErrInvalidHyperparameter, c.GoalReward))
	}

	return result.ErrorOrNil()
}

// Limits bounds the loops of a training run
type Limits struct {
	// StepCap is the maximum number of transitions per episode
	StepCap int `json:"step_cap" yaml:"step_cap" mapstructure:"step_cap"`

	// ResetAttempts is the number of single random actions tried to
	// move the environment out of the goal at the start of an episode
	ResetAttempts int `json:"reset_attempts" yaml:"reset_attempts" mapstructure:"reset_attempts"`

	// AggressiveAttempts is the number of bursts of random actions
	// tried after ResetAttempts is exhausted
	AggressiveAttempts int `json:"aggressive_attempts" yaml:"aggressive_attempts" mapstructure:"aggressive_attempts"`
}

// DefaultStepCap is the default maximum number of transitions per
// episode
const DefaultStepCap int = 10_000

// DefaultLimits returns the default Limits
func DefaultLimits() Limits {
	return Limits{
		StepCap:            DefaultStepCap,
		ResetAttempts:      env.DefaultResetAttempts,
		AggressiveAttempts: env.DefaultAggressiveAttempts,
	}
}

// Validate ensures that the Limits are valid
func (l Limits) Validate() error {
	var result *multierror.Error

	if l.StepCap < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: step cap %d < 0",
			ErrInvalidHyperparameter, l.StepCap))
	}
	if l.ResetAttempts < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: reset attempts "+
			"%d < 0", ErrInvalidHyperparameter, l.ResetAttempts))
	}
	if l.AggressiveAttempts < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: aggressive "+
			"attempts %d < 0", ErrInvalidHyperparameter,
			l.AggressiveAttempts))
	}

	return result.ErrorOrNil()
}

// unit returns whether v is in [0, 1]. NaN is not.
func unit(v float64) bool {
	return v >= 0 && v <= 1
}
