// Package experiment implements functionality for running a training
// experiment: one environment, one agent, and a list of goals that are
// trained one after the other against the same environment.
package experiment

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"github.com/samuelfneumann/zonelearn/agent/tabular/qlearning"
	"github.com/samuelfneumann/zonelearn/environment/envconfig"
	"github.com/samuelfneumann/zonelearn/environment/wrappers"
	"github.com/samuelfneumann/zonelearn/experiment/tracker"
	"github.com/samuelfneumann/zonelearn/goal"
)

// Config represents a configuration of an experiment
type Config struct {
	Seed    uint64           `json:"seed" yaml:"seed" mapstructure:"seed"`
	Goals   []goal.Goal      `json:"goals" yaml:"goals" mapstructure:"goals"`
	Agent   qlearning.Config `json:"agent" yaml:"agent" mapstructure:"agent"`
	Limits  qlearning.Limits `json:"limits" yaml:"limits" mapstructure:"limits"`
	EnvConf envconfig.Config `json:"environment" yaml:"environment" mapstructure:"environment"`
}

// DefaultConfig returns the default experiment Config
func DefaultConfig() Config {
	return Config{
		Seed:  1,
		Goals: []goal.Goal{{Z1: 2, Z2: 3}},
		Agent: qlearning.Config{
			Episodes:     1000,
			LearningRate: 0.1,
			Discount:     0.9,
			Epsilon:      0.1,
			GoalReward:   100,
		},
		Limits:  qlearning.DefaultLimits(),
		EnvConf: envconfig.Default(),
	}
}

// Validate returns every problem with the Config
func (c Config) Validate() error {
	var result *multierror.Error

	if len(c.Goals) == 0 {
		result = multierror.Append(result, fmt.Errorf("no goals"))
	}
	for _, g := range c.Goals {
		if err := g.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := c.Agent.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Limits.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// Experiment trains one QLearning agent for each goal of a Config
type Experiment struct {
	config   Config
	agent    *qlearning.QLearning
	trackers []tracker.Tracker
	logger   log.FieldLogger
}

// New creates the environment and agent described by c. Every TimeStep
// of every training run is sent to trackers.
func New(c Config, logger log.FieldLogger, trackers ...tracker.Tracker) (
	*Experiment, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	e, err := c.EnvConf.Create(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	helper := wrappers.NewHelper(logger)
	helper.Init(e)

	agent, err := qlearning.New(helper, c.Seed,
		qlearning.WithLimits(c.Limits),
		qlearning.WithLogger(logger),
		qlearning.WithTrackers(trackers...),
	)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	return &Experiment{
		config:   c,
		agent:    agent,
		trackers: trackers,
		logger:   logger,
	}, nil
}

// Run trains every goal in order. It stops at the first failed goal.
func (e *Experiment) Run() error {
	for _, g := range e.config.Goals {
		e.logger.WithField("goal", g).Info("Training goal")
		if _, err := e.agent.Train(g, e.config.Agent); err != nil {
			return fmt.Errorf("run: goal %v: %w", g, err)
		}
	}
	return nil
}

// Agent returns the agent of the experiment
func (e *Experiment) Agent() *qlearning.QLearning {
	return e.agent
}

// Save saves the data of every tracker
func (e *Experiment) Save() error {
	var result *multierror.Error
	for _, t := range e.trackers {
		if err := t.Save(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
