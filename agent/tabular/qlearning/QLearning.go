// Package qlearning implements tabular Q-learning against a live
// environment.
//
// A QLearning agent learns one action-value table per goal. Each call
// to Train runs a fixed number of episodes. An episode starts by
// walking the environment out of the goal, then repeatedly selects an
// ε-greedy action, performs it, scores the transition, and applies
//
//	Q(s, a) ← Q(s, a) + α(r + γ max_a' Q(s', a') − Q(s, a))
//
// until a goal state is reached, no action is applicable, or the step
// cap is hit. Convergence is not detected.
package qlearning

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/zonelearn/agent"
	"github.com/samuelfneumann/zonelearn/agent/tabular/policy"
	"github.com/samuelfneumann/zonelearn/agent/tabular/qtable"
	env "github.com/samuelfneumann/zonelearn/environment"
	"github.com/samuelfneumann/zonelearn/experiment/tracker"
	"github.com/samuelfneumann/zonelearn/goal"
	"github.com/samuelfneumann/zonelearn/reward"
	ts "github.com/samuelfneumann/zonelearn/timestep"
)

// logEvery is the number of episodes between progress logs
const logEvery int = 100

// QLearning implements the Q-Learning algorithm over a live
// environment. A QLearning owns its environment handle: it is not safe
// for concurrent use, and two QLearnings must not share an environment.
type QLearning struct {
	env     env.Environment
	states  int
	actions int

	limits Limits
	reward reward.Model
	memory reward.Levels // illumination levels at the last transition

	tables   *qtable.Store
	trackers []tracker.Tracker
	logger   log.FieldLogger
	rng      *rand.Rand // seeds the policy and starter of each run
}

// Option configures a QLearning
type Option func(*QLearning)

// WithLimits sets the loop bounds of training runs
func WithLimits(l Limits) Option {
	return func(q *QLearning) {
		q.limits = l
	}
}

// WithReward sets the reward model
func WithReward(m reward.Model) Option {
	return func(q *QLearning) {
		q.reward = m
	}
}

// WithLogger sets the logger
func WithLogger(l log.FieldLogger) Option {
	return func(q *QLearning) {
		q.logger = l
	}
}

// WithTrackers registers trackers that receive every TimeStep
func WithTrackers(t ...tracker.Tracker) Option {
	return func(q *QLearning) {
		q.trackers = append(q.trackers, t...)
	}
}

// New creates a new QLearning agent learning in environment e. The
// state and action counts of e are queried once here; if they cannot
// be read, an error matching ErrNotInitialized is returned.
func New(e env.Environment, seed uint64, opts ...Option) (*QLearning,
	error) {
	if e == nil {
		return nil, fmt.Errorf("new: %w", &initError{errors.New("nil " +
			"environment")})
	}

	q := &QLearning{
		env:    e,
		limits: DefaultLimits(),
		reward: reward.Default(),
		tables: qtable.NewStore(),
		logger: log.StandardLogger(),
		rng:    rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(q)
	}

	if err := q.limits.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	states, err := e.StateCount()
	if err != nil {
		return nil, fmt.Errorf("new: could not get state count: %w",
			&initError{err})
	}
	actions, err := e.ActionCount()
	if err != nil {
		return nil, fmt.Errorf("new: could not get action count: %w",
			&initError{err})
	}
	if states < 1 || actions < 1 {
		return nil, fmt.Errorf("new: %w", &initError{fmt.Errorf("state "+
			"count %d and action count %d must be positive", states,
			actions)})
	}
	q.states, q.actions = states, actions

	q.logger.WithField("n", states).Info("Initialized state space")
	q.logger.WithField("m", actions).Info("Initialized action space")

	return q, nil
}

// Register registers a tracker that receives every TimeStep of later
// training runs
func (q *QLearning) Register(t tracker.Tracker) {
	q.trackers = append(q.trackers, t)
}

// Dims returns the state and action counts of the environment
func (q *QLearning) Dims() (states, actions int) {
	return q.states, q.actions
}

// Train learns a QTable for goal g with hyperparameters c. The table
// is stored under g, replacing any previous table for g, and returned.
//
// Invalid goals and hyperparameters are reported before the
// environment is touched. If the environment fails during training,
// an *ActionError is returned along with the partially trained table,
// which is not stored.
func (q *QLearning) Train(g goal.Goal, c Config) (*qtable.QTable, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	table, err := qtable.New(q.states, q.actions)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	goalStates, err := goal.States(q.env, g)
	if err != nil {
		return nil, fmt.Errorf("train: %w", &ActionError{-1, -1, err})
	}

	behaviour, err := policy.NewEGreedy(c.Epsilon, q.rng.Uint64())
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	starter, err := env.NewRandomWalkStarter(q.env, q.limits.ResetAttempts,
		q.limits.AggressiveAttempts, env.DefaultAggressiveBurst,
		q.rng.Uint64())
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	r := run{
		QLearning:  q,
		goal:       g,
		config:     c,
		table:      table,
		goalStates: goalStates,
		behaviour:  behaviour,
		starter:    starter,
	}
	for episode := 0; episode < c.Episodes; episode++ {
		if err := r.episode(episode); err != nil {
			return table, fmt.Errorf("train: episode %d: %w", episode, err)
		}

		if episode%logEvery == 0 {
			q.logger.WithFields(log.Fields{
				"goal":     g,
				"episode":  episode,
				"episodes": c.Episodes,
			}).Info("Completed episode")
		}
	}

	q.tables.Put(g, table)
	q.logger.WithField("goal", g).Info("Q-learning completed")

	return table, nil
}

// Table returns the table learned for g, and false if g has not been
// trained
func (q *QLearning) Table(g goal.Goal) (*qtable.QTable, bool) {
	return q.tables.Get(g)
}

// Goals returns all trained goals in ascending order
func (q *QLearning) Goals() []goal.Goal {
	return q.tables.Goals()
}

// PrintTable writes the table learned for g to w
func (q *QLearning) PrintTable(w io.Writer, g goal.Goal) error {
	table, ok := q.tables.Get(g)
	if !ok {
		return fmt.Errorf("printTable: %v: %w", g, ErrNotTrained)
	}
	return table.Print(w)
}

// Memory returns the illumination levels remembered from the last
// transition
func (q *QLearning) Memory() reward.Levels {
	return q.memory
}

// ResetMemory forgets the illumination levels of the last transition
func (q *QLearning) ResetMemory() {
	q.memory = reward.Levels{}
}

// track sends t to every registered tracker
func (q *QLearning) track(t ts.TimeStep) {
	for _, tr := range q.trackers {
		tr.Track(t)
	}
}

// run holds the state of a single call to Train
type run struct {
	*QLearning
	goal       goal.Goal
	config     Config
	table      *qtable.QTable
	goalStates map[int]struct{}
	behaviour  agent.Policy
	starter    *env.RandomWalkStarter
}

// episode runs a single episode
func (r *run) episode(episode int) error {
	result, err := r.starter.Reset(r.goal.Reached)
	if err != nil {
		return &ActionError{-1, -1, err}
	}
	if result.Exhausted {
		r.logger.WithFields(log.Fields{
			"goal":    r.goal,
			"episode": episode,
			"actions": result.Actions,
		}).Warn("Could not move environment out of goal, training anyway")
	}

	state, err := r.env.ReadCurrentState()
	if err != nil {
		return &ActionError{-1, -1, err}
	}
	r.track(ts.New(ts.First, 0, r.config.Discount, state, -1, 0, episode))

	actions, err := r.env.ApplicableActions(state)
	if err != nil {
		return &ActionError{state, -1, err}
	}

	for step := 0; step < r.limits.StepCap; step++ {
		if len(actions) == 0 {
			last := ts.New(ts.Last, 0, r.config.Discount, state, -1, step,
				episode)
			last.SetEnd(ts.NoActions)
			r.track(last)
			return nil
		}

		action := r.behaviour.SelectAction(r.table.Row(state), actions)
		if err := r.env.PerformAction(action); err != nil {
			return &ActionError{state, action, err}
		}

		next, err := r.env.ReadCurrentState()
		if err != nil {
			return &ActionError{state, action, err}
		}

		rew, memory := r.reward.Reward(r.goal, r.env.CurrentStateVector(),
			r.memory, r.config.GoalReward)
		r.memory = memory

		nextActions, err := r.env.ApplicableActions(next)
		if err != nil {
			return &ActionError{next, -1, err}
		}

		maxQNext := r.table.Max(next, nextActions)
		r.table.Update(state, action, rew, maxQNext, r.config.LearningRate,
			r.config.Discount)

		t := ts.New(ts.Mid, rew, r.config.Discount, next, action, step+1,
			episode)
		_, reached := r.goalStates[next]
		if reached {
			t.SetEnd(ts.TerminalStateReached)
		} else if step+1 == r.limits.StepCap {
			t.SetEnd(ts.Timeout)
		}
		r.track(t)

		if reached {
			return nil
		}
		state, actions = next, nextActions
	}

	if r.limits.StepCap == 0 {
		last := ts.New(ts.Last, 0, r.config.Discount, state, -1, 0, episode)
		last.SetEnd(ts.Timeout)
		r.track(last)
	}
	return nil
}
