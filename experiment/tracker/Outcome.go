package tracker

import (
	ts "github.com/samuelfneumann/zonelearn/timestep"
)

// Outcome counts how episodes ended. It keeps no data on disk, Save
// is a no-op.
type Outcome struct {
	counts map[ts.EndType]int
}

// NewOutcome returns a new Outcome Tracker
func NewOutcome() *Outcome {
	return &Outcome{counts: make(map[ts.EndType]int)}
}

// Track counts the end type of Last timesteps
func (o *Outcome) Track(t ts.TimeStep) {
	if t.Last() {
		o.counts[t.EndType()]++
	}
}

// Count returns the number of episodes that ended with e
func (o *Outcome) Count(e ts.EndType) int {
	return o.counts[e]
}

// Episodes returns the number of finished episodes
func (o *Outcome) Episodes() int {
	n := 0
	for _, c := range o.counts {
		n += c
	}
	return n
}

// Save implements Tracker
func (o *Outcome) Save() error {
	return nil
}
