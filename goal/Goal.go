// Package goal implements goal descriptions for the zone lighting
// environments and the matching of states against them.
//
// A Goal fixes the target illumination level of both zones and leaves
// every other feature of the state unconstrained, so that a Goal
// identifies a set of goal states rather than a single state.
package goal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	env "github.com/samuelfneumann/zonelearn/environment"
)

// MaxLevel is the highest target level of a Goal
const MaxLevel = env.MaxLevel

// ErrInvalidGoal is returned when a Goal has a target level out of range
var ErrInvalidGoal = errors.New("invalid goal")

// Goal is a desired illumination level for each zone. Goals are
// comparable and can be used as map keys.
type Goal struct {
	Z1 int `json:"z1" yaml:"z1" mapstructure:"z1"`
	Z2 int `json:"z2" yaml:"z2" mapstructure:"z2"`
}

// New returns a new validated Goal
func New(z1, z2 int) (Goal, error) {
	g := Goal{Z1: z1, Z2: z2}
	return g, g.Validate()
}

// Parse parses a Goal of the form "z1,z2", e.g. "2,3"
func Parse(s string) (Goal, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return Goal{}, fmt.Errorf("parse: %q: %w: want two levels, got %d",
			s, ErrInvalidGoal, len(fields))
	}

	var levels [2]int
	for i, f := range fields {
		level, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Goal{}, fmt.Errorf("parse: %q: %w: %v", s, ErrInvalidGoal,
				err)
		}
		levels[i] = level
	}

	return New(levels[0], levels[1])
}

// Validate returns an error wrapping ErrInvalidGoal if either target
// level is outside [0, MaxLevel]
func (g Goal) Validate() error {
	if g.Z1 < 0 || g.Z1 > MaxLevel || g.Z2 < 0 || g.Z2 > MaxLevel {
		return fmt.Errorf("validate: %w: levels %v out of range [0, %d]",
			ErrInvalidGoal, g, MaxLevel)
	}
	return nil
}

// Descriptor returns the partial state description of the Goal: the
// two target levels followed by wildcards
func (g Goal) Descriptor() env.Descriptor {
	d := env.NewDescriptor()
	d[env.Z1Level] = g.Z1
	d[env.Z2Level] = g.Z2
	return d
}

// Reached returns whether the decoded state vector v has the Goal's
// illumination levels
func (g Goal) Reached(v []int) bool {
	z1, z2 := env.Levels(v)
	return z1 == g.Z1 && z2 == g.Z2
}

// Less orders Goals by zone 1 then zone 2 level
func (g Goal) Less(other Goal) bool {
	if g.Z1 != other.Z1 {
		return g.Z1 < other.Z1
	}
	return g.Z2 < other.Z2
}

func (g Goal) String() string {
	return fmt.Sprintf("[%d,%d]", g.Z1, g.Z2)
}
