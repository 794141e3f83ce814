// Package reward implements the reward function of the zone lighting
// task.
//
// The reward trades off reaching the goal illumination levels against
// energy use, stability of the illumination levels, and making use of
// natural light. The previous illumination levels needed to penalize
// level changes are passed in and returned explicitly, so that the
// caller owns the memory between calls.
package reward

import (
	"math"

	env "github.com/samuelfneumann/zonelearn/environment"
	"github.com/samuelfneumann/zonelearn/goal"
)

// Default weights of the reward function
const (
	StepCost          float64 = 1.0
	LightCost         float64 = 5.0
	BlindsCost        float64 = 0.1
	LevelChangeCost   float64 = 0.1
	WastedLightCost   float64 = 1.0
	SunshineThreshold int     = 2
)

// Levels holds the illumination level of each zone at the previous
// transition
type Levels struct {
	Z1, Z2 int
}

// Model computes rewards. Every cost is subtracted from the reward, so
// costs should be non-negative.
type Model struct {
	// StepCost is paid on every transition
	StepCost float64

	// LightCost is paid per zone whose light is on
	LightCost float64

	// BlindsCost is paid per zone whose blinds are deployed
	BlindsCost float64

	// LevelChangeCost is paid per level of absolute change in each
	// zone's illumination since the previous transition
	LevelChangeCost float64

	// WastedLightCost is paid per zone whose light is on and blinds
	// are deployed while the sunshine is at least SunshineThreshold
	WastedLightCost   float64
	SunshineThreshold int
}

// Default returns the default reward Model
func Default() Model {
	return Model{
		StepCost:          StepCost,
		LightCost:         LightCost,
		BlindsCost:        BlindsCost,
		LevelChangeCost:   LevelChangeCost,
		WastedLightCost:   WastedLightCost,
		SunshineThreshold: SunshineThreshold,
	}
}

// Reward returns the reward for arriving in the state with decoded
// vector state when the illumination levels at the previous transition
// were prev, along with the levels to pass as prev on the next call.
// If both zones are at the levels of g, goalReward is added.
func (m Model) Reward(g goal.Goal, state []int, prev Levels,
	goalReward float64) (float64, Levels) {
	z1, z2 := env.Levels(state)
	z1Light := state[env.Z1Light] == 1
	z2Light := state[env.Z2Light] == 1
	z1Blinds := state[env.Z1Blinds] == 1
	z2Blinds := state[env.Z2Blinds] == 1
	sunny := state[env.Sunshine] >= m.SunshineThreshold

	reward := -m.StepCost
	if g.Reached(state) {
		reward += goalReward
	}

	if z1Light {
		reward -= m.LightCost
	}
	if z2Light {
		reward -= m.LightCost
	}

	if z1Blinds {
		reward -= m.BlindsCost
	}
	if z2Blinds {
		reward -= m.BlindsCost
	}

	reward -= m.LevelChangeCost * math.Abs(float64(z1-prev.Z1))
	reward -= m.LevelChangeCost * math.Abs(float64(z2-prev.Z2))

	if sunny {
		if z1Blinds && z1Light {
			reward -= m.WastedLightCost
		}
		if z2Blinds && z2Light {
			reward -= m.WastedLightCost
		}
	}

	return reward, Levels{Z1: z1, Z2: z2}
}
