package goal

import (
	"errors"
	"testing"

	env "github.com/samuelfneumann/zonelearn/environment"
	"github.com/samuelfneumann/zonelearn/environment/lab"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Goal
		invalid bool
	}{
		{"2,3", Goal{2, 3}, false},
		{" 0 , 1 ", Goal{0, 1}, false},
		{"3", Goal{}, true},
		{"1,2,3", Goal{}, true},
		{"a,1", Goal{}, true},
		{"4,0", Goal{}, true},
		{"0,-1", Goal{}, true},
	}

	for _, test := range tests {
		g, err := Parse(test.in)
		if test.invalid {
			if !errors.Is(err, ErrInvalidGoal) {
				t.Errorf("parse(%q): want %v, have %v", test.in,
					ErrInvalidGoal, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parse(%q): %v", test.in, err)
		} else if g != test.want {
			t.Errorf("parse(%q): want %v, have %v", test.in, test.want, g)
		}
	}
}

func TestString(t *testing.T) {
	if s := (Goal{2, 3}).String(); s != "[2,3]" {
		t.Errorf("string: want [2,3], have %s", s)
	}
}

func TestLess(t *testing.T) {
	if !(Goal{0, 3}).Less(Goal{1, 0}) {
		t.Error("less: zone 1 should order first")
	}
	if !(Goal{1, 0}).Less(Goal{1, 2}) {
		t.Error("less: zone 2 should break ties")
	}
	if (Goal{1, 2}).Less(Goal{1, 2}) {
		t.Error("less: goal should not be less than itself")
	}
}

func TestStatesMatchLevels(t *testing.T) {
	l, err := lab.New(1, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	space, _ := env.NewSpace([]int{4, 4, 2, 2, 2, 2, 4})
	n, _ := l.StateCount()

	for z1 := 0; z1 <= MaxLevel; z1++ {
		for z2 := 0; z2 <= MaxLevel; z2++ {
			g := Goal{z1, z2}
			states, err := States(l, g)
			if err != nil {
				t.Fatal(err)
			}

			for s := 0; s < n; s++ {
				v, _ := space.Decode(s)
				_, in := states[s]
				if want := v[env.Z1Level] == z1 && v[env.Z2Level] == z2; in != want {
					t.Errorf("goal %v, state %d (%v): want %v, have %v", g,
						s, v, want, in)
				}
				if in != g.Reached(v) {
					t.Errorf("goal %v, state %v: reached disagrees with "+
						"states", g, v)
				}
			}
		}
	}
}

func TestIsGoalState(t *testing.T) {
	l, _ := lab.New(2, 0, 1)
	state, _ := l.ReadCurrentState() // levels (2, 1)

	tests := []struct {
		g    Goal
		want bool
	}{
		{Goal{2, 1}, true},
		{Goal{2, 3}, false},
		{Goal{1, 2}, false},
	}

	for _, test := range tests {
		have, err := IsGoalState(l, state, test.g)
		if err != nil {
			t.Fatal(err)
		}
		if have != test.want {
			t.Errorf("isGoalState(%v): want %v, have %v", test.g, test.want,
				have)
		}
	}
}
