package qtable

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/samuelfneumann/zonelearn/goal"
)

func TestNew(t *testing.T) {
	q, err := New(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s, a := q.Dims(); s != 3 || a != 2 {
		t.Errorf("dims: want (3, 2), have (%d, %d)", s, a)
	}
	for s := 0; s < 3; s++ {
		if !floats.Equal(q.Row(s), []float64{0, 0}) {
			t.Errorf("row %d not zero: %v", s, q.Row(s))
		}
	}

	if _, err := New(0, 2); err == nil {
		t.Error("new: expected error for zero states")
	}
	if _, err := New(2, -1); err == nil {
		t.Error("new: expected error for negative actions")
	}
}

func TestUpdate(t *testing.T) {
	q, _ := New(2, 2)

	tdError := q.Update(0, 1, 1, 2, 0.5, 0.9)
	if !scalar.EqualWithinAbs(tdError, 2.8, 1e-12) {
		t.Errorf("td error: want 2.8, have %v", tdError)
	}
	if v := q.At(0, 1); !scalar.EqualWithinAbs(v, 1.4, 1e-12) {
		t.Errorf("update: want 1.4, have %v", v)
	}

	// α = 0 leaves the table unchanged
	q.Update(0, 1, 100, 100, 0, 0.9)
	if v := q.At(0, 1); !scalar.EqualWithinAbs(v, 1.4, 1e-12) {
		t.Errorf("update with zero learning rate changed value to %v", v)
	}

	// α = 1 and γ = 0 sets the value to the reward
	q.Update(1, 0, -3, 7, 1, 0)
	if v := q.At(1, 0); v != -3 {
		t.Errorf("update: want -3, have %v", v)
	}
}

func TestArgMax(t *testing.T) {
	row := []float64{1, 3, 3, 0}

	tests := []struct {
		actions []int
		want    int
	}{
		{[]int{0, 1, 2, 3}, 1},
		{[]int{3, 2, 1}, 2},
		{[]int{0, 3}, 0},
		{[]int{3}, 3},
	}

	for _, test := range tests {
		if a := ArgMax(row, test.actions); a != test.want {
			t.Errorf("argMax(%v): want %d, have %d", test.actions, test.want,
				a)
		}
	}
}

func TestMax(t *testing.T) {
	q, _ := New(1, 3)
	q.Set(0, 0, -5)
	q.Set(0, 1, -2)
	q.Set(0, 2, 4)

	if m := q.Max(0, nil); m != 0 {
		t.Errorf("max over no actions: want 0, have %v", m)
	}
	if m := q.Max(0, []int{0, 1}); m != -2 {
		t.Errorf("max: want -2, have %v", m)
	}
	if a := q.ArgMax(0, []int{0, 1, 2}); a != 2 {
		t.Errorf("argMax: want 2, have %d", a)
	}
}

func TestFinite(t *testing.T) {
	q, _ := New(2, 2)
	if !q.Finite() {
		t.Error("finite: zero table should be finite")
	}

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c, _ := New(2, 2)
		c.Set(1, 1, v)
		if c.Finite() {
			t.Errorf("finite: table containing %v reported finite", v)
		}
	}
}

func TestPrint(t *testing.T) {
	q, _ := New(2, 2)
	q.Set(0, 1, 1.5)
	q.Set(1, 0, -12.25)

	var b strings.Builder
	if err := q.Print(&b); err != nil {
		t.Fatal(err)
	}

	want := "Q matrix\n" +
		"From state 0:    0.00   1.50 \n" +
		"From state 1:  -12.25   0.00 \n"
	if b.String() != want {
		t.Errorf("print: want\n%q\nhave\n%q", want, b.String())
	}
	if q.String() != want {
		t.Errorf("string: want\n%q\nhave\n%q", want, q.String())
	}
}

func TestStore(t *testing.T) {
	s := NewStore()
	if _, ok := s.Get(goal.Goal{Z1: 1, Z2: 1}); ok {
		t.Error("get: empty store returned a table")
	}

	first, _ := New(1, 1)
	second, _ := New(1, 1)
	other, _ := New(1, 1)

	s.Put(goal.Goal{Z1: 2, Z2: 3}, first)
	s.Put(goal.Goal{Z1: 0, Z2: 1}, other)
	s.Put(goal.Goal{Z1: 2, Z2: 3}, second)

	if s.Len() != 2 {
		t.Errorf("len: want 2, have %d", s.Len())
	}
	if q, ok := s.Get(goal.Goal{Z1: 2, Z2: 3}); !ok || q != second {
		t.Error("put: table was not replaced")
	}

	want := []goal.Goal{{Z1: 0, Z2: 1}, {Z1: 2, Z2: 3}}
	if goals := s.Goals(); !reflect.DeepEqual(goals, want) {
		t.Errorf("goals: want %v, have %v", want, goals)
	}
}
