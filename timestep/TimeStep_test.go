package timestep

import "testing"

func TestSetEnd(t *testing.T) {
	tests := []EndType{TerminalStateReached, Timeout, NoActions}

	for _, end := range tests {
		step := New(Mid, 1, 0.9, 3, 0, 4, 0)
		if step.EndType() != Unended {
			t.Errorf("endType: want %v before SetEnd, have %v", Unended,
				step.EndType())
		}

		step.SetEnd(end)
		if !step.Last() || step.Mid() {
			t.Errorf("setEnd(%v): want Last step, have %v", end, step.StepType)
		}
		if step.EndType() != end {
			t.Errorf("endType: want %v, have %v", end, step.EndType())
		}
		if step.Reward != 1 || step.State != 3 || step.Number != 4 {
			t.Errorf("setEnd(%v): changed step data: %v", end, step)
		}
	}
}

func TestEndTypeString(t *testing.T) {
	tests := map[EndType]string{
		Unended:              "Unended",
		TerminalStateReached: "TerminalStateReached",
		Timeout:              "Timeout",
		NoActions:            "NoActions",
	}
	for end, want := range tests {
		if have := end.String(); have != want {
			t.Errorf("string: want %q, have %q", want, have)
		}
	}
}

func TestStepType(t *testing.T) {
	step := New(First, 0, 0, 0, -1, 0, 0)
	if !step.First() || step.StepType.String() != "First" {
		t.Errorf("want First step, have %v", step.StepType)
	}
}
