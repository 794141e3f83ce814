package progressbar

import (
	"strings"
	"testing"
)

func TestManualProgressBar(t *testing.T) {
	var b strings.Builder
	p := NewManualProgressBar(&b, 10, 4)

	p.Increment()
	if p.progress() != 0.25 {
		t.Errorf("progress: want 0.25, have %v", p.progress())
	}
	p.Display()
	if !strings.Contains(b.String(), "1/4 [25.00%") {
		t.Errorf("display: want 25.00%%, have %q", b.String())
	}

	for i := 0; i < 10; i++ {
		p.Increment()
	}
	if p.progress() != 1 {
		t.Errorf("progress: want 1, have %v", p.progress())
	}

	b.Reset()
	p.Display()
	p.Close()
	out := b.String()
	if !strings.HasPrefix(out, "\r\033[K|") || !strings.Contains(out,
		"100.00%") || !strings.HasSuffix(out, "\n") {
		t.Errorf("display: unexpected output %q", out)
	}
}

func TestManualProgressBarEmpty(t *testing.T) {
	var b strings.Builder
	p := NewManualProgressBar(&b, 10, 0)
	p.Increment()
	if p.progress() != 1 {
		t.Errorf("progress: want 1, have %v", p.progress())
	}
}
