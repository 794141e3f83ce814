// Package progressbar implements functionality of printing a progress
// bar to a terminal
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar draws a progress bar that is only redrawn when
// Display is called, e.g. once per finished episode. It is not safe
// for concurrent use.
type ManualProgressBar struct {
	out     io.Writer
	width   int
	total   int
	done    int
	started time.Time
	line    strings.Builder
}

// NewManualProgressBar returns a new ManualProgressBar that is width
// characters wide, writes to out, and is full after total calls to
// Increment
func NewManualProgressBar(out io.Writer, width, total int) *ManualProgressBar {
	if total < 1 {
		total = 1
	}
	return &ManualProgressBar{
		out:     out,
		width:   width,
		total:   total,
		started: time.Now(),
	}
}

// Increment records one finished unit of work
func (p *ManualProgressBar) Increment() {
	if p.done < p.total {
		p.done++
	}
}

// progress returns the fraction of work done, in [0, 1]
func (p *ManualProgressBar) progress() float64 {
	return float64(p.done) / float64(p.total)
}

// Display redraws the progress bar over the current line
func (p *ManualProgressBar) Display() {
	filled := int(p.progress() * float64(p.width))

	p.line.Reset()
	p.line.WriteString("|")
	p.line.WriteString(strings.Repeat("█", filled))
	p.line.WriteString(strings.Repeat(" ", p.width-filled))
	fmt.Fprintf(&p.line, "| %d/%d [%.2f%% | elapsed: %v]", p.done, p.total,
		p.progress()*100, time.Since(p.started).Truncate(time.Second))

	fmt.Fprintf(p.out, "\r\033[K%v", p.line.String())
}

// Close ends the line of the progress bar
func (p *ManualProgressBar) Close() {
	fmt.Fprintln(p.out)
}
