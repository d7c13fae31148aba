// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/curioloop/benchfn/runner"
	"github.com/mattn/go-isatty"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Progress prints campaign progress. On a terminal it redraws a single bar line,
// elsewhere it writes one line per finished run.
type Progress struct {
	mu  sync.Mutex
	w   io.Writer
	tty bool
	bar progress.Model
}

// NewProgress creates a progress printer for w.
func NewProgress(w io.Writer) *Progress {
	return &Progress{
		w:   w,
		tty: IsTerminal(w),
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// Update prints the state after a finished run. It matches runner.Runner.OnProgress.
func (p *Progress) Update(s runner.Progress) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.tty {
		fmt.Fprintf(p.w, "[%d/%d] %s %s\n", s.Done, s.Total, s.Function, s.Method)
		return
	}

	var ratio float64
	if s.Total > 0 {
		ratio = float64(s.Done) / float64(s.Total)
	}
	fmt.Fprintf(p.w, "\r\x1b[2K%s %d/%d %s %s", p.bar.ViewAs(ratio), s.Done, s.Total, s.Function, s.Method)
}

// Finish terminates the bar line.
func (p *Progress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tty {
		fmt.Fprintln(p.w)
	}
}
