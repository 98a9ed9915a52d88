// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

// progressBar draws download progress on a terminal. It stays silent when w
// is not a terminal so piped output is never polluted.
type progressBar struct {
	w       io.Writer
	model   progress.Model
	enabled bool
	last    int
	drawn   bool
}

func newProgressBar(w io.Writer) *progressBar {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = term.IsTerminal(int(f.Fd()))
	}
	return &progressBar{
		w:       w,
		model:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)), //nolint:mnd
		enabled: enabled,
		last:    -1,
	}
}

// Update is a fetch.ProgressFunc.
func (p *progressBar) Update(written, total int64) {
	if !p.enabled {
		return
	}

	if total <= 0 {
		fmt.Fprintf(p.w, "\r%s", humanize.Bytes(uint64(written)))
		p.drawn = true
		return
	}

	percent := float64(written) / float64(total)
	// Redraw once per whole percent.
	step := int(percent * 100) //nolint:mnd
	if step == p.last {
		return
	}
	p.last = step
	p.drawn = true
	fmt.Fprintf(p.w, "\r%s %s / %s", p.model.ViewAs(percent), humanize.Bytes(uint64(written)), humanize.Bytes(uint64(total)))
}

// Done ends the progress line.
func (p *progressBar) Done() {
	if p.drawn {
		fmt.Fprintln(p.w)
	}
}
