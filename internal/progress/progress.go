// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package progress provides a one-line file-processing status display.
*/
package progress

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Printer rewrites one status line on stderr while files are processed. It
// is silent when stderr is not a terminal so piped and logged output stays
// clean.
type Printer struct {
	out    *os.File
	isTerm bool
	width  int
	total  int
}

// NewPrinter creates a Printer for a run over total files.
func NewPrinter(total int) *Printer {
	p := &Printer{out: os.Stderr, total: total}
	fd := int(p.out.Fd())
	if term.IsTerminal(fd) {
		p.isTerm = true
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			p.width = width
		} else {
			p.width = 80
		}
	}
	return p
}

// Update rewrites the status line for the index'th file (1-based).
func (p *Printer) Update(index int, label string, status string) {
	if !p.isTerm {
		return
	}
	line := fmt.Sprintf("[%d/%d] %s: %s", index, p.total, label, status)
	if len(line) > p.width-1 {
		line = line[:p.width-1]
	}
	fmt.Fprintf(p.out, "\r\033[K%s", line)
}

// Done clears the status line.
func (p *Printer) Done() {
	if !p.isTerm {
		return
	}
	fmt.Fprint(p.out, "\r\033[K")
}
