// Package notice prints transient user notices to a terminal stream.
package notice

import (
	"fmt"
	"io"
	"sync"

	"mindmap/internal/adapters/tui/styles"
)

// Printer implements ports.Notifier by writing one styled line per notice
type Printer struct {
	mu    sync.Mutex
	w     io.Writer
	quiet bool
}

// NewPrinter creates a printer writing to w. When quiet is set only errors
// are printed.
func NewPrinter(w io.Writer, quiet bool) *Printer {
	return &Printer{w: w, quiet: quiet}
}

// Notify prints a success notice
func (p *Printer) Notify(message string) {
	if p.quiet {
		return
	}
	p.print(styles.Success.Render("✓") + " " + message)
}

// NotifyError prints a failure notice
func (p *Printer) NotifyError(message string) {
	p.print(styles.ErrorMsg.Render("✗") + " " + message)
}

func (p *Printer) print(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, line)
}
