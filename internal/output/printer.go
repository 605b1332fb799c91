// Package output renders console messages and tables for the admin REPL.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes formatted messages to the console. Colors are dropped
// automatically when the NO_COLOR convention applies or when disabled
// explicitly.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter returns a Printer writing to stdout/stderr with colors
// resolved from the environment.
func NewPrinter() *Printer {
	return NewPrinterWithWriters(os.Stdout, os.Stderr, resolveColors())
}

// NewPrinterWithWriters returns a Printer with custom writers. Used by
// tests to capture output.
func NewPrinterWithWriters(out, errw io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: errw, useColors: useColors}
}

func resolveColors() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// Print writes a plain line.
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Info writes an informational line.
func (p *Printer) Info(format string, args ...any) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success writes a confirmation line after a mutation completed.
func (p *Printer) Success(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
}

// Warning writes a warning line to stderr.
func (p *Printer) Warning(format string, args ...any) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
}

// Error writes an error line to stderr.
func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
}

// Bold returns text in bold when colors are active.
func (p *Printer) Bold(text string) string {
	if p.useColors {
		return color.New(color.Bold).Sprint(text)
	}
	return text
}

// Dim returns faint text when colors are active.
func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}

// StatusBadge returns a colored marker for published/featured style flags.
func (p *Printer) StatusBadge(on bool, label string) string {
	if !p.useColors {
		if on {
			return "[" + label + "]"
		}
		return "[-]"
	}
	if on {
		return color.GreenString("●") + " " + label
	}
	return color.New(color.Faint).Sprint("○")
}
