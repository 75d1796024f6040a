package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI Color Codes
const (
	Reset = "\033[0m"
	Red   = "\033[31m"
)

// Console writes progress to Out and problems to Err. Progress lines are
// always plain so scripts can match them.
type Console struct {
	Out io.Writer
	Err io.Writer

	color bool
}

// NewConsole colors error output only when err is a terminal.
func NewConsole(out, err io.Writer) *Console {
	return &Console{Out: out, Err: err, color: isTerminal(err)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Created reports a written file as "Created <name>".
func (c *Console) Created(name string) {
	fmt.Fprintf(c.Out, "Created %s\n", name)
}

// Error writes msg to Err tagged [ERROR].
func (c *Console) Error(msg string) {
	c.tagged(Red, "ERROR", msg)
}

func (c *Console) tagged(color, tag, msg string) {
	if c.color {
		fmt.Fprintf(c.Err, "%s[%s] %s%s\n", color, tag, Reset, msg)
		return
	}
	fmt.Fprintf(c.Err, "[%s] %s\n", tag, msg)
}
