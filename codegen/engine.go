// Package codegen translates VM commands into Hack assembly.
//
// An Engine is one translation session. It owns the counters that keep
// generated labels unique and the name of the function currently being
// translated, so a single Engine must see every unit of a program in order.
// The output is append-only: each Write* call appends the lines for one
// command and never revisits earlier output.
//
// # Calling convention
//
// A call pushes the return address and the caller's LCL, ARG, THIS and THAT,
// then points ARG at the first argument (SP - numArgs - 5) and LCL at the
// current SP. The callee's function prologue pushes its zeroed locals.
// Return reads the saved values back relative to the frame base held in
// R13, with the return address kept in R14.
package codegen

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strconv"
)

// LevelTrace is below debug and logs every translated command.
const LevelTrace = slog.LevelDebug - 4

// Scratch registers used by pop and return.
const (
	scratchAddr  = "R13"
	scratchFrame = "R13"
	scratchRet   = "R14"
)

// frameSize is the number of words a call pushes in front of the callee's
// locals: the return address and four saved segment pointers.
const frameSize = 5

// State is the mutable part of a translation session.
type State struct {
	CurrentFunction string
	LabelCounter    int
	CallCounter     int
}

// Engine writes the Hack assembly for a stream of VM commands.
type Engine struct {
	out *bufio.Writer
	err error

	stackBase  int
	entryPoint string

	state   State
	unit    string
	started bool
	lines   int
}

// State returns a copy of the session state.
func (e *Engine) State() State {
	return e.state
}

// SetUnit records the name of the unit whose commands follow. It does not
// reset any counters.
func (e *Engine) SetUnit(name string) {
	e.unit = name

	slog.Debug("Unit",
		"Unit", name,
		"LabelCounter", e.state.LabelCounter,
		"CallCounter", e.state.CallCounter,
	)
}

// Lines returns the number of assembly lines emitted so far.
func (e *Engine) Lines() int {
	return e.lines
}

// Flush writes any buffered output to the underlying writer.
func (e *Engine) Flush() error {
	if e.err != nil {
		return e.err
	}

	e.err = e.out.Flush()

	return e.err
}

func (e *Engine) trace(cmd string) {
	slog.Log(context.Background(), LevelTrace, "Translate",
		"Unit", e.unit,
		"Function", e.state.CurrentFunction,
		"Command", cmd,
		"Line", e.lines,
	)
}

// emit appends lines to the output. The first write error is kept and
// returned for every later call.
func (e *Engine) emit(lines ...string) error {
	if e.err != nil {
		return e.err
	}

	e.started = true

	for _, line := range lines {
		if _, err := e.out.WriteString(line); err != nil {
			e.err = err
			return err
		}

		if err := e.out.WriteByte('\n'); err != nil {
			e.err = err
			return err
		}

		e.lines++
	}

	return nil
}

func (e *Engine) comment(text string) error {
	e.trace(text)
	return e.emit("// " + text)
}

// scoped qualifies a label with the function currently being translated.
func (e *Engine) scoped(label string) string {
	if e.state.CurrentFunction == "" {
		return label
	}

	return e.state.CurrentFunction + "$" + label
}

func (e *Engine) nextCompareLabels() (string, string) {
	n := e.state.LabelCounter
	e.state.LabelCounter++

	return fmt.Sprintf("TRUE_%d", n), fmt.Sprintf("END_%d", n)
}

func (e *Engine) nextReturnLabel(callee string) string {
	n := e.state.CallCounter
	e.state.CallCounter++

	return callee + "$ret." + strconv.Itoa(n)
}

func at(v any) string {
	return fmt.Sprintf("@%v", v)
}

func label(name string) string {
	return "(" + name + ")"
}
