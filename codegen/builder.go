package codegen

import (
	"bufio"
	"io"
)

const (
	// DefaultStackBase is the first RAM word above the Hack register and
	// static area.
	DefaultStackBase = 256

	// DefaultEntryPoint is the function the bootstrap calls.
	DefaultEntryPoint = "Sys.init"
)

// EngineBuilder can create code generation engines.
type EngineBuilder struct {
	stackBase  int
	entryPoint string
}

// WithStackBase sets the address the bootstrap loads into SP.
func (b EngineBuilder) WithStackBase(addr int) EngineBuilder {
	b.stackBase = addr
	return b
}

// WithEntryPoint sets the function the bootstrap calls.
func (b EngineBuilder) WithEntryPoint(name string) EngineBuilder {
	b.entryPoint = name
	return b
}

// Build creates an engine writing to w.
func (b EngineBuilder) Build(w io.Writer) *Engine {
	if b.stackBase == 0 {
		b.stackBase = DefaultStackBase
	}

	if b.entryPoint == "" {
		b.entryPoint = DefaultEntryPoint
	}

	return &Engine{
		out:        bufio.NewWriter(w),
		stackBase:  b.stackBase,
		entryPoint: b.entryPoint,
	}
}
