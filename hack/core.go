// Package hack models the Hack machine targeted by the translator: an
// assembly parser and symbol resolver, and a CPU emulator that runs a loaded
// program one instruction per tick on an akita simulation engine.
//
// The emulator exists to check generated code; it is not part of the
// translation pipeline.
package hack

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
)

// Core runs a Hack program.
type Core struct {
	*sim.TickingComponent

	state     coreState
	emu       instEmulator
	maxCycles int
	err       error
}

// MapProgram loads the program into ROM and resets the PC.
func (c *Core) MapProgram(prog Program) {
	c.state.Code = prog
	c.state.PC = 0
	c.state.Cycles = 0
	c.state.Halted = false
	c.err = nil
}

// Tick executes one instruction.
func (c *Core) Tick() (madeProgress bool) {
	if c.state.Halted || c.err != nil {
		return false
	}

	if c.maxCycles > 0 && c.state.Cycles >= c.maxCycles {
		c.err = fmt.Errorf("%w: %d cycles", ErrCycleLimit, c.state.Cycles)
		return false
	}

	pc := c.state.PC
	if pc < 0 {
		c.err = fmt.Errorf("%w: pc %d", ErrAddressRange, pc)
		return false
	}

	if pc >= len(c.state.Code.Insts) {
		c.state.Halted = true
		return false
	}

	inst := c.state.Code.Insts[pc]
	if err := c.emu.RunInst(inst, &c.state); err != nil {
		c.err = err
		return false
	}

	c.state.Cycles++

	Trace("Inst",
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"PC", pc,
		"Inst", inst.Text,
		"A", c.state.A,
		"D", c.state.D,
		"SP", c.state.RAM[0],
	)

	return !c.state.Halted
}

// Err returns the fault that stopped the core, if any.
func (c *Core) Err() error {
	return c.err
}

// Halted reports whether the program reached its halt loop or ran off the
// end of ROM.
func (c *Core) Halted() bool {
	return c.state.Halted
}

// Cycles returns the number of instructions executed.
func (c *Core) Cycles() int {
	return c.state.Cycles
}

// PC returns the program counter.
func (c *Core) PC() int {
	return c.state.PC
}

// Registers returns A and D.
func (c *Core) Registers() (a, d int16) {
	return c.state.A, c.state.D
}

// GetRAM reads a RAM word.
func (c *Core) GetRAM(addr int) int16 {
	if addr < 0 || addr >= len(c.state.RAM) {
		panic(fmt.Sprintf("invalid RAM address %d", addr))
	}

	return c.state.RAM[addr]
}

// SetRAM writes a RAM word.
func (c *Core) SetRAM(addr int, value int16) {
	if addr < 0 || addr >= len(c.state.RAM) {
		panic(fmt.Sprintf("invalid RAM address %d", addr))
	}

	c.state.RAM[addr] = value
}

// StackTop returns the word just below SP.
func (c *Core) StackTop() int16 {
	return c.GetRAM(int(c.state.RAM[0]) - 1)
}
