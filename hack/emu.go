package hack

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAddressRange = errors.New("memory address out of range")
	ErrCycleLimit   = errors.New("cycle limit reached before halt")
)

type coreState struct {
	PC     int
	A, D   int16
	RAM    []int16
	Code   Program
	Cycles int
	Halted bool
}

type compFunc func(x, d int16) int16

// compTable is keyed by the A-register form of each comp. The M forms
// substitute the memory operand for A.
var compTable = map[string]compFunc{
	"0":   func(_, _ int16) int16 { return 0 },
	"1":   func(_, _ int16) int16 { return 1 },
	"-1":  func(_, _ int16) int16 { return -1 },
	"D":   func(_, d int16) int16 { return d },
	"A":   func(x, _ int16) int16 { return x },
	"!D":  func(_, d int16) int16 { return ^d },
	"!A":  func(x, _ int16) int16 { return ^x },
	"-D":  func(_, d int16) int16 { return -d },
	"-A":  func(x, _ int16) int16 { return -x },
	"D+1": func(_, d int16) int16 { return d + 1 },
	"A+1": func(x, _ int16) int16 { return x + 1 },
	"D-1": func(_, d int16) int16 { return d - 1 },
	"A-1": func(x, _ int16) int16 { return x - 1 },
	"D+A": func(x, d int16) int16 { return d + x },
	"A+D": func(x, d int16) int16 { return d + x },
	"D-A": func(x, d int16) int16 { return d - x },
	"A-D": func(x, d int16) int16 { return x - d },
	"D&A": func(x, d int16) int16 { return d & x },
	"A&D": func(x, d int16) int16 { return d & x },
	"D|A": func(x, d int16) int16 { return d | x },
	"A|D": func(x, d int16) int16 { return d | x },
}

var jumpConds = map[string]func(v int16) bool{
	"JGT": func(v int16) bool { return v > 0 },
	"JEQ": func(v int16) bool { return v == 0 },
	"JGE": func(v int16) bool { return v >= 0 },
	"JLT": func(v int16) bool { return v < 0 },
	"JNE": func(v int16) bool { return v != 0 },
	"JLE": func(v int16) bool { return v <= 0 },
	"JMP": func(int16) bool { return true },
}

// lookupComp returns the function for comp and whether it reads memory.
func lookupComp(comp string) (compFunc, bool, bool) {
	if strings.Contains(comp, "A") && strings.Contains(comp, "M") {
		return nil, false, false
	}

	usesM := strings.Contains(comp, "M")
	f, ok := compTable[strings.ReplaceAll(comp, "M", "A")]

	return f, usesM, ok
}

type instEmulator struct {
}

// RunInst executes one instruction and advances the PC.
func (i instEmulator) RunInst(inst Inst, state *coreState) error {
	switch inst.Kind {
	case AInst:
		state.A = int16(inst.Value)
		state.PC++
		return nil
	case CInst:
		return i.runC(inst, state)
	default:
		return fmt.Errorf("cannot execute %q", inst.Text)
	}
}

func (i instEmulator) runC(inst Inst, state *coreState) error {
	f, usesM, ok := lookupComp(inst.Comp)
	if !ok {
		return fmt.Errorf("unknown comp %q", inst.Comp)
	}

	addr := int(state.A)
	x := state.A
	if usesM {
		m, err := i.read(state, addr)
		if err != nil {
			return err
		}
		x = m
	}

	value := f(x, state.D)

	if strings.ContainsRune(inst.Dest, 'M') {
		if err := i.write(state, addr, value); err != nil {
			return err
		}
	}
	if strings.ContainsRune(inst.Dest, 'A') {
		state.A = value
	}
	if strings.ContainsRune(inst.Dest, 'D') {
		state.D = value
	}

	if inst.Jump != "" && jumpConds[inst.Jump](value) {
		target := addr
		if isHaltLoop(state.Code, state.PC, target) {
			state.Halted = true
		}
		state.PC = target
		return nil
	}

	state.PC++

	return nil
}

func (instEmulator) read(state *coreState, addr int) (int16, error) {
	if addr < 0 || addr >= len(state.RAM) {
		return 0, fmt.Errorf("%w: read %d at pc %d", ErrAddressRange, addr, state.PC)
	}

	return state.RAM[addr], nil
}

func (instEmulator) write(state *coreState, addr int, value int16) error {
	if addr < 0 || addr >= len(state.RAM) {
		return fmt.Errorf("%w: write %d at pc %d", ErrAddressRange, addr, state.PC)
	}

	state.RAM[addr] = value

	return nil
}

// isHaltLoop reports the (L) @L 0;JMP idiom: a jump at pc back to an
// A-instruction at pc-1 that loads its own address.
func isHaltLoop(code Program, pc, target int) bool {
	if target != pc-1 || target < 0 || target >= len(code.Insts) {
		return false
	}

	prev := code.Insts[target]

	return prev.Kind == AInst && prev.Value == target
}
