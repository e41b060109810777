package hack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InstKind tells A-, C- and label pseudo-instructions apart.
type InstKind int

const (
	AInst InstKind = iota
	CInst
	LInst
)

// RAM layout of the Hack platform.
const (
	RAMSize       = 32768
	ScreenBase    = 16384
	KeyboardAddr  = 24576
	VariableBase  = 16
	maxAddressLit = 32767
)

var (
	ErrDuplicateLabel = errors.New("duplicate label")
	ErrSyntax         = errors.New("syntax error")
)

// Inst is one line of Hack assembly.
type Inst struct {
	Kind InstKind

	// Symbol is the operand of an A-instruction or the name of a label.
	Symbol string
	// Value is the resolved A-instruction operand.
	Value int

	Dest string
	Comp string
	Jump string

	Line int
	Text string
}

// Program is a loaded Hack program. Labels map to ROM addresses and
// variables to RAM addresses.
type Program struct {
	Insts     []Inst
	Labels    map[string]int
	Variables map[string]int
}

// PredefinedSymbols are the built-in symbols of the Hack assembler.
var PredefinedSymbols = map[string]int{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": ScreenBase,
	"KBD":    KeyboardAddr,
}

func init() {
	for i := 0; i < 16; i++ {
		PredefinedSymbols["R"+strconv.Itoa(i)] = i
	}
}

// Parse splits assembly text into instructions without resolving symbols.
// Label declarations are kept as LInst entries.
func Parse(r io.Reader) ([]Inst, error) {
	var insts []Inst

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		text := scanner.Text()
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}

		text = strings.Join(strings.Fields(text), "")
		if text == "" {
			continue
		}

		inst, err := ParseInst(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		inst.Line = line
		insts = append(insts, inst)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return insts, nil
}

// ParseInst decodes a single instruction with whitespace already removed.
func ParseInst(text string) (Inst, error) {
	inst := Inst{Text: text}

	switch {
	case strings.HasPrefix(text, "@"):
		inst.Kind = AInst
		inst.Symbol = text[1:]
		if inst.Symbol == "" {
			return inst, fmt.Errorf("%w: %q", ErrSyntax, text)
		}

		if n, err := strconv.Atoi(inst.Symbol); err == nil {
			if n < 0 || n > maxAddressLit {
				return inst, fmt.Errorf("%w: constant out of range %q", ErrSyntax, text)
			}
			inst.Value = n
		}
	case strings.HasPrefix(text, "("):
		if !strings.HasSuffix(text, ")") || len(text) < 3 {
			return inst, fmt.Errorf("%w: %q", ErrSyntax, text)
		}
		inst.Kind = LInst
		inst.Symbol = text[1 : len(text)-1]
	default:
		inst.Kind = CInst
		rest := text
		if i := strings.Index(rest, "="); i >= 0 {
			inst.Dest = rest[:i]
			rest = rest[i+1:]
		}
		if i := strings.Index(rest, ";"); i >= 0 {
			inst.Jump = rest[i+1:]
			rest = rest[:i]
		}
		inst.Comp = rest

		if err := validateC(inst); err != nil {
			return inst, fmt.Errorf("%w: %q: %v", ErrSyntax, text, err)
		}
	}

	return inst, nil
}

func validateC(inst Inst) error {
	if _, _, ok := lookupComp(inst.Comp); !ok {
		return fmt.Errorf("unknown comp %q", inst.Comp)
	}

	for _, r := range inst.Dest {
		if r != 'A' && r != 'M' && r != 'D' {
			return fmt.Errorf("unknown dest %q", inst.Dest)
		}
	}

	if inst.Jump != "" {
		if _, ok := jumpConds[inst.Jump]; !ok {
			return fmt.Errorf("unknown jump %q", inst.Jump)
		}
	}

	return nil
}

// LoadProgram parses and resolves a program. Labels are bound in a first
// pass; unknown symbols become variables allocated from RAM[16] upward in
// order of first use.
func LoadProgram(r io.Reader) (Program, error) {
	parsed, err := Parse(r)
	if err != nil {
		return Program{}, err
	}

	prog := Program{
		Labels:    make(map[string]int),
		Variables: make(map[string]int),
	}

	for _, inst := range parsed {
		if inst.Kind != LInst {
			prog.Insts = append(prog.Insts, inst)
			continue
		}

		if _, dup := prog.Labels[inst.Symbol]; dup {
			return Program{}, fmt.Errorf("line %d: %w: %s",
				inst.Line, ErrDuplicateLabel, inst.Symbol)
		}
		prog.Labels[inst.Symbol] = len(prog.Insts)
	}

	next := VariableBase
	for i := range prog.Insts {
		inst := &prog.Insts[i]
		if inst.Kind != AInst || isNumber(inst.Symbol) {
			continue
		}

		if addr, ok := prog.Labels[inst.Symbol]; ok {
			inst.Value = addr
		} else if addr, ok := PredefinedSymbols[inst.Symbol]; ok {
			inst.Value = addr
		} else if addr, ok := prog.Variables[inst.Symbol]; ok {
			inst.Value = addr
		} else {
			prog.Variables[inst.Symbol] = next
			inst.Value = next
			next++
		}
	}

	return prog, nil
}

// LoadProgramFromString is LoadProgram over a string.
func LoadProgramFromString(src string) (Program, error) {
	return LoadProgram(strings.NewReader(src))
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
