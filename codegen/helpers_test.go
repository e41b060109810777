package codegen_test

import (
	"bytes"
	"fmt"
	"strings"

	. "github.com/onsi/gomega"

	"github.com/sarchlab/hackvm/codegen"
	"github.com/sarchlab/hackvm/hack"
	"github.com/sarchlab/hackvm/vm"
)

// Segment pointers preset for runs without the bootstrap.
const (
	stackBase = 256
	localBase = 300
	argBase   = 400
	thisBase  = 3000
	thatBase  = 3010
)

func defaultPresets() map[int]int16 {
	return map[int]int16{
		0: stackBase,
		1: localBase,
		2: argBase,
		3: thisBase,
		4: thatBase,
	}
}

// translate runs VM source through a fresh engine.
func translate(src string, bootstrap bool) string {
	var buf bytes.Buffer

	e := codegen.EngineBuilder{}.Build(&buf)
	if bootstrap {
		Expect(e.WriteInit()).To(Succeed())
	}

	cmds, err := vm.ReadAll(vm.NewReader(strings.NewReader(src), "Test"))
	Expect(err).NotTo(HaveOccurred())

	for _, cmd := range cmds {
		Expect(e.Translate(cmd)).To(Succeed())
	}
	Expect(e.Flush()).To(Succeed())

	return buf.String()
}

// execute translates src without the bootstrap and runs it on the emulator.
func execute(src string, presets map[int]int16) *hack.Core {
	return runAsm(translate(src, false), presets)
}

func runAsm(asm string, presets map[int]int16) *hack.Core {
	prog, err := hack.LoadProgramFromString(asm)
	Expect(err).NotTo(HaveOccurred())

	c, err := hack.Run(prog, presets, hack.DefaultMaxCycles)
	Expect(err).NotTo(HaveOccurred())
	Expect(c.Halted()).To(BeTrue())

	return c
}

// pushValue pushes any 16-bit value using only constants and sub.
func pushValue(v int16) string {
	switch {
	case v >= 0:
		return fmt.Sprintf("push constant %d\n", v)
	case v == -32768:
		return "push constant 0\npush constant 32767\nsub\npush constant 1\nsub\n"
	default:
		return fmt.Sprintf("push constant 0\npush constant %d\nsub\n", -v)
	}
}

const halt = "label HALT\ngoto HALT\n"

// instructions drops comment lines.
func instructions(asm string) []string {
	var out []string
	for _, line := range strings.Split(asm, "\n") {
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		out = append(out, line)
	}

	return out
}

func declaredLabels(asm string) []string {
	var out []string
	for _, line := range instructions(asm) {
		if strings.HasPrefix(line, "(") {
			out = append(out, strings.Trim(line, "()"))
		}
	}

	return out
}
