package codegen

import (
	"fmt"

	"github.com/sarchlab/hackvm/vm"
)

// Translate writes the assembly for one decoded command.
func (e *Engine) Translate(cmd vm.Command) error {
	switch c := cmd.(type) {
	case vm.Arithmetic:
		return e.WriteArithmetic(c.Op)
	case vm.Push:
		return e.WritePushPop(Push, c.Segment, c.Index)
	case vm.Pop:
		return e.WritePushPop(Pop, c.Segment, c.Index)
	case vm.Label:
		return e.WriteLabel(c.Name)
	case vm.Goto:
		return e.WriteGoto(c.Name)
	case vm.IfGoto:
		return e.WriteIf(c.Name)
	case vm.Function:
		return e.WriteFunction(c.Name, c.NumLocals)
	case vm.Call:
		return e.WriteCall(c.Name, c.NumArgs)
	case vm.Return:
		return e.WriteReturn()
	default:
		panic(fmt.Sprintf("unknown command type %T", cmd))
	}
}
