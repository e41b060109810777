// Package vm defines the stack-machine command language consumed by the
// translator and the reader that decodes it from text.
package vm

import "fmt"

// Kind identifies the variant of a Command.
type Kind int

const (
	KindArithmetic Kind = iota
	KindPush
	KindPop
	KindLabel
	KindGoto
	KindIfGoto
	KindFunction
	KindCall
	KindReturn
)

var kindNames = []string{
	"arithmetic",
	"push",
	"pop",
	"label",
	"goto",
	"if-goto",
	"function",
	"call",
	"return",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Command is one decoded VM command. The concrete types below are the only
// implementations.
type Command interface {
	// Kind returns the variant tag.
	Kind() Kind

	// String renders the command the way it appears in source.
	String() string

	isCommand()
}

// Arithmetic carries an arithmetic/logic op. The reader does not check the
// op name; unknown leading tokens also land here.
type Arithmetic struct {
	Op string
}

// Push places a segment value on top of the stack.
type Push struct {
	Segment string
	Index   int
}

// Pop removes the top of the stack into a segment.
type Pop struct {
	Segment string
	Index   int
}

// Label declares a jump target.
type Label struct {
	Name string
}

// Goto jumps to a label unconditionally.
type Goto struct {
	Name string
}

// IfGoto pops the stack and jumps when the value is non-zero.
type IfGoto struct {
	Name string
}

// Function starts a function body with NumLocals zeroed locals.
type Function struct {
	Name      string
	NumLocals int
}

// Call invokes a function whose NumArgs arguments are already pushed.
type Call struct {
	Name    string
	NumArgs int
}

// Return ends the current function invocation.
type Return struct{}

func (Arithmetic) Kind() Kind { return KindArithmetic }
func (Push) Kind() Kind       { return KindPush }
func (Pop) Kind() Kind        { return KindPop }
func (Label) Kind() Kind      { return KindLabel }
func (Goto) Kind() Kind       { return KindGoto }
func (IfGoto) Kind() Kind     { return KindIfGoto }
func (Function) Kind() Kind   { return KindFunction }
func (Call) Kind() Kind       { return KindCall }
func (Return) Kind() Kind     { return KindReturn }

func (c Arithmetic) String() string { return c.Op }
func (c Push) String() string       { return fmt.Sprintf("push %s %d", c.Segment, c.Index) }
func (c Pop) String() string        { return fmt.Sprintf("pop %s %d", c.Segment, c.Index) }
func (c Label) String() string      { return "label " + c.Name }
func (c Goto) String() string       { return "goto " + c.Name }
func (c IfGoto) String() string     { return "if-goto " + c.Name }
func (c Function) String() string   { return fmt.Sprintf("function %s %d", c.Name, c.NumLocals) }
func (c Call) String() string       { return fmt.Sprintf("call %s %d", c.Name, c.NumArgs) }
func (Return) String() string       { return "return" }

func (Arithmetic) isCommand() {}
func (Push) isCommand()       {}
func (Pop) isCommand()        {}
func (Label) isCommand()      {}
func (Goto) isCommand()       {}
func (IfGoto) isCommand()     {}
func (Function) isCommand()   {}
func (Call) isCommand()       {}
func (Return) isCommand()     {}
