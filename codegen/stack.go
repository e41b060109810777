package codegen

// Direction selects push or pop for WritePushPop.
type Direction int

const (
	Push Direction = iota
	Pop
)

func (d Direction) String() string {
	if d == Pop {
		return "pop"
	}

	return "push"
}

// segmentBases maps the indexed segments to the pointer holding their base.
var segmentBases = map[string]string{
	"local":    "LCL",
	"argument": "ARG",
}

// pushD pushes the D register.
func pushD() []string {
	return []string{
		"@SP",
		"A=M",
		"M=D",
		"@SP",
		"M=M+1",
	}
}

// popD pops the top of the stack into D.
func popD() []string {
	return []string{
		"@SP",
		"AM=M-1",
		"D=M",
	}
}

func seq(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// WriteArithmetic translates add, sub, eq or gt.
func (e *Engine) WriteArithmetic(op string) error {
	var code []string

	switch op {
	case "add":
		code = binaryOp("M=D+M")
	case "sub":
		code = binaryOp("M=M-D")
	case "eq":
		code = e.compareOp("JEQ")
	case "gt":
		code = e.compareOp("JGT")
	default:
		return &UnsupportedOperationError{Op: op}
	}

	if err := e.comment(op); err != nil {
		return err
	}

	return e.emit(code...)
}

// binaryOp pops y and combines it into x in place.
func binaryOp(operation string) []string {
	return seq(popD(), []string{
		"@SP",
		"A=M-1",
		operation,
	})
}

// compareOp replaces x and y with -1 when x-y satisfies jump, else 0.
func (e *Engine) compareOp(jump string) []string {
	trueLabel, endLabel := e.nextCompareLabels()

	return seq(popD(), []string{
		"@SP",
		"A=M-1",
		"D=M-D",
		at(trueLabel),
		"D;" + jump,
		"@SP",
		"A=M-1",
		"M=0",
		at(endLabel),
		"0;JMP",
		label(trueLabel),
		"@SP",
		"A=M-1",
		"M=-1",
		label(endLabel),
	})
}

// WritePushPop translates a push or pop on the constant, local or argument
// segment.
func (e *Engine) WritePushPop(dir Direction, segment string, index int) error {
	if index < 0 {
		return ErrNegativeIndex
	}

	var code []string

	switch {
	case dir == Push && segment == "constant":
		code = seq([]string{at(index), "D=A"}, pushD())
	case dir == Push && segmentBases[segment] != "":
		code = pushFromSegment(segmentBases[segment], index)
	case dir == Pop && segmentBases[segment] != "":
		code = popToSegment(segmentBases[segment], index)
	default:
		return &UnsupportedSegmentError{Direction: dir, Segment: segment}
	}

	if err := e.comment(dir.String() + " " + segment + " " + itoa(index)); err != nil {
		return err
	}

	return e.emit(code...)
}

func pushFromSegment(base string, index int) []string {
	return seq([]string{
		at(base),
		"D=M",
		at(index),
		"A=D+A",
		"D=M",
	}, pushD())
}

// popToSegment computes the target address into R13 before popping, since
// the pop moves SP and clobbers D.
func popToSegment(base string, index int) []string {
	return seq([]string{
		at(base),
		"D=M",
		at(index),
		"D=D+A",
		at(scratchAddr),
		"M=D",
	}, popD(), []string{
		at(scratchAddr),
		"A=M",
		"M=D",
	})
}
