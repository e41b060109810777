package codegen

import "strconv"

func itoa(n int) string {
	return strconv.Itoa(n)
}

// WriteInit writes the bootstrap: SP is set to the stack base and the entry
// point is called with no arguments. It must be the first output of the
// session.
func (e *Engine) WriteInit() error {
	if e.started {
		return ErrInitOrder
	}

	if err := e.comment("bootstrap"); err != nil {
		return err
	}

	err := e.emit(
		at(e.stackBase),
		"D=A",
		"@SP",
		"M=D",
	)
	if err != nil {
		return err
	}

	return e.WriteCall(e.entryPoint, 0)
}

// WriteLabel declares a label in the current function scope.
func (e *Engine) WriteLabel(name string) error {
	if err := e.comment("label " + name); err != nil {
		return err
	}

	return e.emit(label(e.scoped(name)))
}

// WriteGoto jumps to a label in the current function scope.
func (e *Engine) WriteGoto(name string) error {
	if err := e.comment("goto " + name); err != nil {
		return err
	}

	return e.emit(at(e.scoped(name)), "0;JMP")
}

// WriteIf pops the top of the stack and jumps to the label when the value
// is not zero.
func (e *Engine) WriteIf(name string) error {
	if err := e.comment("if-goto " + name); err != nil {
		return err
	}

	return e.emit(seq(popD(), []string{
		at(e.scoped(name)),
		"D;JNE",
	})...)
}

// WriteFunction declares a function entry and pushes numLocals zeros.
// Labels that follow are scoped to this function.
func (e *Engine) WriteFunction(name string, numLocals int) error {
	if numLocals < 0 {
		return ErrNegativeIndex
	}

	e.state.CurrentFunction = name

	if err := e.comment("function " + name + " " + itoa(numLocals)); err != nil {
		return err
	}

	if err := e.emit(label(name)); err != nil {
		return err
	}

	for i := 0; i < numLocals; i++ {
		if err := e.emit(seq([]string{"@0", "D=A"}, pushD())...); err != nil {
			return err
		}
	}

	return nil
}

// WriteCall calls a function whose numArgs arguments are on the stack.
func (e *Engine) WriteCall(name string, numArgs int) error {
	if numArgs < 0 {
		return ErrNegativeIndex
	}

	returnLabel := e.nextReturnLabel(name)

	if err := e.comment("call " + name + " " + itoa(numArgs)); err != nil {
		return err
	}

	code := seq(
		[]string{at(returnLabel), "D=A"}, pushD(),
		pushPointer("LCL"),
		pushPointer("ARG"),
		pushPointer("THIS"),
		pushPointer("THAT"),
		[]string{
			"@SP",
			"D=M",
			at(numArgs + frameSize),
			"D=D-A",
			"@ARG",
			"M=D",
			"@SP",
			"D=M",
			"@LCL",
			"M=D",
			at(name),
			"0;JMP",
			label(returnLabel),
		},
	)

	return e.emit(code...)
}

func pushPointer(pointer string) []string {
	return seq([]string{at(pointer), "D=M"}, pushD())
}

// WriteReturn returns from the current function, leaving the return value
// where the caller's first argument was.
func (e *Engine) WriteReturn() error {
	if err := e.comment("return"); err != nil {
		return err
	}

	code := seq(
		[]string{
			"@LCL",
			"D=M",
			at(scratchFrame),
			"M=D",
			at(frameSize),
			"A=D-A",
			"D=M",
			at(scratchRet),
			"M=D",
		},
		popD(),
		[]string{
			"@ARG",
			"A=M",
			"M=D",
			"@ARG",
			"D=M+1",
			"@SP",
			"M=D",
		},
		restore("THAT", 1),
		restore("THIS", 2),
		restore("ARG", 3),
		restore("LCL", 4),
		[]string{
			at(scratchRet),
			"A=M",
			"0;JMP",
		},
	)

	return e.emit(code...)
}

// restore loads a saved pointer from frame-offset.
func restore(pointer string, offset int) []string {
	return []string{
		at(scratchFrame),
		"D=M",
		at(offset),
		"A=D-A",
		"D=M",
		at(pointer),
		"M=D",
	}
}
