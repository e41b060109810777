package vm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrMissingOperand is returned when a command has too few tokens.
	ErrMissingOperand = errors.New("missing operand")

	// ErrBadNumber is returned when a numeric operand is not a
	// non-negative integer.
	ErrBadNumber = errors.New("operand is not a non-negative integer")
)

// ParseError reports a line the reader could not decode.
type ParseError struct {
	Unit string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %q: %v", e.Unit, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader decodes commands from VM source text one at a time. It makes a
// single pass over the input and cannot be rewound.
type Reader struct {
	scanner *bufio.Scanner
	unit    string
	line    int
	cmdLine int
}

// NewReader creates a reader over r. The unit name is only used in errors.
func NewReader(r io.Reader, unit string) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
		unit:    unit,
	}
}

// Unit returns the name of the translation unit being read.
func (r *Reader) Unit() string {
	return r.unit
}

// Line returns the 1-based source line of the last command returned by Next.
func (r *Reader) Line() int {
	return r.cmdLine
}

// Next returns the next command, or io.EOF when the input is exhausted.
func (r *Reader) Next() (Command, error) {
	for r.scanner.Scan() {
		r.line++

		text := cleanLine(r.scanner.Text())
		if text == "" {
			continue
		}

		r.cmdLine = r.line

		cmd, err := parseCommand(strings.Fields(text))
		if err != nil {
			return nil, &ParseError{
				Unit: r.unit,
				Line: r.line,
				Text: text,
				Err:  err,
			}
		}

		return cmd, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.unit, err)
	}

	return nil, io.EOF
}

// ReadAll drains the reader.
func ReadAll(r *Reader) ([]Command, error) {
	var cmds []Command

	for {
		cmd, err := r.Next()
		if errors.Is(err, io.EOF) {
			return cmds, nil
		}

		if err != nil {
			return cmds, err
		}

		cmds = append(cmds, cmd)
	}
}

func cleanLine(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}

	return strings.TrimSpace(line)
}

func parseCommand(tokens []string) (Command, error) {
	switch tokens[0] {
	case "push", "pop":
		if len(tokens) < 3 {
			return nil, ErrMissingOperand
		}

		index, err := parseNumber(tokens[2])
		if err != nil {
			return nil, err
		}

		if tokens[0] == "push" {
			return Push{Segment: tokens[1], Index: index}, nil
		}

		return Pop{Segment: tokens[1], Index: index}, nil
	case "label", "goto", "if-goto":
		if len(tokens) < 2 {
			return nil, ErrMissingOperand
		}

		switch tokens[0] {
		case "label":
			return Label{Name: tokens[1]}, nil
		case "goto":
			return Goto{Name: tokens[1]}, nil
		default:
			return IfGoto{Name: tokens[1]}, nil
		}
	case "function", "call":
		if len(tokens) < 3 {
			return nil, ErrMissingOperand
		}

		n, err := parseNumber(tokens[2])
		if err != nil {
			return nil, err
		}

		if tokens[0] == "function" {
			return Function{Name: tokens[1], NumLocals: n}, nil
		}

		return Call{Name: tokens[1], NumArgs: n}, nil
	case "return":
		return Return{}, nil
	default:
		return Arithmetic{Op: tokens[0]}, nil
	}
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s", ErrBadNumber, s)
	}

	return n, nil
}
