package codegen

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperation matches every *UnsupportedOperationError.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrUnsupportedSegment matches every *UnsupportedSegmentError.
	ErrUnsupportedSegment = errors.New("unsupported segment")

	// ErrNegativeIndex is returned for a push/pop with an index below zero.
	ErrNegativeIndex = errors.New("negative segment index")

	// ErrInitOrder is returned when the bootstrap is not the first output of
	// the session or is requested twice.
	ErrInitOrder = errors.New("bootstrap must be written first and only once")
)

// UnsupportedOperationError reports an arithmetic op the engine cannot
// translate.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation %q", e.Op)
}

func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// UnsupportedSegmentError reports a segment that cannot be used with the
// given direction.
type UnsupportedSegmentError struct {
	Direction Direction
	Segment   string
}

func (e *UnsupportedSegmentError) Error() string {
	return fmt.Sprintf("unsupported segment %q for %s", e.Segment, e.Direction)
}

func (e *UnsupportedSegmentError) Is(target error) bool {
	return target == ErrUnsupportedSegment
}
