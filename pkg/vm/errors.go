package vm

import (
	"errors"
	"fmt"
)

// Fault kinds. Every fault raised by an instruction wraps one of these.
var (
	// ErrStackOverflow is returned when pushing onto a full stack.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when popping, duplicating or swapping
	// with too few elements on the stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrEmptyStack is returned when peeking at an empty stack.
	ErrEmptyStack = errors.New("stack is empty")

	// ErrAddressOutOfBounds is returned for memory addresses outside [0, MaxAddress].
	ErrAddressOutOfBounds = errors.New("memory address out of bounds")

	// ErrDivisionByZero is returned by DIV with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrModuloByZero is returned by MOD with a zero divisor.
	ErrModuloByZero = errors.New("modulo by zero")

	// ErrUnknownInstruction is returned for unrecognized opcodes.
	ErrUnknownInstruction = errors.New("unknown instruction")

	// ErrMissingOperand is returned when an instruction lacks an operand its
	// opcode consumes.
	ErrMissingOperand = errors.New("missing operand")

	// ErrOutput is returned when PRINT cannot write to the output sink.
	ErrOutput = errors.New("output write failed")
)

// Fault is a runtime error raised while executing one instruction.
type Fault struct {
	PC  int    // Position of the faulting instruction
	Op  Opcode // Opcode of the faulting instruction
	Err error  // Underlying fault kind, possibly wrapped with detail
}

// Error implements the error interface.
func (f *Fault) Error() string {
	return fmt.Sprintf("Runtime error at PC=%d: %v", f.PC, f.Err)
}

// Unwrap returns the underlying fault kind.
func (f *Fault) Unwrap() error {
	return f.Err
}

// IsFault reports whether err is a *Fault of the given kind.
func IsFault(err, kind error) bool {
	var f *Fault
	if !errors.As(err, &f) {
		return false
	}
	return errors.Is(f.Err, kind)
}
