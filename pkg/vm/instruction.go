package vm

import (
	"fmt"
	"strings"
)

// Instruction is a single opcode with its operands.
//
// Operand arity is not checked at construction. An opcode that consumes an
// operand validates it when the instruction executes.
type Instruction struct {
	Op       Opcode
	Operands []int32
}

// NewInstruction creates an instruction from an opcode and its operands.
func NewInstruction(op Opcode, operands ...int32) Instruction {
	return Instruction{Op: op, Operands: operands}
}

// Operand returns the n-th operand, or ErrMissingOperand if there is none.
func (i Instruction) Operand(n int) (int32, error) {
	if n < 0 || n >= len(i.Operands) {
		return 0, fmt.Errorf("%w: %s needs operand %d, has %d", ErrMissingOperand, i.Op, n, len(i.Operands))
	}
	return i.Operands[n], nil
}

// String formats the instruction as "MNEMONIC op0 op1 ...".
func (i Instruction) String() string {
	if len(i.Operands) == 0 {
		return i.Op.String()
	}
	var sb strings.Builder
	sb.WriteString(i.Op.String())
	for _, v := range i.Operands {
		fmt.Fprintf(&sb, " %d", v)
	}
	return sb.String()
}

// clone returns a copy that shares no memory with i.
func (i Instruction) clone() Instruction {
	c := Instruction{Op: i.Op}
	if i.Operands != nil {
		c.Operands = append([]int32(nil), i.Operands...)
	}
	return c
}
