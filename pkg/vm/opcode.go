package vm

import "fmt"

// Opcode identifies the operation performed by an instruction.
type Opcode uint8

// Opcodes, in wire order.
const (
	OpPush  Opcode = iota // push operand 0
	OpPop                 // discard top
	OpAdd                 // a + b
	OpSub                 // a - b
	OpMul                 // a * b
	OpDiv                 // a / b, truncating
	OpMod                 // a % b
	OpLoad                // push memory[operand 0]
	OpStore               // memory[operand 0] = pop
	OpJmp                 // inert
	OpJz                  // inert
	OpJnz                 // inert
	OpCall                // inert
	OpRet                 // inert
	OpPrint               // pop and write to output
	OpHalt                // stop the run
	OpDup                 // duplicate top
	OpSwap                // exchange top two
	OpCmp                 // push -1, 0 or 1

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	OpPush:  "PUSH",
	OpPop:   "POP",
	OpAdd:   "ADD",
	OpSub:   "SUB",
	OpMul:   "MUL",
	OpDiv:   "DIV",
	OpMod:   "MOD",
	OpLoad:  "LOAD",
	OpStore: "STORE",
	OpJmp:   "JMP",
	OpJz:    "JZ",
	OpJnz:   "JNZ",
	OpCall:  "CALL",
	OpRet:   "RET",
	OpPrint: "PRINT",
	OpHalt:  "HALT",
	OpDup:   "DUP",
	OpSwap:  "SWAP",
	OpCmp:   "CMP",
}

// String returns the mnemonic, or a hex form for unrecognized values.
func (op Opcode) String() string {
	if op.Valid() {
		return opcodeNames[op]
	}
	return fmt.Sprintf("OP(0x%02x)", uint8(op))
}

// Valid reports whether op is a recognized opcode.
func (op Opcode) Valid() bool {
	return op < numOpcodes
}

// IsControl reports whether op is a control-transfer opcode.
//
// Control-transfer opcodes are recognized but have no effect on the program
// counter or the call stack; they execute as no-ops.
func (op Opcode) IsControl() bool {
	switch op {
	case OpJmp, OpJz, OpJnz, OpCall, OpRet:
		return true
	}
	return false
}

// Instruction costs, charged to the Meter.
const (
	CostALU     = uint64(1)  // Simple stack and arithmetic operations
	CostMul     = uint64(4)  // Multiplication
	CostDiv     = uint64(12) // Division/modulo
	CostLoad    = uint64(2)  // Memory load
	CostStore   = uint64(2)  // Memory store
	CostControl = uint64(1)  // Inert control transfer
	CostPrint   = uint64(1)  // Output
)

// instructionCost returns the cost charged for executing op.
func instructionCost(op Opcode) uint64 {
	switch op {
	case OpMul:
		return CostMul
	case OpDiv, OpMod:
		return CostDiv
	case OpLoad:
		return CostLoad
	case OpStore:
		return CostStore
	case OpPrint:
		return CostPrint
	}
	if op.IsControl() {
		return CostControl
	}
	return CostALU
}
