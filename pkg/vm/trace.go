package vm

// Step describes one executed instruction.
type Step struct {
	PC       int     // Position of the instruction
	Op       Opcode  // Opcode executed
	Operands []int32 // Operands as loaded; must not be modified
	Depth    int     // Operand stack depth after execution
	Err      error   // Fault raised by the instruction, if any
}

// Tracer observes execution one instruction at a time.
type Tracer interface {
	TraceStep(s Step)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(s Step)

// TraceStep implements Tracer.
func (f TracerFunc) TraceStep(s Step) {
	f(s)
}
