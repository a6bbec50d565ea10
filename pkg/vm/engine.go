// Package vm implements a small stack-machine bytecode interpreter.
//
// An Engine executes a Program of instructions against a bounded operand
// stack and a sparse memory of MaxAddress+1 integer cells. Runtime faults
// (stack overflow or underflow, out-of-bounds addresses, division by zero,
// unknown opcodes) are reported to the configured error sink and stop the
// run; they never escape Run.
//
// Control-transfer opcodes (JMP, JZ, JNZ, CALL, RET) are recognized but
// inert: the program counter always advances by one instruction.
package vm

import "fmt"

// Result summarizes one call to Run.
type Result struct {
	Steps  uint64 // Instructions executed, including a faulting one
	Cost   uint64 // Cost charged by the meter
	Halted bool   // A HALT instruction stopped the run
	Fault  *Fault // Fault that stopped the run, if any
	PC     int    // Program counter when the run ended
}

// Engine executes programs.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg Config

	program   Program
	stack     *Stack // Operand stack
	callStack *Stack // Reserved for CALL/RET
	memory    *Memory
	meter     *Meter

	pc      int
	running bool
}

// NewEngine creates an engine with an empty program.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:       cfg.withDefaults(),
		stack:     NewStack(),
		callStack: NewStack(),
		memory:    NewMemory(),
		meter:     NewMeter(),
		running:   true,
	}
}

// Load replaces the program, rewinds the program counter and clears the
// call stack.
//
// The operand stack and memory are left as they are, so a program loaded
// after another one observes the values the previous run left behind. Call
// Reset first for a clean slate.
func (e *Engine) Load(p Program) {
	e.program = p.Clone()
	e.pc = 0
	e.running = true
	e.callStack.Reset()

	e.cfg.Logger.Printf("[VM] loaded program %s (%d instructions)", e.program.Fingerprint(), len(e.program))
}

// Reset clears the operand stack, call stack and memory and rewinds the
// loaded program.
func (e *Engine) Reset() {
	e.stack.Reset()
	e.callStack.Reset()
	e.memory.Reset()
	e.meter.Reset()
	e.pc = 0
	e.running = true
}

// Run executes instructions until HALT, a fault, or the end of the program.
func (e *Engine) Run() *Result {
	e.meter.Reset()
	res := &Result{}

	for e.running && e.pc < len(e.program) {
		pc := e.pc
		ins := e.program[pc]

		e.meter.Charge(ins.Op)
		err := e.step(ins)

		if err != nil {
			f := &Fault{PC: pc, Op: ins.Op, Err: err}
			e.running = false
			res.Fault = f
			fmt.Fprintln(e.cfg.Errors, f.Error())
			e.cfg.Logger.Printf("[VM] fault at pc=%d: %v", pc, err)
		} else if ins.Op == OpHalt {
			res.Halted = true
		}

		if e.cfg.Tracer != nil {
			e.cfg.Tracer.TraceStep(Step{
				PC:       pc,
				Op:       ins.Op,
				Operands: ins.Operands,
				Depth:    e.stack.Len(),
				Err:      err,
			})
		}

		e.pc++
	}

	res.Steps = e.meter.Steps()
	res.Cost = e.meter.Consumed()
	res.PC = e.pc
	e.cfg.Logger.Printf("[VM] run finished: steps=%d cost=%d halted=%t", res.Steps, res.Cost, res.Halted)
	return res
}

// step executes one instruction, converting a panic into an error.
func (e *Engine) step(ins Instruction) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("vm panic: %v", rec)
		}
	}()
	return e.execute(ins)
}

// execute dispatches a single instruction.
func (e *Engine) execute(ins Instruction) error {
	switch ins.Op {
	case OpPush:
		v, err := ins.Operand(0)
		if err != nil {
			return err
		}
		return e.stack.Push(v)

	case OpPop:
		_, err := e.stack.Pop()
		return err

	case OpAdd:
		return e.binary(func(a, b int32) int32 { return a + b })
	case OpSub:
		return e.binary(func(a, b int32) int32 { return a - b })
	case OpMul:
		return e.binary(func(a, b int32) int32 { return a * b })

	case OpDiv:
		b, err := e.stack.Pop()
		if err != nil {
			return err
		}
		if b == 0 {
			return ErrDivisionByZero
		}
		a, err := e.stack.Pop()
		if err != nil {
			return err
		}
		return e.stack.Push(a / b)

	case OpMod:
		b, err := e.stack.Pop()
		if err != nil {
			return err
		}
		if b == 0 {
			return ErrModuloByZero
		}
		a, err := e.stack.Pop()
		if err != nil {
			return err
		}
		return e.stack.Push(a % b)

	case OpLoad:
		addr, err := ins.Operand(0)
		if err != nil {
			return err
		}
		v, err := e.memory.Load(addr)
		if err != nil {
			return err
		}
		return e.stack.Push(v)

	case OpStore:
		addr, err := ins.Operand(0)
		if err != nil {
			return err
		}
		v, err := e.stack.Pop()
		if err != nil {
			return err
		}
		return e.memory.Store(addr, v)

	case OpJmp, OpJz, OpJnz, OpCall, OpRet:
		// Inert: no jump, no condition pop, no call-stack traffic.
		return nil

	case OpPrint:
		v, err := e.stack.Pop()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(e.cfg.Output, v); err != nil {
			return fmt.Errorf("%w: %v", ErrOutput, err)
		}
		return nil

	case OpHalt:
		e.running = false
		return nil

	case OpDup:
		return e.stack.Dup()

	case OpSwap:
		return e.stack.Swap()

	case OpCmp:
		return e.binary(func(a, b int32) int32 {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		})

	default:
		return fmt.Errorf("%w: opcode 0x%02x", ErrUnknownInstruction, uint8(ins.Op))
	}
}

// binary pops b then a and pushes fn(a, b).
func (e *Engine) binary(fn func(a, b int32) int32) error {
	b, err := e.stack.Pop()
	if err != nil {
		return err
	}
	a, err := e.stack.Pop()
	if err != nil {
		return err
	}
	return e.stack.Push(fn(a, b))
}

// Dump writes the operand stack depth and top value to the diagnostics sink.
func (e *Engine) Dump() {
	fmt.Fprintf(e.cfg.Diagnostics, "Stack size: %d\n", e.stack.Len())
	if top, err := e.stack.Peek(); err == nil {
		fmt.Fprintf(e.cfg.Diagnostics, "Top of stack: %d\n", top)
	}
}

// PC returns the program counter.
func (e *Engine) PC() int { return e.pc }

// Running reports whether the engine will execute further instructions.
func (e *Engine) Running() bool { return e.running }

// Program returns the loaded program.
func (e *Engine) Program() Program { return e.program }

// Stack returns the operand stack.
func (e *Engine) Stack() *Stack { return e.stack }

// CallStack returns the call stack.
func (e *Engine) CallStack() *Stack { return e.callStack }

// Memory returns the engine memory.
func (e *Engine) Memory() *Memory { return e.memory }

// Meter returns the meter for the most recent run.
func (e *Engine) Meter() *Meter { return e.meter }
