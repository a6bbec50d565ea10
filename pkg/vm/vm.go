package vm

// VirtualMachine is the entry point for loading and running programs.
// It owns exactly one Engine.
type VirtualMachine struct {
	engine *Engine
}

// New creates a virtual machine.
func New(cfg Config) *VirtualMachine {
	return &VirtualMachine{engine: NewEngine(cfg)}
}

// Load loads a program into the engine.
func (m *VirtualMachine) Load(p Program) {
	m.engine.Load(p)
}

// Run runs the loaded program.
func (m *VirtualMachine) Run() *Result {
	return m.engine.Run()
}

// DumpState writes the operand stack summary to the diagnostics sink.
func (m *VirtualMachine) DumpState() {
	m.engine.Dump()
}

// Engine returns the underlying engine.
func (m *VirtualMachine) Engine() *Engine {
	return m.engine
}
