package vm

// Meter tracks instructions executed and the cost they accumulated.
//
// Unlike a compute budget it never limits execution; it only accounts.
type Meter struct {
	steps    uint64
	consumed uint64
	perOp    [numOpcodes]uint64
}

// NewMeter creates a zeroed meter.
func NewMeter() *Meter {
	return &Meter{}
}

// Charge records one execution of op.
func (m *Meter) Charge(op Opcode) {
	m.steps++
	m.consumed += instructionCost(op)
	if op.Valid() {
		m.perOp[op]++
	}
}

// Steps returns the number of instructions charged.
func (m *Meter) Steps() uint64 {
	return m.steps
}

// Consumed returns the total cost charged.
func (m *Meter) Consumed() uint64 {
	return m.consumed
}

// Count returns how many times op was charged.
func (m *Meter) Count(op Opcode) uint64 {
	if !op.Valid() {
		return 0
	}
	return m.perOp[op]
}

// Reset zeroes the meter.
func (m *Meter) Reset() {
	*m = Meter{}
}
