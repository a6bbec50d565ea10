package vm

import "fmt"

// MaxAddress is the highest addressable memory cell.
const MaxAddress = 65535

// Memory is sparse integer storage addressed by [0, MaxAddress].
//
// Cells are allocated on first write; reading a cell that was never written
// yields zero.
type Memory struct {
	cells map[int32]int32
}

// NewMemory creates an empty memory.
func NewMemory() *Memory {
	return &Memory{cells: make(map[int32]int32)}
}

// checkAddress validates addr against the address space.
func checkAddress(addr int32) error {
	if addr < 0 || addr > MaxAddress {
		return fmt.Errorf("%w: address %d (max %d)", ErrAddressOutOfBounds, addr, MaxAddress)
	}
	return nil
}

// Store writes v at addr, replacing any previous value.
func (m *Memory) Store(addr int32, v int32) error {
	if err := checkAddress(addr); err != nil {
		return err
	}
	m.cells[addr] = v
	return nil
}

// Load reads the value at addr.
func (m *Memory) Load(addr int32) (int32, error) {
	if err := checkAddress(addr); err != nil {
		return 0, err
	}
	return m.cells[addr], nil
}

// Len returns the number of cells that have been written.
func (m *Memory) Len() int {
	return len(m.cells)
}

// Reset discards every written cell.
func (m *Memory) Reset() {
	m.cells = make(map[int32]int32)
}
