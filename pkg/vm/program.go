package vm

import (
	"encoding/binary"

	"github.com/mr-tron/base58"
	"github.com/zeebo/blake3"
)

// Program is an ordered sequence of instructions addressed by the program
// counter.
type Program []Instruction

// Len returns the number of instructions.
func (p Program) Len() int {
	return len(p)
}

// Clone returns a deep copy of the program.
func (p Program) Clone() Program {
	if p == nil {
		return nil
	}
	out := make(Program, len(p))
	for i, ins := range p {
		out[i] = ins.clone()
	}
	return out
}

// Fingerprint returns the base58-encoded BLAKE3 digest of the program.
//
// Each instruction is hashed as its opcode byte, a little-endian uint32
// operand count, then each operand as a little-endian int32. Two programs
// have the same fingerprint exactly when they have the same instructions.
func (p Program) Fingerprint() string {
	h := blake3.New()
	var buf [4]byte
	for _, ins := range p {
		h.Write([]byte{byte(ins.Op)})
		binary.LittleEndian.PutUint32(buf[:], uint32(len(ins.Operands)))
		h.Write(buf[:])
		for _, v := range ins.Operands {
			binary.LittleEndian.PutUint32(buf[:], uint32(v))
			h.Write(buf[:])
		}
	}
	return base58.Encode(h.Sum(nil))
}
