package trace

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/fortiblox/stackvm/pkg/vm"
)

func runTraced(t *testing.T, p vm.Program) *Recorder {
	t.Helper()
	rec := NewRecorder()
	e := vm.NewEngine(vm.Config{
		Output: &bytes.Buffer{},
		Errors: &bytes.Buffer{},
		Tracer: rec,
	})
	e.Load(p)
	e.Run()
	return rec
}

// TestRecorderEntries tests that each executed instruction is recorded.
func TestRecorderEntries(t *testing.T) {
	rec := runTraced(t, vm.Program{
		vm.NewInstruction(vm.OpPush, 3),
		vm.NewInstruction(vm.OpPush, 0),
		vm.NewInstruction(vm.OpDiv),
		vm.NewInstruction(vm.OpPrint),
	})

	want := []Entry{
		{PC: 0, Op: "PUSH", Operands: []int32{3}, Depth: 1},
		{PC: 1, Op: "PUSH", Operands: []int32{0}, Depth: 2},
		{PC: 2, Op: "DIV", Depth: 1, Error: "division by zero"},
	}
	if got := rec.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %+v, want %+v", got, want)
	}
}

// TestRecorderRoundTrip tests the compressed export.
func TestRecorderRoundTrip(t *testing.T) {
	rec := runTraced(t, vm.Program{
		vm.NewInstruction(vm.OpPush, 7),
		vm.NewInstruction(vm.OpJmp, 0),
		vm.NewInstruction(vm.OpDup),
		vm.NewInstruction(vm.OpMul),
		vm.NewInstruction(vm.OpPrint),
		vm.NewInstruction(vm.OpHalt),
	})
	if rec.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", rec.Len())
	}

	var buf bytes.Buffer
	n, err := rec.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d bytes", n, buf.Len())
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if !reflect.DeepEqual(got, rec.Entries()) {
		t.Errorf("Decode() = %+v, want %+v", got, rec.Entries())
	}
}

// TestRecorderReset tests discarding entries.
func TestRecorderReset(t *testing.T) {
	rec := runTraced(t, vm.Program{vm.NewInstruction(vm.OpHalt)})
	rec.Reset()

	if rec.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", rec.Len())
	}
}

// TestDecodeGarbage tests that non-zstd input is rejected.
func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not a trace"))); err == nil {
		t.Error("Decode() of garbage succeeded")
	}
}
