package vm_test

import (
	"bytes"
	"testing"

	"github.com/fortiblox/stackvm/pkg/vm"
)

func ExampleVirtualMachine() {
	m := vm.New(vm.DefaultConfig())
	m.Load(vm.Program{
		vm.NewInstruction(vm.OpPush, 5),
		vm.NewInstruction(vm.OpStore, 0),
		vm.NewInstruction(vm.OpPush, 10),
		vm.NewInstruction(vm.OpStore, 1),
		vm.NewInstruction(vm.OpLoad, 0),
		vm.NewInstruction(vm.OpLoad, 1),
		vm.NewInstruction(vm.OpAdd),
		vm.NewInstruction(vm.OpPrint),
		vm.NewInstruction(vm.OpHalt),
	})
	m.Run()
	m.DumpState()
	// Output:
	// 15
	// Stack size: 0
}

// TestVirtualMachine tests that the facade drives its engine.
func TestVirtualMachine(t *testing.T) {
	out := &bytes.Buffer{}
	errs := &bytes.Buffer{}
	diag := &bytes.Buffer{}
	m := vm.New(vm.Config{Output: out, Errors: errs, Diagnostics: diag})

	m.Load(vm.Program{
		vm.NewInstruction(vm.OpPush, 7),
		vm.NewInstruction(vm.OpPush, 3),
		vm.NewInstruction(vm.OpCmp),
		vm.NewInstruction(vm.OpPrint),
		vm.NewInstruction(vm.OpHalt),
	})
	res := m.Run()

	if out.String() != "1\n" {
		t.Errorf("output = %q, want %q", out.String(), "1\n")
	}
	if !res.Halted {
		t.Error("Halted = false, want true")
	}

	m.Load(vm.Program{vm.NewInstruction(vm.OpPush, 3), vm.NewInstruction(vm.OpPush, 0), vm.NewInstruction(vm.OpDiv)})
	res = m.Run()

	if !vm.IsFault(res.Fault, vm.ErrDivisionByZero) {
		t.Errorf("Fault = %v, want division by zero", res.Fault)
	}
	if want := "Runtime error at PC=2: division by zero\n"; errs.String() != want {
		t.Errorf("errors = %q, want %q", errs.String(), want)
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q, want %q", out.String(), "1\n")
	}

	m.DumpState()
	if want := "Stack size: 1\nTop of stack: 3\n"; diag.String() != want {
		t.Errorf("DumpState() = %q, want %q", diag.String(), want)
	}
	if m.Engine().Running() {
		t.Error("Running() = true after fault")
	}
}
