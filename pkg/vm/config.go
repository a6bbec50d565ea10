package vm

import (
	"io"
	"log"
	"os"
)

// MaxCallDepth is the nesting limit reserved for CALL. No functional opcode
// pushes onto the call stack, so it is not enforced.
const MaxCallDepth = 256

// Config holds the sinks and hooks an Engine writes to.
type Config struct {
	// Output receives PRINT values, one decimal per line.
	// Defaults to os.Stdout.
	Output io.Writer

	// Errors receives one "Runtime error at PC=<n>: <message>" line per fault.
	// Defaults to os.Stderr.
	Errors io.Writer

	// Diagnostics receives Dump text.
	// Defaults to os.Stdout.
	Diagnostics io.Writer

	// Logger receives engine lifecycle messages.
	// Defaults to a logger that discards everything.
	Logger *log.Logger

	// Tracer, if set, is called after every executed instruction.
	Tracer Tracer
}

// DefaultConfig returns a configuration wired to the process streams.
func DefaultConfig() Config {
	return Config{
		Output:      os.Stdout,
		Errors:      os.Stderr,
		Diagnostics: os.Stdout,
		Logger:      log.New(io.Discard, "", 0),
	}
}

// withDefaults returns c with nil fields filled from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Output == nil {
		c.Output = d.Output
	}
	if c.Errors == nil {
		c.Errors = d.Errors
	}
	if c.Diagnostics == nil {
		c.Diagnostics = d.Diagnostics
	}
	if c.Logger == nil {
		c.Logger = d.Logger
	}
	return c
}
