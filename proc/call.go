package proc

// MaxArgs is the largest argument count Call can pass.
const MaxArgs = 15

// Call invokes the command with integer and pointer arguments and returns the
// raw integer result. Pointers converted to uintptr in the argument list stay
// valid for the duration of the call. It panics when p is not loaded.
//
//go:uintptrescapes
func Call(p Proc, args ...uintptr) uintptr {
	return invoke(p.Addr(), args...)
}
