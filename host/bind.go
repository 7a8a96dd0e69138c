package host

import (
	"github.com/ebitengine/purego"
)

// Bind resolves symbol and, when the host exports it, makes *fptr call the
// native function. F must be a func type whose parameters and results
// match the native signature exactly; a mismatch is undefined behaviour
// that no check here can catch.
//
// When the symbol is absent Bind returns false and leaves *fptr nil.
func Bind[F any](r Resolver, symbol string, fptr *F) bool {
	addr := Lookup(r, symbol)
	if addr == 0 {
		return false
	}

	purego.RegisterFunc(fptr, addr)

	return true
}

// Constant resolves the zero-argument accessor exported under symbol and
// returns the int it yields. The bool is false when the accessor is absent.
func Constant(r Resolver, symbol string) (int32, bool) {
	addr := Lookup(r, symbol)
	if addr == 0 {
		return 0, false
	}

	v, _, _ := purego.SyscallN(addr)

	return int32(v), true
}
