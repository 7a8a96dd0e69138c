package host

import (
	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

// Resolver maps an exported symbol name to its address. Zero means the
// host does not export the symbol.
type Resolver interface {
	Resolve(symbol string) uintptr
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(symbol string) uintptr

func (f ResolverFunc) Resolve(symbol string) uintptr {
	return f(symbol)
}

// Symbols is a fixed symbol table.
type Symbols map[string]uintptr

func (s Symbols) Resolve(symbol string) uintptr {
	return s[symbol]
}

// FromGetFunc wraps a host entry point with the C signature
// void* GetFunc(const char* name), as handed to REAPER extension plugins.
func FromGetFunc(getFunc uintptr) Resolver {
	if getFunc == 0 {
		return Symbols{}
	}

	var fn func(name string) uintptr
	purego.RegisterFunc(&fn, getFunc)

	return ResolverFunc(fn)
}

// Lookup resolves symbol through r. A nil resolver resolves nothing.
func Lookup(r Resolver, symbol string) uintptr {
	if r == nil {
		return 0
	}

	addr := r.Resolve(symbol)
	if addr == 0 {
		Logger().Debug("symbol not exported by host", zap.String("symbol", symbol))
	}

	return addr
}
