//go:build darwin || linux

package host

import (
	"fmt"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

// Library resolves symbols from a shared library opened with dlopen.
type Library struct {
	handle uintptr
	path   string
}

func Open(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	Logger().Debug("library opened", zap.String("path", path))

	return &Library{handle: handle, path: path}, nil
}

func (l *Library) Resolve(symbol string) uintptr {
	addr, err := purego.Dlsym(l.handle, symbol)
	if err != nil {
		return 0
	}
	return addr
}

func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	if err := purego.Dlclose(l.handle); err != nil {
		return fmt.Errorf("failed to close %s: %w", l.path, err)
	}
	l.handle = 0
	return nil
}
