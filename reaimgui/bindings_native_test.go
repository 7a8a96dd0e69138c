//go:build linux || darwin

package reaimgui

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardanlabs/reaimgui-gen/host"
)

func openLibc(t *testing.T) *host.Library {
	t.Helper()

	path := "libc.so.6"
	if runtime.GOOS == "darwin" {
		path = "/usr/lib/libSystem.B.dylib"
	}

	lib, err := host.Open(path)
	if err != nil {
		t.Skipf("libc not available: %v", err)
	}
	t.Cleanup(func() { lib.Close() })

	return lib
}

// TestLoadPartial stands libc in for the extension: a few ImGui symbols
// are routed to libc functions with the same C signature and everything
// else stays unresolved.
func TestLoadPartial(t *testing.T) {
	lib := openLibc(t)

	routes := map[string]string{
		"ImGui_GetContextCount":   "getpid",
		"ImGui_GetStyleColorName": "strerror",
		"ImGui_Key_A":             "getpid",
	}
	r := host.ResolverFunc(func(symbol string) uintptr {
		if target, ok := routes[symbol]; ok {
			return lib.Resolve(target)
		}
		return 0
	})

	im := Load(r)

	assert.Equal(t, 2, im.LoadedCount())
	assert.Len(t, im.Missing(), FunctionCount-2+3)
	assert.Equal(t, int32(os.Getpid()), im.Key_A)

	n, err := im.GetContextCount()
	require.NoError(t, err)
	assert.Equal(t, int32(os.Getpid()), n)

	msg, err := im.GetStyleColorName(0)
	require.NoError(t, err)
	assert.NotEmpty(t, msg)

	assert.ErrorIs(t, im.Text(0, "still missing"), host.ErrNotLoaded)
}
