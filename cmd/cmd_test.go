package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../testdata/reaper_imgui_functions.h"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cli := NewCLI()
	cli.SetOut(&out)
	cli.SetErr(&errOut)
	cli.SetArgs(args)

	err := cli.Execute()

	return out.String(), err
}

func TestGenerateToStdout(t *testing.T) {
	out, err := run(t, "generate", "--header", fixture, "--output", "-")
	require.NoError(t, err)

	want, err := os.ReadFile("../reaimgui/bindings.go")
	require.NoError(t, err)

	assert.Equal(t, string(want), out)
}

func TestGenerateToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "gen", "bindings.go")

	_, err := run(t, "generate", "--header", fixture, "--output", output, "--package", "imgui", "--type", "API")
	require.NoError(t, err)

	code, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Contains(t, string(code), "package imgui")
	assert.Contains(t, string(code), "func Load(r host.Resolver) *API {")
}

func TestGenerateWithConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "reaimgui-gen.toml")
	require.NoError(t, os.WriteFile(config, []byte("package = \"fromconfig\"\n"), 0o644))

	out, err := run(t, "generate", "--config", config, "--header", fixture, "--output", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "package fromconfig")

	out, err = run(t, "generate", "--config", config, "--header", fixture, "--output", "-", "--package", "fromflag")
	require.NoError(t, err)
	assert.Contains(t, out, "package fromflag")
}

func TestGenerateFatalHeader(t *testing.T) {
	header := filepath.Join(t.TempDir(), "bad.h")
	line := "REAIMGUIAPI_EXTERN ReaImGuiFunc<void(ImGui_Context* ctx, int)> ImGui_Bad;\n"
	require.NoError(t, os.WriteFile(header, []byte(line), 0o644))

	_, err := run(t, "generate", "--header", header, "--output", "-")
	assert.ErrorContains(t, err, "line 1 (Bad)")

	out, err := run(t, "generate", "--header", header, "--output", "-", "--allow", "Bad")
	require.NoError(t, err)
	assert.NotContains(t, out, "func (im *ImGui) Bad(")
}

func TestGenerateRequiresHeader(t *testing.T) {
	_, err := run(t, "generate")
	assert.ErrorContains(t, err, "header")
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", "--header", fixture)
	require.NoError(t, err)

	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "Context")
	assert.Contains(t, out, "void(Context* ctx, const char* text)")
	assert.Contains(t, out, "Key_A")
	assert.Contains(t, out, "ValidatePtr")
	assert.Contains(t, out, "5 types, 14 functions, 4 constants, 2 skipped")
}
