package parser

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) *Header {
	t.Helper()

	header, err := ParseString(input, DefaultDialect())
	require.NoError(t, err)

	return header
}

func TestParseOpaqueType(t *testing.T) {
	header := parse(t, "class ImGui_Context;\n")

	assert.Equal(t, []string{"Context"}, header.OpaqueNames())
	assert.Empty(t, header.Functions)
	assert.Empty(t, header.Constants)
}

func TestParseFunction(t *testing.T) {
	header := parse(t, "REAIMGUIAPI_EXTERN ReaImGuiFunc<void(ImGui_Context*ctx, const char*text)> ImGui_Text\n")

	want := []Function{{
		Name:       "Text",
		ReturnType: BuiltinType(Void),
		Params: []Param{
			{Name: "ctx", Type: OpaqueRef("Context")},
			{Name: "text", Type: BuiltinType(ConstCharPtr)},
		},
		Line: 1,
	}}

	if diff := cmp.Diff(want, header.Functions); diff != "" {
		t.Errorf("functions mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConstant(t *testing.T) {
	header := parse(t, "REAIMGUIAPI_EXTERN ReaImGuiEnum ImGui_Key_A\n")

	assert.Equal(t, []string{"Key_A"}, header.ConstantNames())
}

func TestParseSkipsFunctionTableType(t *testing.T) {
	header := parse(t, `
class ReaImGuiFunc;
class ImGui_ReaImGuiFunc;
class ImGui_Font;
`)

	assert.Equal(t, []string{"Font"}, header.OpaqueNames())
}

func TestParseKeepsDuplicateOpaqueTypes(t *testing.T) {
	header := parse(t, "class ImGui_Context;\nclass ImGui_Context;\n")

	assert.Equal(t, []OpaqueType{{Name: "Context", Line: 1}, {Name: "Context", Line: 2}}, header.OpaqueTypes)
}

func TestParseSkipsArrayFunctions(t *testing.T) {
	header := parse(t, `
REAIMGUIAPI_EXTERN ReaImGuiFunc<void(ImGui_Context* ctx)> ImGui_End;
REAIMGUIAPI_EXTERN ReaImGuiFunc<bool(ImGui_Context* ctx, const char* label, reaper_array* values)> ImGui_PlotLines;
REAIMGUIAPI_EXTERN ReaImGuiFunc<reaper_array*(ImGui_Context* ctx)> ImGui_GetValues;
REAIMGUIAPI_EXTERN ReaImGuiFunc<double(ImGui_Context* ctx)> ImGui_GetTime;
`)

	names := make([]string, len(header.Functions))
	for i, fn := range header.Functions {
		names[i] = fn.Name
	}
	assert.Equal(t, []string{"End", "GetTime"}, names)

	require.Len(t, header.Skipped, 2)
	assert.Equal(t, "PlotLines", header.Skipped[0].Name)
	assert.Equal(t, 3, header.Skipped[0].Line)
	assert.Contains(t, header.Skipped[0].Reason, "array")
	assert.Equal(t, "GetValues", header.Skipped[1].Name)
}

func TestParseSkipsValidatePtr(t *testing.T) {
	header := parse(t, "REAIMGUIAPI_EXTERN ReaImGuiFunc<bool(void* pointer, const char* type)> ImGui_ValidatePtr;\n")

	assert.Empty(t, header.Functions)
	require.Len(t, header.Skipped, 1)
	assert.Equal(t, "ValidatePtr", header.Skipped[0].Name)
}

func TestParseNoParameters(t *testing.T) {
	header := parse(t, "REAIMGUIAPI_EXTERN ReaImGuiFunc<int()> ImGui_GetContextCount;\n")

	require.Len(t, header.Functions, 1)
	assert.Equal(t, BuiltinType(Int), header.Functions[0].ReturnType)
	assert.Empty(t, header.Functions[0].Params)
}

func TestParseStringReturn(t *testing.T) {
	header := parse(t, "REAIMGUIAPI_EXTERN ReaImGuiFunc<const char*(int col_idx)> ImGui_GetStyleColorName;\n")

	require.Len(t, header.Functions, 1)
	assert.Equal(t, BuiltinType(ConstCharPtr), header.Functions[0].ReturnType)
}

func TestParseIgnoresUnrecognisedLines(t *testing.T) {
	header := parse(t, `
#pragma once
// REAIMGUIAPI_EXTERN is defined by the including file
struct reaper_array;
namespace ImGui { }
`)

	assert.Empty(t, header.OpaqueTypes)
	assert.Empty(t, header.Functions)
	assert.Empty(t, header.Constants)
	assert.Empty(t, header.Skipped)
}

func TestParseFatalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
		token string
	}{
		{
			name:  "missing parameter name",
			input: "REAIMGUIAPI_EXTERN ReaImGuiFunc<void(ImGui_Context* ctx, int)> ImGui_Bad;",
			err:   ErrNoName,
			token: "int",
		},
		{
			name:  "empty parameter type",
			input: "REAIMGUIAPI_EXTERN ReaImGuiFunc<void(ImGui_Context* ctx, , int x)> ImGui_Bad;",
			err:   ErrEmptyType,
			token: "",
		},
		{
			name:  "empty parameter type after comma",
			input: "REAIMGUIAPI_EXTERN ReaImGuiFunc<void(ImGui_Context* ctx,  x)> ImGui_Bad;",
			err:   ErrEmptyType,
			token: " x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "class ImGui_Context;\n" + tt.input + "\n"

			_, err := ParseString(input, DefaultDialect())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, 2, perr.Line)
			assert.Equal(t, "Bad", perr.Name)
			assert.Equal(t, tt.token, perr.Token)
			assert.Equal(t, tt.input, perr.Text)
			assert.Contains(t, err.Error(), "line 2 (Bad)")
		})
	}
}

func TestParseAllowFailures(t *testing.T) {
	input := "REAIMGUIAPI_EXTERN ReaImGuiFunc<void(ImGui_Context* ctx, int)> ImGui_Bad;\n" +
		"REAIMGUIAPI_EXTERN ReaImGuiFunc<void(ImGui_Context* ctx)> ImGui_End;\n"

	d := DefaultDialect()
	d.AllowFailures = []string{"Bad"}

	header, err := ParseString(input, d)
	require.NoError(t, err)

	require.Len(t, header.Functions, 1)
	assert.Equal(t, "End", header.Functions[0].Name)
	require.Len(t, header.Skipped, 1)
	assert.Equal(t, "Bad", header.Skipped[0].Name)
	assert.True(t, strings.HasPrefix(header.Skipped[0].Reason, "allow-listed"))
}

func TestParseCustomDialect(t *testing.T) {
	input := `
class Foo_Window;
FOOAPI FooFunc<bool(Foo_Window* win, const char* title)> Foo_SetTitle;
FOOAPI FooEnum Foo_Flags_None;
`
	d := Dialect{
		Prefix:     "Foo_",
		Extern:     "FOOAPI",
		FuncMarker: "FooFunc",
		EnumMarker: "FooEnum",
	}

	header, err := ParseString(input, d)
	require.NoError(t, err)

	assert.Equal(t, []string{"Window"}, header.OpaqueNames())
	assert.Equal(t, []string{"Flags_None"}, header.ConstantNames())
	require.Len(t, header.Functions, 1)
	assert.Equal(t, "SetTitle", header.Functions[0].Name)
	assert.Equal(t, OpaqueRef("Window"), header.Functions[0].Params[0].Type)
}

func TestParseInvalidDialect(t *testing.T) {
	_, err := ParseString("", Dialect{Prefix: "X_"})
	assert.ErrorContains(t, err, "dialect")
}

func TestParseFixture(t *testing.T) {
	f, err := os.Open("../testdata/reaper_imgui_functions.h")
	require.NoError(t, err)
	defer f.Close()

	header, err := Parse(f, DefaultDialect())
	require.NoError(t, err)

	assert.Equal(t, []string{"Context", "DrawList", "Font", "Resource", "DrawList"}, header.OpaqueNames())
	assert.Equal(t, []string{"Key_A", "Cond_Always", "WindowFlags_None", "Col_Text"}, header.ConstantNames())

	var names []string
	for _, fn := range header.Functions {
		names = append(names, fn.Name)
	}
	assert.Equal(t, []string{
		"CreateContext", "Text", "Begin", "End", "InputText", "SliderDouble",
		"DrawList_AddText", "CreateFont", "Attach", "GetStyleColorName",
		"GetTime", "GetVersion", "GetContextCount", "SetDragDropPayload",
	}, names)

	want := []Skipped{
		{Name: "PlotLines", Line: 25},
		{Name: "ValidatePtr", Line: 26, Reason: "pointer validation helper"},
	}
	if diff := cmp.Diff(want, header.Skipped, cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Reason"
	}, cmp.Comparer(func(a, b string) bool { return a == "" || b == "" || a == b }))); diff != "" {
		t.Errorf("skipped mismatch (-want +got):\n%s", diff)
	}

	payload := header.Functions[len(header.Functions)-1]
	assert.Equal(t, "type_", payload.Params[1].Name)
}

func TestParseIsDeterministic(t *testing.T) {
	data, err := os.ReadFile("../testdata/reaper_imgui_functions.h")
	require.NoError(t, err)

	first, err := ParseString(string(data), DefaultDialect())
	require.NoError(t, err)
	second, err := ParseString(string(data), DefaultDialect())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("parse not deterministic (-first +second):\n%s", diff)
	}
}
