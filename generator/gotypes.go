package generator

import (
	"fmt"

	"github.com/ardanlabs/reaimgui-gen/parser"
)

// builtinGoTypes is what each builtin looks like on the Go side of the
// call. Strings are converted to NUL-terminated C strings for the duration
// of the call; char* stays a raw buffer pointer because the callee writes
// into it.
var builtinGoTypes = map[parser.Builtin]string{
	parser.Void:         "",
	parser.Int:          "int32",
	parser.IntPtr:       "*int32",
	parser.ConstCharPtr: "string",
	parser.CharPtr:      "*byte",
	parser.Bool:         "bool",
	parser.BoolPtr:      "*bool",
	parser.Double:       "float64",
	parser.DoublePtr:    "*float64",
}

func goType(t parser.TypeRef) (string, error) {
	if t.IsOpaque() {
		return exportName(t.Opaque)
	}

	gt, ok := builtinGoTypes[t.Builtin]
	if !ok {
		return "", fmt.Errorf("no Go type for %s", t)
	}

	return gt, nil
}

func zeroValue(goType string) string {
	switch goType {
	case "bool":
		return "false"
	case "string":
		return `""`
	case "int32", "float64":
		return "0"
	}

	if goType != "" && goType[0] == '*' {
		return "nil"
	}

	// Opaque handles are uintptr.
	return "0"
}
