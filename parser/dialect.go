package parser

import (
	"fmt"
	"regexp"
)

// Dialect describes the macros and markers a particular header uses.
type Dialect struct {
	Prefix         string
	Extern         string
	FuncMarker     string
	EnumMarker     string
	ArrayMarker    string
	ValidateHelper string

	// AllowFailures lists function names (prefix stripped) whose type
	// translation may fail without aborting the scan.
	AllowFailures []string
}

// DefaultDialect returns the markers of reaper_imgui_functions.h.
func DefaultDialect() Dialect {
	return Dialect{
		Prefix:         "ImGui_",
		Extern:         "REAIMGUIAPI_EXTERN",
		FuncMarker:     "ReaImGuiFunc",
		EnumMarker:     "ReaImGuiEnum",
		ArrayMarker:    "reaper_array",
		ValidateHelper: "ValidatePtr",
	}
}

func (d Dialect) TypeMapper() TypeMapper {
	return TypeMapper{ArrayMarker: d.ArrayMarker}
}

type patterns struct {
	class *regexp.Regexp
	fn    *regexp.Regexp
	enum  *regexp.Regexp
}

func (d Dialect) compile() (patterns, error) {
	if d.Extern == "" || d.FuncMarker == "" || d.EnumMarker == "" {
		return patterns{}, fmt.Errorf("dialect: extern, function and enum markers are required")
	}

	extern := regexp.QuoteMeta(d.Extern)

	fn, err := regexp.Compile(extern + `\s+` + regexp.QuoteMeta(d.FuncMarker) + `<([^<>(]+?)\s*\((.*)\)>\s+(\w+)`)
	if err != nil {
		return patterns{}, fmt.Errorf("dialect: function pattern: %w", err)
	}

	enum, err := regexp.Compile(extern + `\s+` + regexp.QuoteMeta(d.EnumMarker) + `\s+(\w+)`)
	if err != nil {
		return patterns{}, fmt.Errorf("dialect: enum pattern: %w", err)
	}

	return patterns{
		class: classRe,
		fn:    fn,
		enum:  enum,
	}, nil
}

var classRe = regexp.MustCompile(`class (\w+);`)
