package generator

import (
	"fmt"
	"go/token"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// receiverName and the locals below appear in every emitted method body;
// parameters must not shadow them.
const receiverName = "im"

var reservedParams = map[string]bool{
	receiverName: true,
	"fn":         true,
	"host":       true,
}

// accessorNames are methods every emitted wrapper carries.
var accessorNames = []string{"LoadedCount", "Missing", "Host"}

// exportName upper-cases the first rune so the name is exported. The rest
// is kept as the header spells it.
func exportName(name string) (string, error) {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "", fmt.Errorf("invalid identifier %q", name)
	}

	out := string(unicode.ToUpper(r)) + name[size:]
	if !token.IsIdentifier(out) {
		return "", fmt.Errorf("%q is not a valid Go identifier", name)
	}

	return out, nil
}

// paramNames turns header parameter names into Go parameter names: keywords
// and reserved locals get a trailing underscore, repeats get a numeric
// suffix.
func paramNames(names []string) ([]string, error) {
	out := make([]string, len(names))
	seen := make(map[string]bool, len(names))

	for i, name := range names {
		if !token.IsIdentifier(name) && !token.IsKeyword(name) {
			return nil, fmt.Errorf("parameter %q is not a valid Go identifier", name)
		}

		if token.IsKeyword(name) || reservedParams[name] {
			name += "_"
		}

		base := name
		for n := 2; seen[name]; n++ {
			name = base + strconv.Itoa(n)
		}

		seen[name] = true
		out[i] = name
	}

	return out, nil
}
