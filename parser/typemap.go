package parser

import (
	"strings"
)

// builtinTable is the fixed, ordered set of C spellings that map to a
// builtin. It is built at package init and never written to afterwards.
var builtinTable = [...]struct {
	spelling string
	builtin  Builtin
}{
	{"void", Void},
	{"int", Int},
	{"int*", IntPtr},
	{"const char*", ConstCharPtr},
	{"char*", CharPtr},
	{"bool", Bool},
	{"bool*", BoolPtr},
	{"double", Double},
	{"double*", DoublePtr},
}

// reservedNames are parameter names that collide with a keyword in at least
// one binding target.
var reservedNames = map[string]string{
	"type": "type_",
}

// TypeMapper translates a single "<type> <name>" token from the header.
type TypeMapper struct {
	// ArrayMarker is the substring that identifies the host's generic
	// array type. Tokens resolving to it fail with ErrArrayType.
	ArrayMarker string
}

// Map returns the type of token, its name and whether a name was present.
// Return-type tokens usually have no name; parameter tokens must.
func (m TypeMapper) Map(token string) (TypeRef, string, bool, error) {
	typ, name, ok := matchBuiltin(token)
	if !ok {
		var err error
		typ, name, err = splitOpaque(token)
		if err != nil {
			return TypeRef{}, "", false, err
		}
	}

	if r, ok := reservedNames[name]; ok {
		name = r
	}

	if m.ArrayMarker != "" && typ.IsOpaque() && strings.Contains(typ.Opaque, m.ArrayMarker) {
		return TypeRef{}, "", false, &TypeError{Token: token, Err: ErrArrayType}
	}

	return typ, name, name != "", nil
}

// MapParams maps every parameter token in order. A token without a name is
// an error here even though Map accepts it.
func (m TypeMapper) MapParams(tokens []string) ([]Param, error) {
	params := make([]Param, 0, len(tokens))

	for _, tok := range tokens {
		typ, name, hasName, err := m.Map(tok)
		if err != nil {
			return nil, err
		}
		if !hasName {
			return nil, &TypeError{Token: tok, Err: ErrNoName}
		}
		params = append(params, Param{Name: name, Type: typ})
	}

	return params, nil
}

// ParseType maps token with the default ReaImGui array marker.
func ParseType(token string) (TypeRef, string, bool, error) {
	return TypeMapper{ArrayMarker: DefaultDialect().ArrayMarker}.Map(token)
}

func matchBuiltin(token string) (TypeRef, string, bool) {
	for _, e := range builtinTable {
		if !strings.HasPrefix(token, e.spelling) {
			continue
		}
		if !strings.HasSuffix(e.spelling, "*") && strings.HasPrefix(token, e.spelling+"*") {
			continue
		}

		rest := token[len(e.spelling):]

		// "int" must not swallow "intensity".
		if !strings.HasSuffix(e.spelling, "*") && rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}

		return BuiltinType(e.builtin), strings.TrimSpace(rest), true
	}

	return TypeRef{}, "", false
}

// splitOpaque handles "<Type> <name>", "<Type>* <name>", "<Type> *<name>"
// and the unspaced "<Type>*<name>". Any number of '*' collapses into one
// handle.
func splitOpaque(token string) (TypeRef, string, error) {
	typ, name, found := strings.Cut(token, " ")
	if !found {
		if i := strings.LastIndexByte(token, '*'); i >= 0 {
			typ, name = token[:i+1], token[i+1:]
		}
	}

	typ = strings.TrimRight(typ, "*")
	if typ == "" {
		return TypeRef{}, "", &TypeError{Token: token, Err: ErrEmptyType}
	}

	name = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(name), "*"))

	return OpaqueRef(typ), name, nil
}
