package parser

// Builtin is one of the C types the header spells out literally.
type Builtin int

const (
	NoBuiltin Builtin = iota
	Void
	Int
	IntPtr
	ConstCharPtr
	CharPtr
	Bool
	BoolPtr
	Double
	DoublePtr
)

var builtinSpelling = [...]string{
	NoBuiltin:    "",
	Void:         "void",
	Int:          "int",
	IntPtr:       "int*",
	ConstCharPtr: "const char*",
	CharPtr:      "char*",
	Bool:         "bool",
	BoolPtr:      "bool*",
	Double:       "double",
	DoublePtr:    "double*",
}

func (b Builtin) String() string {
	if b < 0 || int(b) >= len(builtinSpelling) {
		return "builtin(?)"
	}
	return builtinSpelling[b]
}

// TypeRef is either a builtin or an opaque handle name, never both.
type TypeRef struct {
	Builtin Builtin
	Opaque  string
}

func BuiltinType(b Builtin) TypeRef {
	return TypeRef{Builtin: b}
}

func OpaqueRef(name string) TypeRef {
	return TypeRef{Opaque: name}
}

func (t TypeRef) IsVoid() bool {
	return t.Builtin == Void
}

func (t TypeRef) IsOpaque() bool {
	return t.Builtin == NoBuiltin && t.Opaque != ""
}

func (t TypeRef) String() string {
	if t.IsOpaque() {
		return t.Opaque + "*"
	}
	return t.Builtin.String()
}

type Param struct {
	Name string
	Type TypeRef
}

type Function struct {
	Name       string
	ReturnType TypeRef
	Params     []Param
	Line       int
}

type Constant struct {
	Name string
	Line int
}

type OpaqueType struct {
	Name string
	Line int
}

// Skipped records a declaration that was recognised but left out of the
// model on purpose.
type Skipped struct {
	Name   string
	Line   int
	Reason string
}

// Header is the binding model: everything the generator needs, in the
// order it appeared in the source.
type Header struct {
	OpaqueTypes []OpaqueType
	Constants   []Constant
	Functions   []Function
	Skipped     []Skipped
}

func (h *Header) OpaqueNames() []string {
	names := make([]string, 0, len(h.OpaqueTypes))
	for _, o := range h.OpaqueTypes {
		names = append(names, o.Name)
	}
	return names
}

func (h *Header) ConstantNames() []string {
	names := make([]string, 0, len(h.Constants))
	for _, c := range h.Constants {
		names = append(names, c.Name)
	}
	return names
}
