package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"

	"go.uber.org/zap"

	"github.com/ardanlabs/reaimgui-gen/parser"
)

// Options control the shape of the emitted file.
type Options struct {
	// Package is the Go package name of the emitted file.
	Package string
	// TypeName is the name of the wrapper struct.
	TypeName string
	// Prefix is prepended to every bare name to form the host symbol.
	Prefix string
	// Source names the header in the generated-code banner.
	Source string
}

type Generator struct {
	opts   Options
	header *parser.Header
}

func New(opts Options, header *parser.Header) *Generator {
	return &Generator{
		opts:   opts,
		header: header,
	}
}

type fileData struct {
	Package  string
	TypeName string
	Source   string
	Receiver string
	Opaque   []string

	Functions []funcData
	Constants []constData
}

type funcData struct {
	Name   string
	Symbol string
	Params []paramData
	Result string
	Zero   string
}

type paramData struct {
	Name string
	Type string
}

type constData struct {
	Field  string
	Symbol string
}

// Generate emits one gofmt'ed Go source file. The output depends only on
// the header model and the options, so regenerating from the same header
// reproduces it byte for byte.
func (g *Generator) Generate() ([]byte, error) {
	data, err := g.fileData()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := bindingsTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	Logger().Debug("bindings generated",
		zap.String("package", data.Package),
		zap.Int("opaque_types", len(data.Opaque)),
		zap.Int("functions", len(data.Functions)),
		zap.Int("constants", len(data.Constants)),
		zap.Int("bytes", len(out)),
	)

	return out, nil
}

func (g *Generator) fileData() (fileData, error) {
	if g.opts.Package == "" {
		return fileData{}, fmt.Errorf("package name is required")
	}

	typeName, err := exportName(g.opts.TypeName)
	if err != nil {
		return fileData{}, fmt.Errorf("wrapper type: %w", err)
	}

	data := fileData{
		Package:  g.opts.Package,
		TypeName: typeName,
		Source:   g.opts.Source,
		Receiver: receiverName,
	}
	if data.Source == "" {
		data.Source = "header"
	}

	data.Opaque, err = g.opaqueTypes()
	if err != nil {
		return fileData{}, err
	}

	for _, fn := range g.header.Functions {
		fd, err := g.function(fn)
		if err != nil {
			return fileData{}, fmt.Errorf("function %s (line %d): %w", fn.Name, fn.Line, err)
		}
		data.Functions = append(data.Functions, fd)
	}

	for _, c := range g.header.Constants {
		field, err := exportName(c.Name)
		if err != nil {
			return fileData{}, fmt.Errorf("constant %s (line %d): %w", c.Name, c.Line, err)
		}
		data.Constants = append(data.Constants, constData{
			Field:  field,
			Symbol: g.opts.Prefix + c.Name,
		})
	}

	if err := checkCollisions(data); err != nil {
		return fileData{}, err
	}

	return data, nil
}

// opaqueTypes returns each handle type once, declared ones first in header
// order, then any a function refers to without a forward declaration. The
// model may repeat a declaration; Go does not allow that, so the first one
// wins.
func (g *Generator) opaqueTypes() ([]string, error) {
	var names []string
	seen := make(map[string]bool)

	add := func(raw string) (bool, error) {
		name, err := exportName(raw)
		if err != nil {
			return false, fmt.Errorf("opaque type: %w", err)
		}
		if seen[name] {
			return false, nil
		}
		seen[name] = true
		names = append(names, name)
		return true, nil
	}

	for _, o := range g.header.OpaqueTypes {
		if _, err := add(o.Name); err != nil {
			return nil, err
		}
	}

	for _, fn := range g.header.Functions {
		refs := []parser.TypeRef{fn.ReturnType}
		for _, p := range fn.Params {
			refs = append(refs, p.Type)
		}

		for _, t := range refs {
			if !t.IsOpaque() {
				continue
			}
			added, err := add(t.Opaque)
			if err != nil {
				return nil, err
			}
			if added {
				Logger().Warn("declaring undeclared opaque type",
					zap.String("type", t.Opaque),
					zap.String("function", fn.Name),
					zap.Int("line", fn.Line),
				)
			}
		}
	}

	return names, nil
}

func (g *Generator) function(fn parser.Function) (funcData, error) {
	name, err := exportName(fn.Name)
	if err != nil {
		return funcData{}, err
	}

	result, err := goType(fn.ReturnType)
	if err != nil {
		return funcData{}, err
	}

	raw := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		raw[i] = p.Name
	}
	names, err := paramNames(raw)
	if err != nil {
		return funcData{}, err
	}

	params := make([]paramData, len(fn.Params))
	for i, p := range fn.Params {
		typ, err := goType(p.Type)
		if err != nil {
			return funcData{}, fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		if typ == "" {
			return funcData{}, fmt.Errorf("parameter %s: void is not a parameter type", p.Name)
		}
		params[i] = paramData{Name: names[i], Type: typ}
	}

	fd := funcData{
		Name:   name,
		Symbol: g.opts.Prefix + fn.Name,
		Params: params,
		Result: result,
	}
	if result != "" {
		fd.Zero = zeroValue(result)
	}

	return fd, nil
}

// checkCollisions rejects models whose names would clash once they share
// the wrapper's method set or the package scope.
func checkCollisions(data fileData) error {
	members := make(map[string]string)
	for _, a := range accessorNames {
		members[a] = "accessor"
	}

	for _, fn := range data.Functions {
		if prev, ok := members[fn.Name]; ok {
			return fmt.Errorf("function %s collides with %s of the same name", fn.Name, prev)
		}
		members[fn.Name] = "function"
	}

	for _, c := range data.Constants {
		if prev, ok := members[c.Field]; ok {
			return fmt.Errorf("constant %s collides with %s of the same name", c.Field, prev)
		}
		members[c.Field] = "constant"
	}

	pkgScope := []string{data.TypeName, "Load", "FunctionCount", "functionPointers"}
	for _, o := range data.Opaque {
		if slices.Contains(pkgScope, o) {
			return fmt.Errorf("opaque type %s collides with a generated declaration", o)
		}
	}

	return nil
}
