package generator

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"params": func(ps []paramData) string {
		parts := make([]string, len(ps))
		for i, p := range ps {
			parts[i] = p.Name + " " + p.Type
		}
		return strings.Join(parts, ", ")
	},
	"args": func(ps []paramData) string {
		parts := make([]string, len(ps))
		for i, p := range ps {
			parts[i] = p.Name
		}
		return strings.Join(parts, ", ")
	},
}

var bindingsTmpl = template.Must(template.New("bindings").Funcs(funcs).Parse(`// Code generated by reaimgui-gen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/ardanlabs/reaimgui-gen/host"
)
{{range .Opaque}}
type {{.}} uintptr
{{end}}
// FunctionCount is the number of functions described by {{.Source}}.
const FunctionCount = {{len .Functions}}

type functionPointers struct {
	loaded int
{{- range .Functions}}
	{{.Name}} func({{params .Params}}){{with .Result}} {{.}}{{end}}
{{- end}}
}

// {{.TypeName}} holds the functions and constants resolved from the host.
// It is never modified after Load, so it may be shared between goroutines;
// the native functions must still be called from the thread the host
// expects.
type {{.TypeName}} struct {
	pointers functionPointers
	host     host.Resolver
	missing  []string
{{- range .Constants}}
	{{.Field}} int32
{{- end}}
}

// Load resolves every function and constant through r. A symbol the host
// does not export is recorded in Missing and its method returns
// host.ErrNotLoaded; Load itself never fails.
func Load(r host.Resolver) *{{.TypeName}} {
	{{.Receiver}} := &{{.TypeName}}{host: r}
{{- if .Functions}}
	p := &{{.Receiver}}.pointers
{{- end}}
{{range .Functions}}
	if host.Bind(r, "{{.Symbol}}", &p.{{.Name}}) {
		p.loaded++
	} else {
		{{$.Receiver}}.missing = append({{$.Receiver}}.missing, "{{.Symbol}}")
	}
{{- end}}
{{range .Constants}}
	if v, ok := host.Constant(r, "{{.Symbol}}"); ok {
		{{$.Receiver}}.{{.Field}} = v
	} else {
		{{$.Receiver}}.missing = append({{$.Receiver}}.missing, "{{.Symbol}}")
	}
{{- end}}

	return {{.Receiver}}
}

// LoadedCount reports how many of the FunctionCount functions resolved.
func ({{.Receiver}} *{{.TypeName}}) LoadedCount() int {
	return {{.Receiver}}.pointers.loaded
}

// Missing lists the symbols the host did not export, in header order.
func ({{.Receiver}} *{{.TypeName}}) Missing() []string {
	return append([]string(nil), {{.Receiver}}.missing...)
}

// Host returns the resolver the bindings were loaded from.
func ({{.Receiver}} *{{.TypeName}}) Host() host.Resolver {
	return {{.Receiver}}.host
}
{{range .Functions}}
// {{.Name}} calls {{.Symbol}}. Arguments are handed to native code unchecked.
func ({{$.Receiver}} *{{$.TypeName}}) {{.Name}}({{params .Params}}) {{if .Result}}({{.Result}}, error){{else}}error{{end}} {
	fn := {{$.Receiver}}.pointers.{{.Name}}
	if fn == nil {
		return {{if .Result}}{{.Zero}}, {{end}}host.NotLoaded("{{.Name}}")
	}
{{- if .Result}}
	return fn({{args .Params}}), nil
{{- else}}
	fn({{args .Params}})
	return nil
{{- end}}
}
{{end}}`))
