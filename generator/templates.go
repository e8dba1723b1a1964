package generator

import (
	"text/template"
)

const header = "// Code generated by vkgen. DO NOT EDIT.\n\n"

var templates = template.Must(template.New("vkgen").Funcs(template.FuncMap{
	"cstring": cstring,
}).Parse(`
{{- define "doc" -}}
` + header + `// Package {{.Package}} holds the loaders of the {{.Vendor}} Vulkan extensions.
package {{.Package}}
{{end}}

{{- define "extension" -}}
` + header + `package {{.Package}}
{{if .HasCommands}}
import (
	"{{.Module}}/proc"
	"{{.Module}}/vk"
)
{{end}}
// {{.Name}}, registry extension {{.Number}} ({{.Kind}}).
{{- if .Depends}}
// Depends on {{.Depends}}.
{{- end}}
{{- if .Platform}}
// Platform: {{.Platform}}.
{{- end}}
const (
	{{.Base}}ExtensionName = {{cstring .Name}}
	{{.Base}}SpecVersion = {{.SpecVersion}}
)
{{range .Tables}}
// {{.Type}} holds the {{.Level}}-level commands of {{$.Name}}.
type {{.Type}} struct {
{{- range .Commands}}
	{{.Field}} {{.TypeName}}
{{- end}}
}

// Load{{.Type}} resolves the {{.Level}}-level commands of {{$.Name}},
// calling resolve once per command in declaration order. Commands the
// resolver does not provide panic when called.
func Load{{.Type}}(resolve proc.Resolver) {{.Type}} {
	var fn {{.Type}}
{{- range .Commands}}
	fn.{{.Field}} = {{.TypeName}}{proc.Load(resolve, {{cstring .Name}})}
{{- end}}
	return fn
}

// Procs returns the commands of the table in declaration order.
func (fn {{.Type}}) Procs() []proc.Proc {
	return []proc.Proc{
{{- range .Commands}}
		fn.{{.Field}}.Proc,
{{- end}}
	}
}

// Check returns a *proc.MissingCommandsError naming the commands that did not load.
func (fn {{.Type}}) Check() error {
	return proc.Check({{printf "%q" $.Name}}, fn.Procs()...)
}

// {{.Wrapper}} pairs {{.Article}} {{.Level}} handle with the {{.Level}}-level commands of {{$.Name}}.
type {{.Wrapper}} struct {
	Handle {{.Handle}}
	{{.Type}}
}

// New{{.Wrapper}} loads the {{.Level}}-level commands of {{$.Name}} for {{.Param}}.
func New{{.Wrapper}}(resolve proc.Resolver, {{.Param}} {{.Handle}}) *{{.Wrapper}} {
	return &{{.Wrapper}}{Handle: {{.Param}}, {{.Type}}: Load{{.Type}}(resolve)}
}
{{end}}
{{- end}}

{{- define "commands" -}}
` + header + `package {{.Package}}

import (
{{- if .Unsafe}}
	"unsafe"
{{end}}
	"{{.Module}}/proc"
{{- if .Vk}}
	"{{.Module}}/vk"
{{- end}}
)
{{range .Commands}}
// {{.TypeName}} holds the address of {{.Name}}.
{{- if .Reason}} It has no Call method: the command {{.Reason}}.{{end}}
type {{.TypeName}} struct{ proc.Proc }
{{if not .Reason}}
// Call invokes {{.Name}}. It panics when the command was not loaded.
func (p {{.TypeName}}) Call({{.Signature}}){{if .Return}} {{.Return}}{{end}} {
	{{if .Return}}return {{end}}{{.Body}}
}
{{end}}
{{- end}}
{{- end}}

{{- define "types" -}}
` + header + `package vk
{{range .}}
// {{.Title}}.
type (
{{- range .Types}}
	{{.GoName}}{{if .Alias}} ={{end}} {{.Underlying}}
{{- end}}
)
{{end}}
{{- end}}

{{- define "catalog" -}}
` + header + `package extensions

import (
{{- range .Vendors}}
	"{{$.Module}}/extensions/{{.}}"
{{- end}}
)

var registry = []Descriptor{
{{- range .Extensions}}
	{
		Name: {{.Package}}.{{.BaseName}}ExtensionName,
		SpecVersion: {{.Package}}.{{.BaseName}}SpecVersion,
		Number: {{.Number}},
		Vendor: {{printf "%q" .Vendor}},
		Kind: {{if eq .Kind "instance"}}Instance{{else}}Device{{end}},
{{- if .Platform}}
		Platform: {{printf "%q" .Platform}},
{{- end}}
{{- if .Depends}}
		Depends: {{printf "%q" .Depends}},
{{- end}}
{{- if .InstanceCommands}}
		InstanceCommands: []string{ {{- range $i, $c := .InstanceCommands}}{{if $i}}, {{end}}{{printf "%q" $c.Name}}{{end -}} },
		LoadInstance: loader({{.Package}}.Load{{.BaseName}}InstanceFn),
{{- end}}
{{- if .DeviceCommands}}
		DeviceCommands: []string{ {{- range $i, $c := .DeviceCommands}}{{if $i}}, {{end}}{{printf "%q" $c.Name}}{{end -}} },
		LoadDevice: loader({{.Package}}.Load{{.BaseName}}DeviceFn),
{{- end}}
	},
{{- end}}
}
{{end}}
`))

// cstring quotes s as a Go string literal with a trailing NUL.
func cstring(s string) string {
	return `"` + s + `\x00"`
}
