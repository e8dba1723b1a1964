package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/vkext/core"
	"github.com/spaghettifunk/vkext/proc"
)

// File is one generated source file, path relative to the output root.
type File struct {
	Path    string
	Content []byte
}

type commandView struct {
	Name     string
	Field    string
	TypeName string
}

type tableView struct {
	Type     string
	Level    string
	Wrapper  string
	Article  string
	Handle   string
	Param    string
	Commands []commandView
}

type extensionView struct {
	*Extension
	Module      string
	Base        string
	HasCommands bool
	Tables      []tableView
}

type pfnView struct {
	Name      string
	TypeName  string
	Signature string
	Return    string
	Body      string
	Reason    string
}

type typeGroup struct {
	Title string
	Types []VkType
}

// Emit renders the whole model into formatted Go files, in a stable order.
func Emit(m *Model, module string) ([]File, error) {
	var files []File
	for _, vendor := range m.Vendors() {
		pkg := strings.ToLower(vendor)
		exts := m.ByVendor(vendor)

		f, err := render("doc", filepath.Join("extensions", pkg, "doc.gen.go"), map[string]string{"Package": pkg, "Vendor": vendor})
		if err != nil {
			return nil, err
		}
		files = append(files, f)

		var commands []*Command
		seen := map[string]bool{}
		for _, ext := range exts {
			view := extensionViewOf(ext, module)
			f, err := render("extension", filepath.Join("extensions", pkg, ext.FileName()), view)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
			for _, c := range append(append([]*Command{}, ext.InstanceCommands...), ext.DeviceCommands...) {
				if !seen[c.Name] {
					seen[c.Name] = true
					commands = append(commands, c)
				}
			}
		}
		if len(commands) == 0 {
			continue
		}
		f, err = emitCommands(m.Types, pkg, module, commands)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	f, err := emitTypes(m.Types)
	if err != nil {
		return nil, err
	}
	files = append(files, f)

	f, err = render("catalog", filepath.Join("extensions", "catalog.gen.go"), map[string]any{
		"Module":     module,
		"Vendors":    packagesOf(m.Vendors()),
		"Extensions": m.Extensions,
	})
	if err != nil {
		return nil, err
	}
	return append(files, f), nil
}

func extensionViewOf(ext *Extension, module string) extensionView {
	view := extensionView{
		Extension:   ext,
		Module:      module,
		Base:        ext.BaseName(),
		HasCommands: len(ext.InstanceCommands)+len(ext.DeviceCommands) > 0,
	}
	if len(ext.InstanceCommands) > 0 {
		view.Tables = append(view.Tables, tableView{
			Type:     view.Base + "InstanceFn",
			Level:    "instance",
			Wrapper:  view.Base + "Instance",
			Article:  "an",
			Handle:   "vk.Instance",
			Param:    "instance",
			Commands: commandViews(ext.InstanceCommands),
		})
	}
	if len(ext.DeviceCommands) > 0 {
		view.Tables = append(view.Tables, tableView{
			Type:     view.Base + "DeviceFn",
			Level:    "device",
			Wrapper:  view.Base + "Device",
			Article:  "a",
			Handle:   "vk.Device",
			Param:    "device",
			Commands: commandViews(ext.DeviceCommands),
		})
	}
	return view
}

func commandViews(cmds []*Command) []commandView {
	views := make([]commandView, 0, len(cmds))
	for _, c := range cmds {
		views = append(views, commandView{Name: c.Name, Field: fieldName(c.Name), TypeName: pfnName(c.Name)})
	}
	return views
}

func emitCommands(tm *TypeMap, pkg, module string, commands []*Command) (File, error) {
	byName := map[string]*Command{}
	for _, c := range commands {
		byName[c.Name] = c
	}
	var views []pfnView
	usesUnsafe, usesVk := false, false
	for _, name := range sortedKeys(byName) {
		v, err := pfnViewOf(tm, byName[name])
		if err != nil {
			return File{}, fmt.Errorf("%s: %w", name, err)
		}
		if v.Reason == "" {
			usesUnsafe = usesUnsafe || strings.Contains(v.Signature+v.Body, "unsafe.")
			usesVk = usesVk || strings.Contains(v.Signature+v.Return+v.Body, "vk.")
		}
		views = append(views, v)
	}
	return render("commands", filepath.Join("extensions", pkg, "commands.gen.go"), map[string]any{
		"Package":  pkg,
		"Module":   module,
		"Unsafe":   usesUnsafe,
		"Vk":       usesVk,
		"Commands": views,
	})
}

func pfnViewOf(tm *TypeMap, c *Command) (pfnView, error) {
	v := pfnView{Name: c.Name, TypeName: pfnName(c.Name)}
	var sig, args []string
	for _, p := range c.Params {
		gotype, integer, err := tm.ParamType(p)
		if err != nil {
			return v, err
		}
		if !integer && v.Reason == "" {
			v.Reason = "takes " + describe(gotype)
		}
		name := goIdent(p.Name)
		sig = append(sig, name+" "+gotype)
		args = append(args, argExpr(name, gotype))
	}
	ret, integer, err := tm.ReturnType(c.Return)
	if err != nil {
		return v, err
	}
	if !integer && v.Reason == "" {
		v.Reason = "does not return an integer"
	}
	if len(c.Params) > proc.MaxArgs && v.Reason == "" {
		v.Reason = fmt.Sprintf("takes more than %d arguments", proc.MaxArgs)
	}
	if v.Reason != "" {
		return v, nil
	}
	call := "proc.Call(p.Proc"
	if len(args) > 0 {
		call += ", " + strings.Join(args, ", ")
	}
	call += ")"
	v.Signature = strings.Join(sig, ", ")
	v.Return = ret
	switch ret {
	case "", "uintptr":
		v.Body = call
	default:
		v.Body = ret + "(" + call + ")"
	}
	return v, nil
}

func describe(gotype string) string {
	switch gotype {
	case "float32", "float64":
		return "floating-point arguments"
	}
	return "structures by value"
}

// argExpr converts a parameter to the uintptr passed to proc.Call.
func argExpr(name, gotype string) string {
	switch {
	case gotype == "uintptr":
		return name
	case strings.HasPrefix(gotype, "*"):
		return "uintptr(unsafe.Pointer(" + name + "))"
	}
	return "uintptr(" + name + ")"
}

func goIdent(name string) string {
	switch {
	case name == "type":
		return "typ"
	case token.IsKeyword(name), name == "p", name == "proc", name == "vk", name == "unsafe":
		return name + "_"
	}
	return name
}

// fieldName is the table field of a command: its name without the vk prefix.
func fieldName(command string) string {
	return strings.TrimPrefix(command, "vk")
}

func pfnName(command string) string {
	return "PFN" + command
}

func packagesOf(vendors []string) []string {
	pkgs := make([]string, 0, len(vendors))
	for _, v := range vendors {
		pkgs = append(pkgs, strings.ToLower(v))
	}
	return pkgs
}

func emitTypes(tm *TypeMap) (File, error) {
	used, err := tm.Used()
	if err != nil {
		return File{}, err
	}
	groups := []typeGroup{
		{Title: "Enumerations"},
		{Title: "Bitmasks"},
		{Title: "Non-dispatchable handles"},
		{Title: "Base types"},
		{Title: "Aliases"},
	}
	for _, t := range used {
		i := 0
		switch {
		case t.Alias:
			i = 4
		case t.Category == CategoryBitmask:
			i = 1
		case t.Category == CategoryHandle:
			i = 2
		case t.Category == CategoryBaseType:
			i = 3
		}
		groups[i].Types = append(groups[i].Types, t)
	}
	var nonEmpty []typeGroup
	for _, g := range groups {
		if len(g.Types) > 0 {
			nonEmpty = append(nonEmpty, g)
		}
	}
	return render("types", filepath.Join("vk", "types.gen.go"), nonEmpty)
}

func render(name, path string, data any) (File, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return File{}, fmt.Errorf("rendering %s: %w", path, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		core.LogDebug("unformatted %s:\n%s", path, buf.String())
		return File{}, fmt.Errorf("formatting %s: %w", path, err)
	}
	return File{Path: filepath.ToSlash(path), Content: src}, nil
}

// Write stores files under root. Every generated file of the directories it
// writes to and of the vendor packages under extensions/ is removed first, so
// vendors dropped from the output leave nothing behind.
func Write(root string, files []File) error {
	patterns := []string{filepath.Join(root, "extensions", "*", "*.gen.go")}
	dirs := map[string]bool{}
	for _, f := range files {
		dir := filepath.Join(root, filepath.Dir(filepath.FromSlash(f.Path)))
		if !dirs[dir] {
			dirs[dir] = true
			patterns = append(patterns, filepath.Join(dir, "*.gen.go"))
		}
	}

	vendors := map[string]bool{}
	for _, pattern := range patterns {
		stale, err := filepath.Glob(pattern)
		if err != nil {
			return err
		}
		for _, s := range stale {
			if err := os.Remove(s); err != nil && !os.IsNotExist(err) {
				return err
			}
			vendors[filepath.Dir(s)] = true
		}
	}
	// A vendor package left without files is removed with its directory.
	for dir := range vendors {
		if dirs[dir] {
			continue
		}
		if entries, err := os.ReadDir(dir); err == nil && len(entries) == 0 {
			if err := os.Remove(dir); err != nil {
				return err
			}
		}
	}

	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return err
		}
	}
	return nil
}
