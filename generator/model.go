package generator

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/spaghettifunk/vkext/core"
)

// Level is the dispatch level of a command.
type Level int

const (
	InstanceLevel Level = iota
	DeviceLevel
)

// Command is one loadable command. For aliases Name is the alias symbol and
// the signature is the one of the aliased command.
type Command struct {
	Name   string
	Return string
	Params []RegistryParam
	Level  Level
}

// Extension is one supported extension with its commands split by level, in
// registry order.
type Extension struct {
	Name             string
	Number           int
	Kind             string
	Vendor           string
	SpecVersion      int
	Platform         string
	Depends          string
	InstanceCommands []*Command
	DeviceCommands   []*Command
}

// Package is the lowercase vendor tag the extension is generated into.
func (e *Extension) Package() string {
	return strings.ToLower(e.Vendor)
}

// BaseName is the Go identifier prefix of the extension, derived from the
// name without the VK_<VENDOR>_ prefix.
func (e *Extension) BaseName() string {
	rest := strings.TrimPrefix(e.Name, "VK_"+e.Vendor+"_")
	var b strings.Builder
	for _, part := range strings.Split(rest, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = strings.ToUpper(e.Vendor[:1]) + strings.ToLower(e.Vendor[1:]) + name
	}
	return name
}

// FileName is the generated file of the extension, relative to its package.
func (e *Extension) FileName() string {
	return strings.ToLower(strings.TrimPrefix(e.Name, "VK_"+e.Vendor+"_")) + ".gen.go"
}

// Model is the registry reduced to what the emitter needs.
type Model struct {
	Extensions []*Extension
	Types      *TypeMap
}

// Build resolves every supported extension of reg that passes the vendor and
// exclude filters of cfg.
func Build(reg *Registry, cfg core.GeneratorConfig) (*Model, error) {
	types := NewTypeMap(reg, cfg)

	commands := map[string]RegistryCommand{}
	for _, c := range reg.Commands {
		if forVulkan(c.API) {
			commands[c.CommandName()] = c
		}
	}

	var exts []*Extension
	for _, re := range reg.Extensions {
		if !re.supportedByVulkan() || slices.Contains(cfg.Exclude, re.Name) {
			continue
		}
		vendor := vendorOf(re.Name)
		if len(cfg.Vendors) > 0 && !slices.Contains(cfg.Vendors, vendor) {
			continue
		}
		name, err := re.extensionName()
		if err != nil {
			return nil, err
		}
		version, err := re.specVersion()
		if err != nil {
			return nil, err
		}
		ext := &Extension{
			Name:        name,
			Number:      re.Number,
			Kind:        re.Type,
			Vendor:      vendor,
			SpecVersion: version,
			Platform:    re.Platform,
			Depends:     re.Depends,
		}
		for _, cname := range re.commands() {
			cmd, err := resolveCommand(commands, cname)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", re.Name, err)
			}
			if cmd.Level == InstanceLevel {
				ext.InstanceCommands = append(ext.InstanceCommands, cmd)
			} else {
				ext.DeviceCommands = append(ext.DeviceCommands, cmd)
			}
		}
		exts = append(exts, ext)
	}
	slices.SortStableFunc(exts, func(a, b *Extension) int { return a.Number - b.Number })
	return &Model{Extensions: exts, Types: types}, nil
}

func resolveCommand(commands map[string]RegistryCommand, name string) (*Command, error) {
	rc, ok := commands[name]
	if !ok {
		return nil, fmt.Errorf("%w: command %s is not declared", core.ErrRegistry, name)
	}
	seen := map[string]bool{}
	for rc.Alias != "" {
		if seen[rc.Alias] {
			return nil, fmt.Errorf("%w: alias cycle at %s", core.ErrRegistry, name)
		}
		seen[rc.Alias] = true
		target, ok := commands[rc.Alias]
		if !ok {
			return nil, fmt.Errorf("%w: %s aliases undeclared %s", core.ErrRegistry, name, rc.Alias)
		}
		rc = target
	}
	var params []RegistryParam
	for _, p := range rc.Params {
		if forVulkan(p.API) {
			params = append(params, p)
		}
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: command %s has no parameters", core.ErrRegistry, name)
	}
	return &Command{
		Name:   name,
		Return: rc.Proto.Type,
		Params: params,
		Level:  levelOf(name, params[0].Type),
	}, nil
}

// levelOf classifies a command by the handle it dispatches on.
func levelOf(name, first string) Level {
	if name == "vkGetDeviceProcAddr" {
		return InstanceLevel
	}
	switch first {
	case "VkDevice", "VkQueue", "VkCommandBuffer":
		return DeviceLevel
	}
	return InstanceLevel
}

func vendorOf(name string) string {
	parts := strings.SplitN(name, "_", 3)
	if len(parts) < 3 {
		return ""
	}
	return parts[1]
}

// Vendors returns the vendor tags that have at least one extension.
func (m *Model) Vendors() []string {
	var vendors []string
	for _, e := range m.Extensions {
		if !slices.Contains(vendors, e.Vendor) {
			vendors = append(vendors, e.Vendor)
		}
	}
	return sortedKeys(toSet(vendors))
}

// ByVendor returns the extensions of vendor in registry order.
func (m *Model) ByVendor(vendor string) []*Extension {
	var exts []*Extension
	for _, e := range m.Extensions {
		if e.Vendor == vendor {
			exts = append(exts, e)
		}
	}
	return exts
}
