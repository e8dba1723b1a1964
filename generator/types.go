package generator

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/spaghettifunk/vkext/core"
)

// Category of a registry type as far as Go mapping is concerned.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryPrimitive
	CategoryPlatform
	CategoryEnum
	CategoryBitmask
	CategoryHandle
	CategoryBaseType
	CategoryFuncPointer
	CategoryStruct
)

var primitives = map[string]string{
	"void":     "",
	"char":     "byte",
	"float":    "float32",
	"double":   "float64",
	"int8_t":   "int8",
	"uint8_t":  "uint8",
	"int16_t":  "int16",
	"uint16_t": "uint16",
	"int32_t":  "int32",
	"uint32_t": "uint32",
	"int64_t":  "int64",
	"uint64_t": "uint64",
	"size_t":   "uintptr",
	"int":      "int32",
}

// VkType is a registry type emitted into the vk package.
type VkType struct {
	CName    string
	GoName   string
	Category Category
	// Underlying is the Go type of the declaration, or the aliased GoName.
	Underlying string
	Alias      bool
}

// TypeMap maps registry types to Go types.
type TypeMap struct {
	types       map[string]RegistryType
	platform    map[string]string
	handwritten []string
	used        map[string]bool
}

func NewTypeMap(reg *Registry, cfg core.GeneratorConfig) *TypeMap {
	tm := &TypeMap{
		types:       map[string]RegistryType{},
		platform:    cfg.PlatformTypes,
		handwritten: cfg.HandwrittenTypes,
		used:        map[string]bool{},
	}
	for _, t := range reg.Types {
		tm.types[t.TypeName()] = t
	}
	return tm
}

func (tm *TypeMap) category(name string) Category {
	if _, ok := primitives[name]; ok {
		return CategoryPrimitive
	}
	t, ok := tm.types[name]
	if !ok {
		if _, ok := tm.platform[name]; ok {
			return CategoryPlatform
		}
		return CategoryUnknown
	}
	switch t.Category {
	case "enum":
		return CategoryEnum
	case "bitmask":
		return CategoryBitmask
	case "handle":
		return CategoryHandle
	case "basetype":
		return CategoryBaseType
	case "funcpointer":
		return CategoryFuncPointer
	case "struct", "union":
		return CategoryStruct
	case "":
		if t.Requires != "" {
			return CategoryPlatform
		}
	}
	return CategoryUnknown
}

// vkName returns the vk package identifier of a registry type.
func vkName(cname string) string {
	return "vk." + strings.TrimPrefix(cname, "Vk")
}

// scalar maps a type passed by value. integer is false when the value cannot
// travel in a single integer register.
func (tm *TypeMap) scalar(cname string) (gotype string, integer bool, err error) {
	switch tm.category(cname) {
	case CategoryPrimitive:
		gotype = primitives[cname]
		return gotype, gotype != "float32" && gotype != "float64" && gotype != "", nil
	case CategoryPlatform:
		mapped, ok := tm.platform[cname]
		if !ok {
			return "", false, fmt.Errorf("%w: platform type %s has no mapping", core.ErrRegistry, cname)
		}
		return mapped, true, nil
	case CategoryEnum, CategoryBitmask, CategoryHandle, CategoryBaseType:
		tm.use(cname)
		return vkName(cname), true, nil
	case CategoryFuncPointer:
		return "uintptr", true, nil
	case CategoryStruct:
		return "unsafe.Pointer", false, nil
	}
	return "", false, fmt.Errorf("%w: unknown type %s", core.ErrRegistry, cname)
}

// ParamType maps a parameter to its Go type. integer reports whether the
// value fits in one integer register.
func (tm *TypeMap) ParamType(p RegistryParam) (gotype string, integer bool, err error) {
	if n := p.ArrayLen(); n > 0 {
		elem, _, err := tm.scalar(p.Type)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("*[%d]%s", n, elem), true, nil
	}
	switch p.Pointers() {
	case 0:
		return tm.scalar(p.Type)
	case 1:
		switch tm.category(p.Type) {
		case CategoryPrimitive:
			if p.Type == "void" {
				return "unsafe.Pointer", true, nil
			}
			return "*" + primitives[p.Type], true, nil
		case CategoryEnum, CategoryBitmask, CategoryHandle, CategoryBaseType, CategoryFuncPointer:
			elem, _, err := tm.scalar(p.Type)
			if err != nil {
				return "", false, err
			}
			return "*" + elem, true, nil
		case CategoryStruct, CategoryPlatform:
			return "unsafe.Pointer", true, nil
		}
		return "", false, fmt.Errorf("%w: unknown type %s", core.ErrRegistry, p.Type)
	}
	return "unsafe.Pointer", true, nil
}

// ReturnType maps a command result. An empty type means no result.
func (tm *TypeMap) ReturnType(cname string) (gotype string, integer bool, err error) {
	if cname == "void" {
		return "", true, nil
	}
	return tm.scalar(cname)
}

func (tm *TypeMap) use(cname string) {
	if slices.Contains(tm.handwritten, cname) {
		return
	}
	tm.used[cname] = true
	if t := tm.types[cname]; t.Alias != "" {
		tm.use(t.Alias)
	}
}

// Used returns the vk package types referenced by the mapped signatures,
// sorted by name.
func (tm *TypeMap) Used() ([]VkType, error) {
	var out []VkType
	for _, cname := range sortedKeys(tm.used) {
		t := tm.types[cname]
		vt := VkType{CName: cname, GoName: strings.TrimPrefix(cname, "Vk"), Category: tm.category(cname)}
		switch {
		case t.Alias != "":
			vt.Alias = true
			vt.Underlying = strings.TrimPrefix(t.Alias, "Vk")
		case vt.Category == CategoryEnum:
			vt.Underlying = "int32"
		case vt.Category == CategoryBitmask:
			vt.Underlying = "uint32"
			if t.TypeElem == "VkFlags64" {
				vt.Underlying = "uint64"
			}
		case vt.Category == CategoryHandle:
			vt.Underlying = "uint64"
			if t.TypeElem == "VK_DEFINE_HANDLE" {
				vt.Underlying = "uintptr"
			}
		case vt.Category == CategoryBaseType:
			base, ok := primitives[t.TypeElem]
			if !ok || base == "" {
				base = "uintptr"
			}
			vt.Underlying = base
		default:
			return nil, fmt.Errorf("%w: %s cannot be declared in package vk", core.ErrRegistry, cname)
		}
		out = append(out, vt)
	}
	return out, nil
}

func toSet[K comparable](keys []K) map[K]bool {
	set := make(map[K]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
