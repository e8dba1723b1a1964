package generator

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/spaghettifunk/vkext/core"
)

// Registry is the subset of vk.xml the generator reads.
type Registry struct {
	Types      []RegistryType      `xml:"types>type"`
	Commands   []RegistryCommand   `xml:"commands>command"`
	Extensions []RegistryExtension `xml:"extensions>extension"`
}

type RegistryType struct {
	Name     string `xml:"name,attr"`
	Category string `xml:"category,attr"`
	Alias    string `xml:"alias,attr"`
	Requires string `xml:"requires,attr"`
	NameElem string `xml:"name"`
	TypeElem string `xml:"type"`
	Inner    string `xml:",innerxml"`
}

// TypeName returns the declared name, which vk.xml puts either in the name
// attribute or in a nested <name> element.
func (t RegistryType) TypeName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.NameElem
}

type RegistryCommand struct {
	Name   string          `xml:"name,attr"`
	Alias  string          `xml:"alias,attr"`
	API    string          `xml:"api,attr"`
	Proto  RegistryParam   `xml:"proto"`
	Params []RegistryParam `xml:"param"`
}

type RegistryParam struct {
	API   string `xml:"api,attr"`
	Type  string `xml:"type"`
	Name  string `xml:"name"`
	Inner string `xml:",innerxml"`
}

type RegistryExtension struct {
	Name         string            `xml:"name,attr"`
	Number       int               `xml:"number,attr"`
	Type         string            `xml:"type,attr"`
	Supported    string            `xml:"supported,attr"`
	Platform     string            `xml:"platform,attr"`
	Depends      string            `xml:"depends,attr"`
	DeprecatedBy string            `xml:"deprecatedby,attr"`
	Requires     []RegistryRequire `xml:"require"`
}

type RegistryRequire struct {
	API      string         `xml:"api,attr"`
	Enums    []RegistryEnum `xml:"enum"`
	Commands []struct {
		Name string `xml:"name,attr"`
	} `xml:"command"`
}

type RegistryEnum struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ParseRegistry decodes a vk.xml document.
func ParseRegistry(r io.Reader) (*Registry, error) {
	var reg Registry
	if err := xml.NewDecoder(r).Decode(&reg); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrRegistry, err)
	}
	return &reg, nil
}

// CommandName returns the command symbol, from the name attribute for
// aliases and from <proto> otherwise.
func (c RegistryCommand) CommandName() string {
	if c.Alias != "" {
		return c.Name
	}
	return c.Proto.Name
}

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	arrayPattern = regexp.MustCompile(`\[([0-9]+)\]`)
)

// decl returns the C declaration text of the param with its markup removed.
func (p RegistryParam) decl() string {
	return strings.Join(strings.Fields(tagPattern.ReplaceAllString(p.Inner, "")), " ")
}

// Pointers counts the levels of indirection of the param.
func (p RegistryParam) Pointers() int {
	return strings.Count(p.decl(), "*")
}

// ArrayLen returns the fixed array length of the param, or 0.
func (p RegistryParam) ArrayLen() int {
	m := arrayPattern.FindStringSubmatch(p.Inner)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// Const reports whether the pointee is const qualified.
func (p RegistryParam) Const() bool {
	return strings.HasPrefix(p.decl(), "const ")
}

// specVersion and extensionName read the two enums every extension block
// declares.
func (e RegistryExtension) specVersion() (int, error) {
	for _, req := range e.Requires {
		for _, en := range req.Enums {
			if strings.HasSuffix(en.Name, "_SPEC_VERSION") {
				return strconv.Atoi(en.Value)
			}
		}
	}
	return 0, fmt.Errorf("%w: %s has no SPEC_VERSION enum", core.ErrRegistry, e.Name)
}

func (e RegistryExtension) extensionName() (string, error) {
	for _, req := range e.Requires {
		for _, en := range req.Enums {
			if strings.HasSuffix(en.Name, "_EXTENSION_NAME") {
				return strings.Trim(en.Value, `"`), nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s has no EXTENSION_NAME enum", core.ErrRegistry, e.Name)
}

func (e RegistryExtension) commands() []string {
	var names []string
	for _, req := range e.Requires {
		if !forVulkan(req.API) {
			continue
		}
		for _, c := range req.Commands {
			names = append(names, c.Name)
		}
	}
	return names
}

// forVulkan reports whether an api attribute includes the vulkan API. An
// absent attribute applies to every API.
func forVulkan(api string) bool {
	return api == "" || slices.Contains(strings.Split(api, ","), "vulkan")
}

// supportedByVulkan reports whether a supported attribute lists vulkan.
// Extensions marked disabled or vulkansc only are not generated.
func (e RegistryExtension) supportedByVulkan() bool {
	return slices.Contains(strings.Split(e.Supported, ","), "vulkan")
}
