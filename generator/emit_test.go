package generator

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testModule = "example.com/loaders"

func emitTestModel(t *testing.T) map[string]string {
	t.Helper()
	files, err := Emit(buildTestModel(t), testModule)
	if err != nil {
		t.Fatalf("Emit() = %v", err)
	}
	out := map[string]string{}
	for _, f := range files {
		out[f.Path] = string(f.Content)
	}
	return out
}

// squeeze collapses runs of blanks so assertions do not depend on gofmt
// column alignment.
func squeeze(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.Join(lines, "\n")
}

func TestEmitFiles(t *testing.T) {
	files := emitTestModel(t)
	want := []string{
		"extensions/ext/doc.gen.go",
		"extensions/ext/test_state.gen.go",
		"extensions/ext/commands.gen.go",
		"extensions/khr/doc.gen.go",
		"extensions/khr/surface.gen.go",
		"extensions/khr/commands.gen.go",
		"extensions/nv/doc.gen.go",
		"extensions/nv/4bit_names.gen.go",
		"vk/types.gen.go",
		"extensions/catalog.gen.go",
	}
	if len(files) != len(want) {
		t.Errorf("emitted %d files, want %d", len(files), len(want))
	}
	fset := token.NewFileSet()
	for _, path := range want {
		src, ok := files[path]
		if !ok {
			t.Errorf("%s not emitted", path)
			continue
		}
		if !strings.HasPrefix(src, "// Code generated by vkgen. DO NOT EDIT.\n\n") {
			t.Errorf("%s lacks the generated header", path)
		}
		if _, err := parser.ParseFile(fset, path, src, parser.AllErrors); err != nil {
			t.Errorf("%s does not parse: %v", path, err)
		}
	}
}

func TestEmitExtension(t *testing.T) {
	src := squeeze(emitTestModel(t)["extensions/ext/test_state.gen.go"])
	for _, want := range []string{
		"package ext",
		`"example.com/loaders/proc"`,
		"// VK_EXT_test_state, registry extension 9 (device).\n// Depends on VK_KHR_surface.",
		`TestStateExtensionName = "VK_EXT_test_state\x00"`,
		"TestStateSpecVersion = 2",
		"type TestStateInstanceFn struct {\nGetDrmDisplayEXT PFNvkGetDrmDisplayEXT\n}",
		"type TestStateDeviceFn struct {\nCmdSetCullModeEXT PFNvkCmdSetCullModeEXT\nCmdSetFrontFaceEXT PFNvkCmdSetFrontFaceEXT\nCmdSetLineWidthEXT PFNvkCmdSetLineWidthEXT\nCmdSetExtentEXT PFNvkCmdSetExtentEXT\n}",
		`fn.CmdSetCullModeEXT = PFNvkCmdSetCullModeEXT{proc.Load(resolve, "vkCmdSetCullModeEXT\x00")}`,
		`return proc.Check("VK_EXT_test_state", fn.Procs()...)`,
		"type TestStateDevice struct {\nHandle vk.Device\nTestStateDeviceFn\n}",
		"func NewTestStateInstance(resolve proc.Resolver, instance vk.Instance) *TestStateInstance {",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("extension file lacks %q", want)
		}
	}

	nv := squeeze(emitTestModel(t)["extensions/nv/4bit_names.gen.go"])
	if strings.Contains(nv, "import") {
		t.Errorf("extension without commands imports packages:\n%s", nv)
	}
	if !strings.Contains(nv, "// Platform: xlib.") || !strings.Contains(nv, "Nv4bitNamesSpecVersion = 1") {
		t.Errorf("unexpected NV file:\n%s", nv)
	}
}

func TestEmitCommands(t *testing.T) {
	src := squeeze(emitTestModel(t)["extensions/ext/commands.gen.go"])
	for _, want := range []string{
		"import (\n\"unsafe\"\n\n\"example.com/loaders/proc\"\n\"example.com/loaders/vk\"\n)",
		"func (p PFNvkGetDrmDisplayEXT) Call(physicalDevice vk.PhysicalDevice, drmFd int32, pCount *uint32, pStages *vk.PipelineStageFlags2KHR, dpy unsafe.Pointer, faces *[2]vk.FrontFace, typ uint32) vk.Result {",
		"return vk.Result(proc.Call(p.Proc, uintptr(physicalDevice), uintptr(drmFd), uintptr(unsafe.Pointer(pCount)), uintptr(unsafe.Pointer(pStages)), uintptr(dpy), uintptr(unsafe.Pointer(faces)), uintptr(typ)))",
		"func (p PFNvkCmdSetCullModeEXT) Call(commandBuffer vk.CommandBuffer, cullMode vk.CullModeFlags) {\nproc.Call(p.Proc, uintptr(commandBuffer), uintptr(cullMode))\n}",
		"// PFNvkCmdSetLineWidthEXT holds the address of vkCmdSetLineWidthEXT. It has no Call method: the command takes floating-point arguments.",
		"// PFNvkCmdSetExtentEXT holds the address of vkCmdSetExtentEXT. It has no Call method: the command takes structures by value.",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("commands file lacks %q", want)
		}
	}
	for _, absent := range []string{"PFNvkCmdSetLineWidthEXT) Call", "PFNvkCmdSetExtentEXT) Call"} {
		if strings.Contains(src, absent) {
			t.Errorf("commands file has %q", absent)
		}
	}
	if i, j := strings.Index(src, "type PFNvkCmdSetCullModeEXT"), strings.Index(src, "type PFNvkGetDrmDisplayEXT"); i < 0 || j < i {
		t.Errorf("PFN types are not sorted by name")
	}
}

func TestEmitTypes(t *testing.T) {
	src := squeeze(emitTestModel(t)["vk/types.gen.go"])
	for _, want := range []string{
		"// Enumerations.\ntype (\nFrontFace int32\n)",
		"// Bitmasks.\ntype (\nCullModeFlags uint32\nPipelineStageFlags2 uint64\n)",
		"// Non-dispatchable handles.\ntype (\nSurfaceKHR uint64\n)",
		"// Aliases.\ntype (\nPipelineStageFlags2KHR = PipelineStageFlags2\n)",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("types file lacks %q:\n%s", want, src)
		}
	}
	if strings.Contains(src, "Result") || strings.Contains(src, "Base types") {
		t.Errorf("types file declares hand-written or unused types:\n%s", src)
	}
}

func TestEmitCatalog(t *testing.T) {
	src := squeeze(emitTestModel(t)["extensions/catalog.gen.go"])
	for _, want := range []string{
		`"example.com/loaders/extensions/ext"`,
		"Name: khr.SurfaceExtensionName,",
		"Kind: Device,\nDepends: \"VK_KHR_surface\",",
		`DeviceCommands: []string{"vkCmdSetCullModeEXT", "vkCmdSetFrontFaceEXT", "vkCmdSetLineWidthEXT", "vkCmdSetExtentEXT"},`,
		"LoadDevice: loader(ext.LoadTestStateDeviceFn),",
		"Platform: \"xlib\",",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("catalog lacks %q", want)
		}
	}
	if strings.Index(src, "khr.SurfaceExtensionName") > strings.Index(src, "ext.TestStateExtensionName") {
		t.Errorf("catalog is not in registry order")
	}
}

func TestEmitIsDeterministic(t *testing.T) {
	a, b := emitTestModel(t), emitTestModel(t)
	for path, src := range a {
		if b[path] != src {
			t.Errorf("%s differs between runs", path)
		}
	}
}

func TestWriteRemovesStaleFiles(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "extensions", "ext")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range map[string]string{"gone.gen.go": "package ext\n", "keep_test.go": "package ext\n"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files := []File{{Path: "extensions/ext/doc.gen.go", Content: []byte("package ext\n")}}
	if err := Write(root, files); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "gone.gen.go")); !os.IsNotExist(err) {
		t.Errorf("stale generated file survived: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "keep_test.go")); err != nil {
		t.Errorf("hand-written file removed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "doc.gen.go")); err != nil {
		t.Errorf("doc.gen.go not written: %v", err)
	}
}

func TestWriteRemovesDroppedVendors(t *testing.T) {
	root := t.TempDir()
	dropped := filepath.Join(root, "extensions", "ggp")
	mixed := filepath.Join(root, "extensions", "nvx")
	for _, dir := range []string{dropped, mixed} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "doc.gen.go"), []byte("package x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(mixed, "extra_test.go"), []byte("package nvx\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	files := []File{
		{Path: "extensions/ext/doc.gen.go", Content: []byte("package ext\n")},
		{Path: "extensions/catalog.gen.go", Content: []byte("package extensions\n")},
	}
	if err := Write(root, files); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	if _, err := os.Stat(dropped); !os.IsNotExist(err) {
		t.Errorf("dropped vendor package survived: %v", err)
	}
	if _, err := os.Stat(filepath.Join(mixed, "doc.gen.go")); !os.IsNotExist(err) {
		t.Errorf("generated file of a dropped vendor survived: %v", err)
	}
	if _, err := os.Stat(filepath.Join(mixed, "extra_test.go")); err != nil {
		t.Errorf("hand-written file removed: %v", err)
	}
	for _, path := range []string{"extensions/ext/doc.gen.go", "extensions/catalog.gen.go"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(path))); err != nil {
			t.Errorf("%s not written: %v", path, err)
		}
	}
}
