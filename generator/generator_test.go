package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeProject lays out a registry and a config pointing at it under a
// temporary directory, and returns the config path and the output root.
func writeProject(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	registry := filepath.Join(dir, "vk.xml")
	if err := os.WriteFile(registry, []byte(testRegistry), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")
	config := filepath.Join(dir, "vkext.toml")
	toml := fmt.Sprintf("[log]\nlevel = \"warn\"\n\n[generator]\nregistry = %q\noutput = %q\nmodule = %q\n", registry, out, testModule)
	if err := os.WriteFile(config, []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	return config, out
}

func TestGenerate(t *testing.T) {
	config, out := writeProject(t)
	g, err := New(config)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if g.Config().Generator.Module != testModule {
		t.Errorf("Module = %q, want %q", g.Config().Generator.Module, testModule)
	}
	if err := g.Generate(); err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	for _, path := range []string{"extensions/ext/test_state.gen.go", "extensions/catalog.gen.go", "vk/types.gen.go"} {
		if _, err := os.Stat(filepath.Join(out, path)); err != nil {
			t.Errorf("%s not written: %v", path, err)
		}
	}
}

func TestGenerateMissingRegistry(t *testing.T) {
	config, _ := writeProject(t)
	g, err := New(config)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if err := os.Remove(g.Config().Generator.Registry); err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(); err == nil {
		t.Errorf("Generate() without a registry returned no error")
	}
}

func TestWatchRegenerates(t *testing.T) {
	config, out := writeProject(t)
	g, err := New(config)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Watch(ctx) }()

	catalog := filepath.Join(out, "extensions", "catalog.gen.go")
	waitFor(t, func() bool {
		_, err := os.Stat(catalog)
		return err == nil
	})

	if err := os.Remove(catalog); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(g.Config().Generator.Registry, []byte(testRegistry), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool {
		_, err := os.Stat(catalog)
		return err == nil
	})

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch() = %v", err)
	}
}

func TestWatchFollowsMovedRegistry(t *testing.T) {
	config, out := writeProject(t)
	g, err := New(config)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	moved := filepath.Join(t.TempDir(), "registry", "vk.xml")
	if err := os.MkdirAll(filepath.Dir(moved), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(moved, []byte(testRegistry), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Watch(ctx) }()

	catalog := filepath.Join(out, "extensions", "catalog.gen.go")
	exists := func() bool {
		_, err := os.Stat(catalog)
		return err == nil
	}
	waitFor(t, exists)

	if err := os.Remove(catalog); err != nil {
		t.Fatal(err)
	}
	toml := fmt.Sprintf("[log]\nlevel = \"warn\"\n\n[generator]\nregistry = %q\noutput = %q\nmodule = %q\n", moved, out, testModule)
	if err := os.WriteFile(config, []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, exists)

	// Only the directory of the new registry reports this write.
	if err := os.Remove(catalog); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(moved, []byte(testRegistry), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, exists)

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch() = %v", err)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within 10s")
		}
		time.Sleep(20 * time.Millisecond)
	}
}
