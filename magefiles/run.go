//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Probes the installed Vulkan driver and prints the extension report.
func (Run) Probe() error {
	fmt.Println("Run probe...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", configPath), withStream()); err != nil {
		return err
	}
	return nil
}
