//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Generate mg.Namespace

// Regenerates the extension loaders from registry/vk.xml.
func (Generate) All() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/vkgen", "-config", configPath), withStream())
	return err
}

// Regenerates the loaders whenever the registry or the configuration changes.
func (Generate) Watch() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/vkgen", "-config", configPath, "-watch"), withStream())
	return err
}
