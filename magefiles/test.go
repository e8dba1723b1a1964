//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of every package.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Checks that the checked-in loaders match what the generator produces now.
func (Test) Generated() error {
	mg.Deps(Generate.All)
	_, err := executeCmd("git", withArgs("diff", "--exit-code", "--", "extensions", "vk"), withStream())
	return err
}
