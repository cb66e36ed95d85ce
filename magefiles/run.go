//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the test suite.
func (Run) Tests() error {
	fmt.Println("Run tests...")
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs anima-tools with the arguments in $ANIMA_TOOLS_ARGS, e.g.
// ANIMA_TOOLS_ARGS="rip --scene Assets/Scenes/street.scene.toml" mage run:tools
func (Run) Tools() error {
	args := append([]string{"run", "."}, strings.Fields(os.Getenv("ANIMA_TOOLS_ARGS"))...)
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}
