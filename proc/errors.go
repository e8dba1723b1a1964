package proc

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/vkext/core"
)

// MissingCommandError is the panic value of a call through a command the
// driver did not provide.
type MissingCommandError struct {
	Command string
}

func (e *MissingCommandError) Error() string {
	return "unable to load " + e.Command
}

func (e *MissingCommandError) Unwrap() error {
	return core.ErrCommandNotLoaded
}

// MissingCommandsError lists the commands of one extension that did not
// resolve.
type MissingCommandsError struct {
	Extension string
	Commands  []string
}

func (e *MissingCommandsError) Error() string {
	return fmt.Sprintf("%s: %d command(s) not loaded: %s", e.Extension, len(e.Commands), strings.Join(e.Commands, ", "))
}

func (e *MissingCommandsError) Unwrap() error {
	return core.ErrMissingCommands
}

// Check returns a *MissingCommandsError naming every proc that did not
// resolve, in the order given, or nil when all of them did.
func Check(extension string, procs ...Proc) error {
	var missing []string
	for _, p := range procs {
		if !p.Loaded() {
			missing = append(missing, p.Name())
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingCommandsError{Extension: extension, Commands: missing}
}
