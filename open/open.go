// Package open reveals files and folders with the platform's default handler.
package open

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/chapsplit-cli/chapsplit/constant"
)

// Start opens the input with the system default application without waiting
// for it to close.
func Start(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported platform %q", runtime.GOOS)
	}

	return cmd.Start()
}

// command builds the platform-specific opener invocation.
func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Windows:
		return exec.Command("cmd", "/C", "start", "", input), true
	case constant.Linux, constant.Android:
		return exec.Command("xdg-open", input), true
	default:
		return nil, false
	}
}
