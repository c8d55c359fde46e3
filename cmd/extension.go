package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/subcommands"
)

// Environment passed to extensions, with the resolved configuration.
const (
	EnvDataDir  = "INV_DATA_DIR"
	EnvCurrency = "INV_CURRENCY"
	EnvLogLevel = "INV_LOG_LEVEL"
	EnvPlain    = "INV_PLAIN"
)

// IsCommand reports whether name is a subcommand of Register, or a builtin one.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return command(name) != nil
}

// command returns the subcommand called name, nil if there is none.
func command(name string) subcommands.Command {
	for _, g := range groups {
		for _, c := range g.commands {
			if c.Name() == name {
				return c
			}
		}
	}
	return nil
}

// RunExtension attempts to find and execute an external inv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension gets the configuration through the INV_* environment
// variables, global flags included, and can open the database with it.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "inv-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid configuration: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(),
		EnvDataDir+"="+cfg.DataDir,
		EnvCurrency+"="+cfg.Currency,
		EnvLogLevel+"="+cfg.Logging.Level,
		fmt.Sprintf("%s=%t", EnvPlain, *plain),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
