package colorscheme

import (
	"context"
	"os/exec"
	"time"
)

// commandTimeout bounds desktop tool invocations so a hung tool never delays startup.
const commandTimeout = 2 * time.Second

// commandRunner runs an external command and returns its stdout.
type commandRunner func(name string, args ...string) ([]byte, error)

// lookPath reports whether a command exists on PATH.
type lookPath func(name string) (string, error)

func runCommand(name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return exec.CommandContext(ctx, name, args...).Output()
}
