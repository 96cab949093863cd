package delegate

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/cargo-apk/apklinker/common"
	"github.com/cargo-apk/apklinker/log"
)

// Runner executes a Command.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands as child processes with inherited output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner writing to the process stdout and stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts cmd and waits for it. Any failure, including a non-zero exit
// status, is marked with common.ErrDelegate.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	log.Debug("executing real linker", zap.String("path", cmd.Path), zap.Strings("args", cmd.Args))

	// #nosec the linker path is supplied by the build driver
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debug("real linker exited with failure", zap.Int("exitCode", exitErr.ExitCode()))
		}
		return common.NewDelegateError(err, "error while executing "+cmd.Path)
	}
	return nil
}
