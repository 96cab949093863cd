// Package linkshim runs one linker interception: it classifies the argument
// vector, writes the side files and hands the adjusted arguments to the real
// linker.
package linkshim

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/cargo-apk/apklinker/classify"
	"github.com/cargo-apk/apklinker/configs"
	"github.com/cargo-apk/apklinker/delegate"
	"github.com/cargo-apk/apklinker/framework"
	"github.com/cargo-apk/apklinker/log"
	"github.com/cargo-apk/apklinker/sidefile"
	"github.com/cargo-apk/apklinker/tokens"
)

// Option run setup option function.
type Option func(*runOption)

type runOption struct {
	runner delegate.Runner
	out    io.Writer
	logger *zap.Logger
}

// WithRunner returns Option to replace the real linker runner.
func WithRunner(runner delegate.Runner) Option {
	return func(opt *runOption) {
		opt.runner = runner
	}
}

// WithOutput returns Option to setup where the dry-run report is printed.
func WithOutput(w io.Writer) Option {
	return func(opt *runOption) {
		opt.out = w
	}
}

// WithLogger returns Option to setup the run logger.
func WithLogger(logger *zap.Logger) Option {
	return func(opt *runOption) {
		opt.logger = logger
	}
}

// Run processes argv, argv[0] being the invocation name.
func Run(ctx context.Context, argv []string, config *configs.Config, opts ...Option) error {
	opt := &runOption{}
	for _, o := range opts {
		o(opt)
	}
	if opt.runner == nil {
		opt.runner = delegate.NewExecRunner()
	}
	if opt.out == nil {
		opt.out = os.Stdout
	}
	if opt.logger == nil {
		opt.logger = log.L()
	}

	src := tokens.NewSource(argv,
		tokens.WithLogger(opt.logger),
		tokens.WithRecursive(config.RecursiveArgFiles),
		tokens.WithMaxDepth(config.MaxArgFileDepth),
	)
	defer src.Close()

	res, err := classify.Classify(src)
	if err != nil {
		return err
	}
	opt.logger.Debug("arguments classified",
		zap.Strings("libraryPath", res.LibraryPath),
		zap.Strings("sharedLibraries", res.Libraries()),
		zap.Int("passthrough", len(res.Passthrough)))

	cmd := delegate.NewCommand(res)
	if config.DryRun {
		return framework.Fprint(opt.out, &Report{Result: res, Command: cmd}, config.ReportFormat())
	}

	if err := WriteSideFiles(res); err != nil {
		return err
	}
	return opt.runner.Run(ctx, cmd)
}

// WriteSideFiles writes the recorded library search paths and library names
// to the files named by the control options.
func WriteSideFiles(res *classify.Result) error {
	if err := sidefile.WriteLines(res.Controls.LibsPathOutput, res.LibraryPath); err != nil {
		return errors.Wrap(err, "failed to write library path list")
	}
	if err := sidefile.WriteLines(res.Controls.LibsOutput, res.Libraries()); err != nil {
		return errors.Wrap(err, "failed to write library list")
	}
	return nil
}
