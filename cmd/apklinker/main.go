package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cargo-apk/apklinker/classify"
	"github.com/cargo-apk/apklinker/common"
	"github.com/cargo-apk/apklinker/configs"
	"github.com/cargo-apk/apklinker/linkshim"
	"github.com/cargo-apk/apklinker/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()

	if err != nil {
		printFatal(os.Stderr, err)
	}
	log.Sync()
	os.Exit(common.ExitCode(err))
}

// run is everything main does short of exiting.
func run(ctx context.Context, args []string, opts ...linkshim.Option) error {
	config, err := configs.NewConfig()
	if err != nil {
		return err
	}
	if err := log.Init(config.LogFormat, config.LogLevel); err != nil {
		return errors.Mark(err, common.ErrConfiguration)
	}
	log.Debug("apklinker starting",
		zap.String("version", common.Version.String()),
		zap.String("config", config.ConfigPath),
		zap.Bool("dryRun", config.DryRun))

	root := newRootCmd(config, opts...)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(config *configs.Config, opts ...linkshim.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "apklinker [linker arguments]",
		Short: "Linker stand-in recording library dependencies before linking an android shared library",
		// every argument belongs to the linker
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,
		Version:            common.Version.String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := append([]string{cmd.Name()}, args...)
			return linkshim.Run(cmd.Context(), argv, config, opts...)
		},
	}
}

func printFatal(w io.Writer, err error) {
	fatal := color.New(color.FgRed, color.Bold).Sprint("fatal")
	fmt.Fprintf(w, "apklinker: %s: %v\n", fatal, err)
	if errors.Is(err, common.ErrConfiguration) {
		fmt.Fprint(w, classify.Usage())
	}
}
