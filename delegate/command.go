// Package delegate builds and runs the real linker invocation.
package delegate

import (
	"github.com/cargo-apk/apklinker/classify"
)

// GlueLibraries are linked in for the injected native app glue.
var GlueLibraries = []string{"log", "android"}

// Command is one real linker invocation.
type Command struct {
	Path string
	Args []string
}

// NewCommand returns the real linker invocation for a classification:
// the passthrough tokens, then the glue object and its libraries, the
// sysroot, the output path and the shared library flags.
func NewCommand(res *classify.Result) Command {
	ctl := res.Controls
	args := make([]string, 0, len(res.Passthrough)+10)
	args = append(args, res.Passthrough...)
	args = append(args, ctl.NativeAppGlue)
	for _, lib := range GlueLibraries {
		args = append(args, "-l"+lib)
	}
	args = append(args,
		"--sysroot", ctl.Sysroot,
		"-o", ctl.LinkerOutput,
		"-shared",
		"-Wl,-E",
	)
	return Command{
		Path: ctl.GCC,
		Args: args,
	}
}
