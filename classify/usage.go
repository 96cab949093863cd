package classify

import (
	"strings"

	"github.com/spf13/pflag"
)

// FlagSet describes the control options as a pflag set. It is used to render
// help text only; the classifier never parses through it.
func FlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("apklinker", pflag.ContinueOnError)
	for _, o := range Options() {
		fs.String(o.String(), "", optionSpecs[o].desc)
	}
	return fs
}

// Usage returns the help text listing every required control option.
func Usage() string {
	sb := &strings.Builder{}
	sb.WriteString("Required apklinker options:\n")
	sb.WriteString(FlagSet().FlagUsages())
	return sb.String()
}
