package classify

import "strings"

// Kind is the closed set of token categories the classifier dispatches on.
type Kind int

const (
	// KindPassthrough is forwarded to the real linker unchanged.
	KindPassthrough Kind = iota
	// KindControl is one of the apklinker options, followed by its value.
	KindControl
	// KindOutput is `-o`, dropped together with its value.
	KindOutput
	// KindLibraryPath is `-L` followed by a search path.
	KindLibraryPath
	// KindLibrary is `-l` followed by a library name.
	KindLibrary
	// KindInlineLibrary is `-l<name>`.
	KindInlineLibrary
)

var kindNames = map[Kind]string{
	KindPassthrough:   "passthrough",
	KindControl:       "control",
	KindOutput:        "output",
	KindLibraryPath:   "library-path",
	KindLibrary:       "library",
	KindInlineLibrary: "inline-library",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Option identifies one of the control options consumed by apklinker itself.
type Option int

const (
	OptionGCC Option = iota
	OptionSysroot
	OptionNativeAppGlue
	OptionLinkerOutput
	OptionLibsPathOutput
	OptionLibsOutput

	optionCount
)

type optionSpec struct {
	flag string
	desc string
}

var optionSpecs = [optionCount]optionSpec{
	OptionGCC:            {"--cargo-apk-gcc", "path of the real linker to invoke"},
	OptionSysroot:        {"--cargo-apk-gcc-sysroot", "sysroot passed to the real linker"},
	OptionNativeAppGlue:  {"--cargo-apk-native-app-glue", "object file injected into the link"},
	OptionLinkerOutput:   {"--cargo-apk-linker-output", "output path of the shared library"},
	OptionLibsPathOutput: {"--cargo-apk-libs-path-output", "file receiving the library search paths"},
	OptionLibsOutput:     {"--cargo-apk-libs-output", "file receiving the linked library names"},
}

// Options returns every control option in declaration order.
func Options() []Option {
	opts := make([]Option, 0, optionCount)
	for o := Option(0); o < optionCount; o++ {
		opts = append(opts, o)
	}
	return opts
}

// Flag returns the command line spelling of the option.
func (o Option) Flag() string {
	if o < 0 || o >= optionCount {
		return ""
	}
	return optionSpecs[o].flag
}

func (o Option) String() string {
	return strings.TrimPrefix(o.Flag(), "--")
}

var exactTokens = func() map[string]entry {
	m := map[string]entry{
		"-o": {kind: KindOutput},
		"-L": {kind: KindLibraryPath},
		"-l": {kind: KindLibrary},
	}
	for _, o := range Options() {
		m[o.Flag()] = entry{kind: KindControl, option: o}
	}
	return m
}()

type entry struct {
	kind   Kind
	option Option
}

const inlineLibraryPrefix = "-l"

// Lookup returns the category of token. The option is meaningful only for
// KindControl.
func Lookup(token string) (Kind, Option) {
	if e, ok := exactTokens[token]; ok {
		return e.kind, e.option
	}
	if len(token) > len(inlineLibraryPrefix) && strings.HasPrefix(token, inlineLibraryPrefix) {
		return KindInlineLibrary, 0
	}
	return KindPassthrough, 0
}

// NormalizeLibrary returns the shared object file name of library name.
func NormalizeLibrary(name string) string {
	return "lib" + name + ".so"
}
