package classify

import (
	"sort"

	"github.com/samber/lo"
)

// Controls holds the values of the apklinker control options.
type Controls struct {
	GCC            string `json:"gcc"`
	Sysroot        string `json:"sysroot"`
	NativeAppGlue  string `json:"nativeAppGlue"`
	LinkerOutput   string `json:"linkerOutput"`
	LibsPathOutput string `json:"libsPathOutput"`
	LibsOutput     string `json:"libsOutput"`
}

func (c *Controls) field(o Option) *string {
	switch o {
	case OptionGCC:
		return &c.GCC
	case OptionSysroot:
		return &c.Sysroot
	case OptionNativeAppGlue:
		return &c.NativeAppGlue
	case OptionLinkerOutput:
		return &c.LinkerOutput
	case OptionLibsPathOutput:
		return &c.LibsPathOutput
	case OptionLibsOutput:
		return &c.LibsOutput
	}
	return nil
}

// Get returns the value of option o.
func (c Controls) Get(o Option) string {
	if f := c.field(o); f != nil {
		return *f
	}
	return ""
}

// Result is the outcome of classifying one argument stream.
type Result struct {
	// LibraryPath lists `-L` values in order, duplicates included.
	LibraryPath []string
	// SharedLibraries is the set of `lib<name>.so` for every `-l` seen.
	SharedLibraries map[string]struct{}
	Controls        Controls
	// Passthrough is forwarded verbatim to the real linker.
	Passthrough []string
}

func newResult() *Result {
	return &Result{
		LibraryPath:     []string{},
		SharedLibraries: make(map[string]struct{}),
		Passthrough:     []string{},
	}
}

// Libraries returns SharedLibraries sorted.
func (r *Result) Libraries() []string {
	libs := lo.Keys(r.SharedLibraries)
	sort.Strings(libs)
	return libs
}
