package linkshim

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/cargo-apk/apklinker/classify"
	"github.com/cargo-apk/apklinker/delegate"
	"github.com/cargo-apk/apklinker/framework"
)

// Report is the dry-run view of a classification.
type Report struct {
	Result  *classify.Result
	Command delegate.Command
}

type reportJSON struct {
	Controls        classify.Controls `json:"controls"`
	LibraryPath     []string          `json:"libraryPath"`
	SharedLibraries []string          `json:"sharedLibraries"`
	Passthrough     []string          `json:"passthrough"`
	Linker          string            `json:"linker"`
	LinkerArgs      []string          `json:"linkerArgs"`
}

func (r *Report) Entities() any {
	return r.Result
}

func (r *Report) PrintAs(format framework.Format) string {
	switch format {
	case framework.FormatJSON:
		return framework.MarshalJSON(reportJSON{
			Controls:        r.Result.Controls,
			LibraryPath:     r.Result.LibraryPath,
			SharedLibraries: r.Result.Libraries(),
			Passthrough:     r.Result.Passthrough,
			Linker:          r.Command.Path,
			LinkerArgs:      r.Command.Args,
		})
	case framework.FormatPlain:
		sb := &strings.Builder{}
		for _, o := range classify.Options() {
			fmt.Fprintf(sb, "%s: %s\n", o.String(), r.Result.Controls.Get(o))
		}
		for _, p := range r.Result.LibraryPath {
			fmt.Fprintf(sb, "library-path: %s\n", p)
		}
		for _, lib := range r.Result.Libraries() {
			fmt.Fprintf(sb, "library: %s\n", lib)
		}
		fmt.Fprintf(sb, "linker: %s %s\n", r.Command.Path, strings.Join(r.Command.Args, " "))
		return sb.String()
	default:
		return r.printTables()
	}
}

func (r *Report) printTables() string {
	sb := &strings.Builder{}

	t := table.NewWriter()
	t.SetTitle("Control Options")
	t.AppendHeader(table.Row{"Option", "Value"})
	for _, o := range classify.Options() {
		t.AppendRow(table.Row{o.Flag(), r.Result.Controls.Get(o)})
	}
	sb.WriteString(t.Render())
	sb.WriteString("\n")

	t = table.NewWriter()
	t.SetTitle("Libraries")
	t.AppendHeader(table.Row{"#", "Search Path"})
	for i, p := range r.Result.LibraryPath {
		t.AppendRow(table.Row{i, p})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"", strings.Join(r.Result.Libraries(), ", ")})
	sb.WriteString(t.Render())
	sb.WriteString("\n")

	t = table.NewWriter()
	t.SetTitle("Linker Invocation")
	t.AppendHeader(table.Row{"#", "Argument", "Origin"})
	forwarded := len(r.Result.Passthrough)
	t.AppendRows(lo.Map(r.Command.Args, func(arg string, i int) table.Row {
		origin := "passthrough"
		if i >= forwarded {
			origin = "apklinker"
		}
		return table.Row{i, arg, origin}
	}))
	t.SetCaption("%s", r.Command.Path)
	sb.WriteString(t.Render())
	return sb.String()
}
