// Package framework renders results in the output formats apklinker supports.
package framework

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format is an output format of a ResultSet.
type Format int32

const (
	FormatDefault Format = iota + 1
	FormatPlain
	FormatJSON
	FormatTable
)

var name2Format = map[string]Format{
	"default": FormatDefault,
	"plain":   FormatPlain,
	"line":    FormatPlain,
	"json":    FormatJSON,
	"table":   FormatTable,
}

// ResultSet is the interface for printable results.
type ResultSet interface {
	PrintAs(Format) string
	Entities() any
}

// NameFormat maps a format name to a Format. Unknown or empty names give
// FormatDefault.
func NameFormat(name string) Format {
	f, ok := name2Format[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FormatDefault
	}
	return f
}

// Fprint writes rs in format to w, terminated by a newline.
func Fprint(w io.Writer, rs ResultSet, format Format) error {
	if format < FormatDefault {
		format = FormatDefault
	}
	out := rs.PrintAs(format)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := fmt.Fprint(w, out)
	return err
}

// MarshalJSON returns the indented JSON of v, or the marshal error text.
func MarshalJSON(v any) string {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(bs)
}
