// Package classify splits a linker argument stream into the values apklinker
// consumes, the library search paths and names it records, and the tokens
// forwarded to the real linker.
package classify

import (
	"strings"

	"github.com/samber/lo"

	"github.com/cargo-apk/apklinker/common"
)

// TokenSource yields tokens until it returns false.
type TokenSource interface {
	Next() (string, bool)
}

type classifier struct {
	src    TokenSource
	result *Result
	seen   [optionCount]bool
}

type handler func(c *classifier, token string, option Option) error

var handlers = map[Kind]handler{
	KindPassthrough:   (*classifier).passthrough,
	KindControl:       (*classifier).control,
	KindOutput:        (*classifier).output,
	KindLibraryPath:   (*classifier).libraryPath,
	KindLibrary:       (*classifier).library,
	KindInlineLibrary: (*classifier).inlineLibrary,
}

// Classify consumes src until it ends and returns the classification.
// A flag missing its value fails immediately; missing control options are
// reported once the whole stream has been read.
func Classify(src TokenSource) (*Result, error) {
	c := &classifier{
		src:    src,
		result: newResult(),
	}
	for {
		token, ok := src.Next()
		if !ok {
			break
		}
		kind, option := Lookup(token)
		if err := handlers[kind](c, token, option); err != nil {
			return nil, err
		}
	}

	if err := c.checkControls(); err != nil {
		return nil, err
	}
	return c.result, nil
}

func (c *classifier) value(token, what string) (string, error) {
	v, ok := c.src.Next()
	if !ok {
		return "", common.NewConfigurationError("%s must be followed by %s", token, what)
	}
	return v, nil
}

func (c *classifier) passthrough(token string, _ Option) error {
	c.result.Passthrough = append(c.result.Passthrough, token)
	return nil
}

func (c *classifier) control(token string, option Option) error {
	v, err := c.value(token, "a value")
	if err != nil {
		return err
	}
	*c.result.Controls.field(option) = v
	c.seen[option] = true
	return nil
}

func (c *classifier) output(_ string, _ Option) error {
	// the output path comes from --cargo-apk-linker-output
	c.src.Next()
	return nil
}

func (c *classifier) libraryPath(token string, _ Option) error {
	path, err := c.value(token, "a path")
	if err != nil {
		return err
	}
	c.result.LibraryPath = append(c.result.LibraryPath, path)
	c.result.Passthrough = append(c.result.Passthrough, token, path)
	return nil
}

func (c *classifier) library(token string, _ Option) error {
	name, err := c.value(token, "a library name")
	if err != nil {
		return err
	}
	c.result.SharedLibraries[NormalizeLibrary(name)] = struct{}{}
	c.result.Passthrough = append(c.result.Passthrough, token, name)
	return nil
}

func (c *classifier) inlineLibrary(token string, _ Option) error {
	c.result.SharedLibraries[NormalizeLibrary(strings.TrimPrefix(token, inlineLibraryPrefix))] = struct{}{}
	c.result.Passthrough = append(c.result.Passthrough, token)
	return nil
}

func (c *classifier) checkControls() error {
	missing := lo.Filter(Options(), func(o Option, _ int) bool {
		return !c.seen[o]
	})
	if len(missing) == 0 {
		return nil
	}
	flags := lo.Map(missing, func(o Option, _ int) string { return o.Flag() })
	return common.NewConfigurationError("missing %s option in linker", strings.Join(flags, ", "))
}
