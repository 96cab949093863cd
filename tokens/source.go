// Package tokens presents the command line as one flat stream of tokens,
// substituting the lines of `@file` argument files in place of the
// reference that names them.
package tokens

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cargo-apk/apklinker/log"
)

// ArgFileMarker prefixes a token naming an argument file.
const ArgFileMarker = "@"

// DefaultMaxDepth bounds argument file nesting when recursive expansion is on.
const DefaultMaxDepth = 32

// Option setup function for Source.
type Option func(*sourceOption)

type sourceOption struct {
	logger    *zap.Logger
	recursive bool
	maxDepth  int
}

// WithLogger returns Option to setup the logger argument file problems are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(opt *sourceOption) {
		opt.logger = logger
	}
}

// WithRecursive controls whether `@` lines inside argument files are expanded too.
func WithRecursive(recursive bool) Option {
	return func(opt *sourceOption) {
		opt.recursive = recursive
	}
}

// WithMaxDepth sets how many argument files may be open at once in recursive mode.
func WithMaxDepth(depth int) Option {
	return func(opt *sourceOption) {
		opt.maxDepth = depth
	}
}

// Source is a lazily produced token stream over the process arguments.
// Exactly one origin is active at a time: the top of the stack.
type Source struct {
	origins []origin
	opt     sourceOption
	ended   bool
}

// NewSource creates a Source over argv. argv[0], the invocation name, is
// never returned.
func NewSource(argv []string, opts ...Option) *Source {
	opt := sourceOption{
		maxDepth: DefaultMaxDepth,
	}
	for _, o := range opts {
		o(&opt)
	}
	if opt.logger == nil {
		opt.logger = log.L()
	}
	if opt.maxDepth < 1 {
		opt.maxDepth = 1
	}

	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	return &Source{
		origins: []origin{&argsOrigin{args: args}},
		opt:     opt,
	}
}

// Next returns the next token. It returns false once the stream is over,
// and keeps doing so on every later call.
func (s *Source) Next() (string, bool) {
	for !s.ended {
		if len(s.origins) == 0 {
			s.ended = true
			break
		}
		top := s.origins[len(s.origins)-1]
		token, ok := top.next()
		if !ok {
			s.pop()
			continue
		}
		if !strings.HasPrefix(token, ArgFileMarker) || !top.expands(s.opt.recursive) {
			return token, true
		}
		s.push(strings.TrimPrefix(token, ArgFileMarker))
	}
	return "", false
}

// Close releases every argument file still open. The stream is over afterwards.
func (s *Source) Close() error {
	var firstErr error
	for len(s.origins) > 0 {
		if err := s.pop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.ended = true
	return firstErr
}

// Depth returns the number of argument files currently open.
func (s *Source) Depth() int {
	if len(s.origins) == 0 {
		return 0
	}
	return len(s.origins) - 1
}

func (s *Source) push(path string) {
	if s.Depth() >= s.opt.maxDepth {
		s.opt.logger.Warn("argument file nesting too deep, reference dropped",
			zap.String("path", path),
			zap.Int("maxDepth", s.opt.maxDepth))
		return
	}
	o, err := openFileOrigin(path, s.opt.logger)
	if err != nil {
		s.opt.logger.Warn("error on argument file open, reference dropped",
			zap.String("path", path),
			zap.Error(err))
		return
	}
	s.origins = append(s.origins, o)
}

func (s *Source) pop() error {
	top := s.origins[len(s.origins)-1]
	s.origins = s.origins[:len(s.origins)-1]
	err := top.close()
	if err != nil {
		s.opt.logger.Warn("failed to close argument file", zap.Error(err))
	}
	return err
}
