package tokens

import (
	"bufio"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// origin is one place tokens are read from.
type origin interface {
	// next returns the next raw token, false when the origin is exhausted.
	next() (string, bool)
	// expands reports whether `@` references produced by this origin
	// shall be expanded.
	expands(recursive bool) bool
	close() error
}

// argsOrigin serves tokens from the process argument vector.
type argsOrigin struct {
	args []string
	pos  int
}

func (o *argsOrigin) next() (string, bool) {
	if o.pos >= len(o.args) {
		return "", false
	}
	arg := o.args[o.pos]
	o.pos++
	return arg, true
}

func (o *argsOrigin) expands(bool) bool { return true }

func (o *argsOrigin) close() error { return nil }

// fileOrigin serves one token per line of an argument file.
type fileOrigin struct {
	path   string
	f      *os.File
	r      *bufio.Reader
	logger *zap.Logger
	done   bool
}

func openFileOrigin(path string, logger *zap.Logger) (*fileOrigin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &fileOrigin{
		path:   path,
		f:      f,
		r:      bufio.NewReader(f),
		logger: logger,
	}, nil
}

func (o *fileOrigin) next() (string, bool) {
	if o.done {
		return "", false
	}
	line, err := o.r.ReadString('\n')
	switch {
	case err == io.EOF:
		o.done = true
		// last line without terminator
		if line == "" {
			return "", false
		}
	case err != nil:
		o.logger.Warn("error on argument file read, skipping the rest of it",
			zap.String("path", o.path),
			zap.Error(err))
		o.done = true
		return "", false
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}

func (o *fileOrigin) expands(recursive bool) bool { return recursive }

func (o *fileOrigin) close() error {
	if o.f == nil {
		return nil
	}
	err := o.f.Close()
	o.f = nil
	return err
}
