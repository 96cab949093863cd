package common

import "github.com/cockroachdb/errors"

// ErrConfiguration marks errors caused by the arguments apklinker was invoked
// with: a missing control option or a flag missing its value.
var ErrConfiguration = errors.New("configuration error")

// ErrDelegate marks failures of the real linker invocation.
var ErrDelegate = errors.New("error while executing linker")

// NewConfigurationError returns an error marked with ErrConfiguration.
func NewConfigurationError(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConfiguration)
}

// NewDelegateError wraps cause and marks it with ErrDelegate.
func NewDelegateError(cause error, msg string) error {
	return errors.Mark(errors.Wrap(cause, msg), ErrDelegate)
}
