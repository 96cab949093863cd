package common

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	cfgErr := NewConfigurationError("missing %s option", "--cargo-apk-gcc")
	assert.True(t, errors.Is(cfgErr, ErrConfiguration))
	assert.False(t, errors.Is(cfgErr, ErrDelegate))
	assert.Equal(t, "missing --cargo-apk-gcc option", cfgErr.Error())

	delegateErr := NewDelegateError(errors.New("exit status 3"), "linker failed")
	assert.True(t, errors.Is(delegateErr, ErrDelegate))
	assert.Contains(t, delegateErr.Error(), "exit status 3")

	testCases := []struct {
		err      error
		expected int
	}{
		{nil, ExitOK},
		{cfgErr, ExitConfiguration},
		{errors.Wrap(cfgErr, "classify"), ExitConfiguration},
		{delegateErr, ExitFailure},
		{errors.New("something else"), ExitFailure},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ExitCode(tc.err))
	}
}

func TestVersion(t *testing.T) {
	assert.EqualValues(t, 0, Version.Major)
	assert.NotEmpty(t, Version.String())
}
