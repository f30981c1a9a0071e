// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, code matching and details

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "pattern_error",
			code:    errors.ErrPatternInvalid,
			message: "bad pattern",
			wantStr: "[PATTERN_INVALID] bad pattern",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrFileWrite, "cannot write %s with mode %o", "file.txt", 0644)
	assert.Equal(t, "cannot write file.txt with mode 644", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrDirRemove, "cannot remove").
		WithDetail("path", "/tmp/x").
		WithDetails(map[string]interface{}{"count": 3})

	assert.Equal(t, "/tmp/x", err.Details["path"])
	assert.Equal(t, 3, err.Details["count"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	sentinel := errors.New(errors.ErrPatternInvalid, "invalid pattern")
	other := errors.New(errors.ErrPatternInvalid, "another message")
	different := errors.New(errors.ErrCycle, "cycle")

	assert.True(t, stderrors.Is(other, sentinel), "same code should match")
	assert.False(t, stderrors.Is(different, sentinel), "different codes should not match")

	wrapped := errors.Wrap(other, errors.ErrConfigValid, "bad config")
	assert.True(t, stderrors.Is(wrapped, sentinel), "errors.Is should walk the chain")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrDecode, "x"), errors.ErrDecode, true},
		{"different_code", errors.New(errors.ErrDecode, "x"), errors.ErrEncode, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"plain_error", stderrors.New("standard error"), errors.ErrDecode, false},
		{"nil_error", nil, errors.ErrDecode, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrCycle, errors.GetErrorCode(errors.New(errors.ErrCycle, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var middle *errors.ToolError
	require.True(t, stderrors.As(configErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrFileAccess, middle.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}
