package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeEquals(t *testing.T) {
	details := NewErrorDetails("bar shape matches no known pattern", string(ErrUnclassifiableBar), "2024-01-01T00:00:00Z")

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{name: "direct details", err: details, code: ErrUnclassifiableBar, expected: true},
		{name: "other code", err: details, code: ErrInvalidBar, expected: false},
		{name: "wrapped by fmt", err: fmt.Errorf("classify: %w", details), code: ErrUnclassifiableBar, expected: true},
		{name: "wrapped by tracer", err: TracerFromError(details), code: ErrUnclassifiableBar, expected: true},
		{name: "base error", err: NewBaseError(details), code: ErrUnclassifiableBar, expected: true},
		{name: "plain error", err: fmt.Errorf("plain"), code: ErrUnclassifiableBar, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCodeEquals(tc.err, tc.code))
		})
	}
}

func TestBaseError(t *testing.T) {
	b := NewBaseError()
	assert.False(t, b.HasDetails())
	assert.False(t, b.IsAllCodeEqual(string(ErrInvalidBar)))

	b.AddErrorDetails(
		NewErrorDetails("first", string(ErrInvalidBar), "a"),
		NewErrorDetails("second", string(ErrUnclassifiableBar), "b"),
	)

	assert.True(t, b.HasDetails())
	assert.Len(t, b.GetDetails(), 2)
	assert.True(t, b.IsAnyCodeEqual(string(ErrInvalidBar)))
	assert.False(t, b.IsAllCodeEqual(string(ErrInvalidBar)))
	assert.Contains(t, b.Error(), "code: invalid_bar; error: first; field: a")
	assert.Contains(t, b.Error(), "code: unclassifiable_bar; error: second; field: b")
}

func TestErrorTracer(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	tracer := NewTracer("failed to store swings").Wrap(cause)
	assert.Equal(t, "failed to store swings: connection refused", tracer.Error())
	assert.NotNil(t, tracer.StackTrace())
	assert.ErrorIs(t, tracer, cause)

	fromErr := TracerFromError(cause)
	assert.Equal(t, "connection refused", fromErr.Error())
	assert.NotNil(t, fromErr.StackTrace())
}
