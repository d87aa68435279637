package errors_test

import (
	"fmt"
	"testing"

	"github.com/speakeasy-api/wes/errors"
	"github.com/stretchr/testify/assert"
)

const errSentinel = errors.Error("sentinel failure")

func TestError_Is_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "bare sentinel",
			err:      errSentinel,
			target:   errSentinel,
			expected: true,
		},
		{
			name:     "wrapped sentinel",
			err:      errSentinel.Wrap(errors.New("cause")),
			target:   errSentinel,
			expected: true,
		},
		{
			name:     "sentinel wrapped by fmt",
			err:      fmt.Errorf("outer: %w", errSentinel.Wrapf("field %s", "name")),
			target:   errSentinel,
			expected: true,
		},
		{
			name:     "different sentinel",
			err:      errSentinel,
			target:   errors.Error("other"),
			expected: false,
		},
		{
			name:     "prefix without separator",
			err:      errors.New("sentinel failure but different"),
			target:   errSentinel,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, errors.Is(tt.err, tt.target))
		})
	}
}

func TestError_Wrap_Success(t *testing.T) {
	t.Parallel()

	cause := errors.New("missing schema")
	err := errSentinel.Wrap(cause)

	assert.Equal(t, "sentinel failure: missing schema", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "sentinel failure", errSentinel.Wrap(nil).Error())
}

func TestUnwrapErrors_Success(t *testing.T) {
	t.Parallel()

	a := errors.New("a")
	b := errors.New("b")

	assert.Nil(t, errors.UnwrapErrors(nil))
	assert.Equal(t, []error{a}, errors.UnwrapErrors(a))
	assert.Equal(t, []error{a, b}, errors.UnwrapErrors(errors.Join(a, b)))
}
