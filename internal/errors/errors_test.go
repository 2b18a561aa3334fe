package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestFind(t *testing.T) {
	base := &codedError{code: "EMPTY_CART"}
	wrapped := Wrap(WithMessage(base, "checkout"), "place order")

	found, ok := Find[*codedError](wrapped)
	require.True(t, ok)
	assert.Equal(t, "EMPTY_CART", found.code)

	_, ok = Find[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, WithStack(nil))
}

func TestIsThroughWrap(t *testing.T) {
	sentinel := New("sentinel")
	assert.True(t, Is(Wrapf(sentinel, "item %d", 3), sentinel))
	assert.True(t, Is(Join(New("other"), sentinel), sentinel))
}
