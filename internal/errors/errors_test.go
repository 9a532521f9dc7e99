package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errSecond, "loading stations")

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(nil, errFirst))
}

func TestWrapKeepsStack(t *testing.T) {
	err := Wrapf(errFirst, "sync %d", 3)

	assert.ErrorIs(t, err, errFirst)
	assert.Equal(t, "sync 3: first", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapKeepsStack")
}
