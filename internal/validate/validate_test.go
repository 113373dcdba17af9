package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlds/internal/validate"
)

func TestIsNil(t *testing.T) {
	var (
		nilPtr   *int
		nilMap   map[string]int
		nilSlice []int
		nilFunc  func()
		nilErr   error
	)
	x := 7

	assert.True(t, validate.IsNil(nilPtr))
	assert.True(t, validate.IsNil(nilMap))
	assert.True(t, validate.IsNil(nilSlice))
	assert.True(t, validate.IsNil(nilFunc))
	assert.True(t, validate.IsNil(nilErr))
	assert.True(t, validate.IsNil[any](nil))

	assert.False(t, validate.IsNil(&x))
	assert.False(t, validate.IsNil(0))
	assert.False(t, validate.IsNil(""))
	assert.False(t, validate.IsNil(struct{}{}))
	assert.False(t, validate.IsNil([]int{}))
}
