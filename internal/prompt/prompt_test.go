package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dsakit/internal/config"
	"github.com/katalvlaran/dsakit/internal/prompt"
)

func TestIntValidator(t *testing.T) {
	v := prompt.IntValidator(prompt.Between(1, 5))

	assert.NoError(t, v("3"))
	assert.NoError(t, v(" 5 "))
	assert.EqualError(t, v("0"), "enter a number from 1 to 5")
	assert.EqualError(t, v("six"), `"six" is not a whole number`)
	assert.Error(t, v(4), "non-string answers are rejected")

	anyInt := prompt.IntValidator(nil)
	assert.NoError(t, anyInt("-40"))
}

func TestRangeCheck(t *testing.T) {
	// The maximum question validates against the minimum already given.
	v := prompt.IntValidator(func(hi int) error {
		return config.Range{Min: 10, Max: hi}.Validate("tree")
	})
	assert.NoError(t, v("11"))
	err := v("10")
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorContains(t, err, "tree min 10 must be less than max 10")
}
