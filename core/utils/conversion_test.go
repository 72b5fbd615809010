package utils_test

import (
	"testing"

	"floorplan/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, utils.ToInt(42))
	assert.Equal(t, 42, utils.ToInt(int64(42)))
	assert.Equal(t, 7, utils.ToInt(7.9))
	assert.Equal(t, 1000, utils.ToInt("1000"))
	assert.Equal(t, 12, utils.ToInt([]byte("12")))
	assert.Equal(t, 0, utils.ToInt("wide"))
}

func TestToBool(t *testing.T) {
	assert.True(t, utils.ToBool(true))
	assert.True(t, utils.ToBool("TRUE"))
	assert.True(t, utils.ToBool("1"))
	assert.True(t, utils.ToBool(1))
	assert.False(t, utils.ToBool("yes"))
	assert.False(t, utils.ToBool(0))
	assert.False(t, utils.ToBool(nil))
}
