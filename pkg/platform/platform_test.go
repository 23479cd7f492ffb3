package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomeDir_Stable(t *testing.T) {
	first := HomeDir()
	second := HomeDir()
	assert.Equal(t, first, second)
}

func TestTempDir_NonEmpty(t *testing.T) {
	dir := TempDir()
	assert.NotEmpty(t, dir)
	assert.Equal(t, dir, TempDir())
}
