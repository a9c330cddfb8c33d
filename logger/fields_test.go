package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	assert.NoError(t, err)
	assert.Equal(t, DebugLevel, level)

	level, err = ParseLevel("trace")
	assert.NoError(t, err)
	assert.Equal(t, TraceLevel, level)

	_, err = ParseLevel("noisy")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", InfoLevel.String())
	assert.Equal(t, "warning", WarnLevel.String())
}
