package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	assert.NoError(t, os.Setenv("SYN_TEST_KEY", ""))
	assert.Equal(t, "fallback", Getenv("SYN_TEST_KEY", "fallback"))

	assert.NoError(t, os.Setenv("SYN_TEST_KEY", "value"))
	assert.Equal(t, "value", Getenv("SYN_TEST_KEY", "fallback"))

	assert.NoError(t, os.Unsetenv("SYN_TEST_KEY"))
}
