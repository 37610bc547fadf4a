package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"WRDL_LENGTH", "WRDL_MAX_GUESSES", "WRDL_STRATEGY", "APP_ENV", "JWT_EXPIRES_DAYS"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, 5, c.Length)
	assert.Equal(t, 6, c.MaxGuesses)
	assert.Equal(t, "random", c.Strategy)
	assert.False(t, c.Production)
	assert.Equal(t, 14*24*time.Hour, c.JWTTTL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("WRDL_LENGTH", "7")
	t.Setenv("WRDL_MAX_GUESSES", "nine")
	t.Setenv("WRDL_STRATEGY", "best")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_EXPIRES_DAYS", "1")

	c := FromEnv()
	assert.Equal(t, 7, c.Length)
	assert.Equal(t, 6, c.MaxGuesses, "unparsable values fall back")
	assert.Equal(t, "best", c.Strategy)
	assert.True(t, c.Production)
	assert.Equal(t, 24*time.Hour, c.JWTTTL)
}
