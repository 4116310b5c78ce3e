package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Run("String falls back to default", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("MAZEGEN_TEST_UNSET", "fallback"))
	})

	t.Run("String reads the environment", func(t *testing.T) {
		t.Setenv("MAZEGEN_TEST_HOST", "127.0.0.1")
		assert.Equal(t, "127.0.0.1", getEnvWithDefault("MAZEGEN_TEST_HOST", "0.0.0.0"))
	})

	t.Run("Empty value is kept", func(t *testing.T) {
		t.Setenv("MAZEGEN_TEST_SEED", "")
		assert.Equal(t, "", getEnvWithDefault("MAZEGEN_TEST_SEED", "42"))
	})

	t.Run("Int falls back to default", func(t *testing.T) {
		assert.Equal(t, 8080, getEnvAsIntWithDefault("MAZEGEN_TEST_UNSET_PORT", 8080))
	})

	t.Run("Int reads the environment", func(t *testing.T) {
		t.Setenv("MAZEGEN_TEST_ROWS", "28")
		assert.Equal(t, 28, getEnvAsIntWithDefault("MAZEGEN_TEST_ROWS", 10))
	})

	t.Run("Loaded config has defaults", func(t *testing.T) {
		assert.NotEmpty(t, Envs.GinMode)
		assert.NotZero(t, Envs.RESTPort)
	})
}
