package checkoutclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnv(t *testing.T) {

	t.Run("Complete environment", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://localhost:8080")
		t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_123")

		cfg, err := ConfigFromEnv()
		assert.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
		assert.Equal(t, "pk_test_123", cfg.PublishableKey)
	})

	t.Run("Missing base-url", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_123")

		_, err := ConfigFromEnv()
		assert.Error(t, err)
	})

	t.Run("Missing publishable key", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://localhost:8080")
		t.Setenv("STRIPE_PUBLISHABLE_KEY", "")

		_, err := ConfigFromEnv()
		assert.Error(t, err)
	})
}
