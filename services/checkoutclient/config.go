package checkoutclient

import (
	"fmt"
	"os"
)

// Config carries the client-side environment.
// The publishable key is handed to the payment-sheet sdk binding at construction.
type Config struct {
	APIBaseURL     string
	PublishableKey string
}

func ConfigFromEnv() (Config, error) {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		return Config{}, fmt.Errorf("missing env-var API_BASE_URL")
	}

	publishableKey := os.Getenv("STRIPE_PUBLISHABLE_KEY")
	if publishableKey == "" {
		return Config{}, fmt.Errorf("missing env-var STRIPE_PUBLISHABLE_KEY")
	}

	return Config{
		APIBaseURL:     baseURL,
		PublishableKey: publishableKey,
	}, nil
}
