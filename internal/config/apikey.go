package config

import (
	"os"

	apierrors "github.com/diogo/textagent/internal/errors"
)

// APIKeyEnv is the environment variable holding the proxy API key.
// A .env file in the working directory is honored (loaded at startup).
const APIKeyEnv = "PROXY_API_KEY"

// ResolveAPIKey returns the credential to use: the explicit value when
// given, otherwise the PROXY_API_KEY environment variable. Fails with a
// ConfigError when neither is set.
func ResolveAPIKey(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if key := os.Getenv(APIKeyEnv); key != "" {
		return key, nil
	}

	return "", apierrors.NewConfigErrorWithCause(
		"no API key found, pass one explicitly or set "+APIKeyEnv,
		apierrors.ErrNoAPIKey,
	)
}
