package config

import "fmt"

// MinJWTSecretLength is the shortest HMAC secret accepted for signing session tokens.
const MinJWTSecretLength = 16

var knownWeakSecrets = []string{
	"your-secret-key-change-this-in-production",
	"secret",
	"changeme",
}

// JWTKey returns the signing secret as bytes.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

func (c *Config) validateJWT() error {
	for _, weak := range knownWeakSecrets {
		if c.JWTSecret == weak {
			return fmt.Errorf("JWT_SECRET is a known default value and must not be used")
		}
	}
	if len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes long, got %d", MinJWTSecretLength, len(c.JWTSecret))
	}
	if c.JWTExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive, got %s", c.JWTExpiration)
	}
	return nil
}
