package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/config"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/cookie"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/secrets"
)

// DefaultCookieName is used when no cookie name is configured.
const DefaultCookieName = "session"

// Config holds the raw session cookie settings. Values are kept as strings
// so that overrides are interpreted exactly like environment variables.
type Config struct {
	// Secret signs new cookies. Required, at least 32 bytes.
	Secret string `env:"SESSION_COOKIE_SECRET"`
	// PreviousSecrets are still accepted when verifying, for key rotation.
	PreviousSecrets []string `env:"SESSION_COOKIE_PREVIOUS_SECRETS" envSeparator:","`

	Name string `env:"SESSION_COOKIE_NAME" envDefault:"session"`
	// HTTPOnly and Secure are on unless set to "0".
	HTTPOnly string `env:"SESSION_COOKIE_HTTPONLY"`
	Secure   string `env:"SESSION_COOKIE_SECURE"`
	// SameSite is Strict, Lax or None, case-insensitive. Anything else means Lax.
	SameSite string `env:"SESSION_COOKIE_SAMESITE"`
	// MaxAge in seconds, applied only when it parses as a non-negative integer.
	MaxAge string `env:"SESSION_COOKIE_MAX_AGE_SPAN"`
	Domain string `env:"SESSION_COOKIE_DOMAIN"`
	Path   string `env:"SESSION_COOKIE_PATH"`
}

// DefaultConfig returns a configuration with the default cookie name and no secret.
func DefaultConfig() Config {
	return Config{Name: DefaultCookieName}
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := config.Load(&cfg); err != nil {
		return Config{}, errors.Join(ErrConfiguration, err)
	}
	return cfg, nil
}

// CookieName returns the validated cookie name.
func (c Config) CookieName() (string, error) {
	if err := cookie.ValidateName(c.Name); err != nil {
		return "", errors.Join(ErrConfiguration, err)
	}
	return c.Name, nil
}

// CookieAttributes derives cookie attributes from the overrides. It never
// fails: unrecognised values fall back to the defaults.
func (c Config) CookieAttributes() cookie.Attributes {
	opts := []cookie.Option{
		cookie.WithHTTPOnly(c.HTTPOnly != "0"),
		cookie.WithSecure(c.Secure != "0"),
		cookie.WithSameSite(cookie.ParseSameSite(c.SameSite)),
	}
	if maxAge, err := strconv.Atoi(c.MaxAge); err == nil {
		opts = append(opts, cookie.WithMaxAge(maxAge))
	}
	if c.Domain != "" {
		opts = append(opts, cookie.WithDomain(c.Domain))
	}
	if c.Path != "" {
		opts = append(opts, cookie.WithPath(c.Path))
	}
	return cookie.Apply(cookie.DefaultAttributes(), opts...)
}

// Keyring resolves the signing keys: Secret first, then PreviousSecrets.
func (c Config) Keyring() (secrets.Keyring, error) {
	previous := make([]string, 0, len(c.PreviousSecrets))
	for _, s := range c.PreviousSecrets {
		previous = append(previous, strings.TrimSpace(s))
	}
	ring, err := secrets.NewKeyring(c.Secret, previous...)
	if err != nil {
		return nil, errors.Join(ErrConfiguration, err)
	}
	return ring, nil
}
