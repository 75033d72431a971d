package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/cookie"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/secrets"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/session"
)

const (
	testSecret     = "this-is-a-very-long-secret-key-32-chars-long"
	previousSecret = "old-secret-that-is-32-characters-long-exactly"
	rotatedSecret  = "new-secret-that-is-32-characters-long-exactly"
)

func testConfig() session.Config {
	cfg := session.DefaultConfig()
	cfg.Secret = testSecret
	return cfg
}

func TestConfig_CookieAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*session.Config)
		want   func(*cookie.Attributes)
	}{
		{
			name:   "defaults",
			modify: func(*session.Config) {},
			want:   func(*cookie.Attributes) {},
		},
		{
			name:   "httponly disabled by 0",
			modify: func(c *session.Config) { c.HTTPOnly = "0" },
			want:   func(a *cookie.Attributes) { a.HTTPOnly = false },
		},
		{
			name:   "httponly kept for other values",
			modify: func(c *session.Config) { c.HTTPOnly = "false" },
			want:   func(*cookie.Attributes) {},
		},
		{
			name:   "secure disabled by 0",
			modify: func(c *session.Config) { c.Secure = "0" },
			want:   func(a *cookie.Attributes) { a.Secure = false },
		},
		{
			name:   "samesite case-insensitive",
			modify: func(c *session.Config) { c.SameSite = "sTrIcT" },
			want:   func(a *cookie.Attributes) { a.SameSite = cookie.SameSiteStrict },
		},
		{
			name:   "samesite none",
			modify: func(c *session.Config) { c.SameSite = "NONE" },
			want:   func(a *cookie.Attributes) { a.SameSite = cookie.SameSiteNone },
		},
		{
			name:   "samesite unknown falls back to lax",
			modify: func(c *session.Config) { c.SameSite = "bogus" },
			want:   func(*cookie.Attributes) {},
		},
		{
			name:   "max age",
			modify: func(c *session.Config) { c.MaxAge = "3600" },
			want:   func(a *cookie.Attributes) { a.MaxAge = 3600 },
		},
		{
			name:   "max age zero",
			modify: func(c *session.Config) { c.MaxAge = "0" },
			want:   func(a *cookie.Attributes) { a.MaxAge = 0 },
		},
		{
			name:   "max age non-numeric ignored",
			modify: func(c *session.Config) { c.MaxAge = "1h" },
			want:   func(*cookie.Attributes) {},
		},
		{
			name:   "max age negative ignored",
			modify: func(c *session.Config) { c.MaxAge = "-5" },
			want:   func(*cookie.Attributes) {},
		},
		{
			name: "domain and path",
			modify: func(c *session.Config) {
				c.Domain = "example.com"
				c.Path = "/app"
			},
			want: func(a *cookie.Attributes) {
				a.Domain = "example.com"
				a.Path = "/app"
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			tt.modify(&cfg)

			want := cookie.DefaultAttributes()
			tt.want(&want)
			assert.Equal(t, want, cfg.CookieAttributes())
		})
	}
}

func TestConfig_CookieName(t *testing.T) {
	t.Parallel()

	valid := []string{"session", "my_session", "s-1", "abc!#$%&'*+.^`|~"}
	for _, name := range valid {
		cfg := testConfig()
		cfg.Name = name
		got, err := cfg.CookieName()
		require.NoError(t, err, name)
		assert.Equal(t, name, got)
	}

	invalid := []string{"", "my session", "a;b", "a=b", "a,b", "(x)", "é"}
	for _, name := range invalid {
		cfg := testConfig()
		cfg.Name = name
		_, err := cfg.CookieName()
		assert.ErrorIs(t, err, session.ErrConfiguration, name)
		assert.ErrorIs(t, err, cookie.ErrInvalidName, name)
	}
}

func TestConfig_Keyring(t *testing.T) {
	t.Parallel()

	t.Run("primary first", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.PreviousSecrets = []string{" " + previousSecret + " ", ""}
		ring, err := cfg.Keyring()
		require.NoError(t, err)
		require.Equal(t, 2, ring.Len())
		assert.Equal(t, secrets.Key(testSecret), ring.Primary())
		assert.Equal(t, secrets.Key(previousSecret), ring[1])
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()
		_, err := session.DefaultConfig().Keyring()
		assert.ErrorIs(t, err, session.ErrConfiguration)
		assert.ErrorIs(t, err, secrets.ErrMissingSecret)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.Secret = "short"
		_, err := cfg.Keyring()
		assert.ErrorIs(t, err, session.ErrConfiguration)
		assert.ErrorIs(t, err, secrets.ErrSecretTooShort)
	})

	t.Run("short previous secret", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.PreviousSecrets = []string{"short"}
		_, err := cfg.Keyring()
		assert.ErrorIs(t, err, secrets.ErrSecretTooShort)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SESSION_COOKIE_SECRET", testSecret)
	t.Setenv("SESSION_COOKIE_PREVIOUS_SECRETS", previousSecret+","+rotatedSecret)
	t.Setenv("SESSION_COOKIE_NAME", "sid")
	t.Setenv("SESSION_COOKIE_HTTPONLY", "0")
	t.Setenv("SESSION_COOKIE_SECURE", "1")
	t.Setenv("SESSION_COOKIE_SAMESITE", "strict")
	t.Setenv("SESSION_COOKIE_MAX_AGE_SPAN", "60")
	t.Setenv("SESSION_COOKIE_DOMAIN", "example.com")
	t.Setenv("SESSION_COOKIE_PATH", "/fn")

	cfg, err := session.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, testSecret, cfg.Secret)
	assert.Equal(t, []string{previousSecret, rotatedSecret}, cfg.PreviousSecrets)
	assert.Equal(t, "sid", cfg.Name)

	attrs := cfg.CookieAttributes()
	assert.False(t, attrs.HTTPOnly)
	assert.True(t, attrs.Secure)
	assert.Equal(t, cookie.SameSiteStrict, attrs.SameSite)
	assert.Equal(t, 60, attrs.MaxAge)
	assert.Equal(t, "example.com", attrs.Domain)
	assert.Equal(t, "/fn", attrs.Path)

	ring, err := cfg.Keyring()
	require.NoError(t, err)
	assert.Equal(t, 3, ring.Len())
}

func TestLoadConfig_DefaultName(t *testing.T) {
	t.Setenv("SESSION_COOKIE_SECRET", testSecret)

	cfg, err := session.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, session.DefaultCookieName, cfg.Name)
}
