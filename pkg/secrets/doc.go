// Package secrets resolves and generates the keys used to sign session
// cookies.
//
// A Keyring is an ordered list of keys. The first key (the primary) signs new
// cookies; every key in the ring is accepted when verifying. Rotating a secret
// is done by promoting a new primary and keeping the old one in the ring until
// cookies signed with it have expired.
//
// # Usage
//
//	import "github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/secrets"
//
//	// Generate a key once and store it in SESSION_COOKIE_SECRET
//	key, _ := secrets.GenerateKey()
//
//	ring, err := secrets.NewKeyring(os.Getenv("SESSION_COOKIE_SECRET"))
//	if err != nil {
//	    // missing or too short
//	}
//
// # Error Handling
//
// NewKeyring returns ErrMissingSecret when no primary secret is given and
// ErrSecretTooShort when any secret is shorter than MinKeyLength bytes. Use
// errors.Is to match them.
package secrets
