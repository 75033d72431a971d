package cookie

import "strings"

// SameSite is the value of the SameSite cookie attribute.
type SameSite string

const (
	SameSiteStrict SameSite = "Strict"
	SameSiteLax    SameSite = "Lax"
	SameSiteNone   SameSite = "None"
)

// DefaultMaxAge is one week in seconds.
const DefaultMaxAge = 604800

// Attributes control how the client stores and sends a cookie.
type Attributes struct {
	HTTPOnly bool
	Secure   bool
	SameSite SameSite
	MaxAge   int
	Domain   string
	Path     string
}

// DefaultAttributes returns the attribute set used when nothing is overridden.
func DefaultAttributes() Attributes {
	return Attributes{
		HTTPOnly: true,
		Secure:   true,
		SameSite: SameSiteLax,
		MaxAge:   DefaultMaxAge,
		Path:     "/",
	}
}

// ParseSameSite matches Strict, Lax or None case-insensitively.
// Any other value yields SameSiteLax.
func ParseSameSite(v string) SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return SameSiteStrict
	case "none":
		return SameSiteNone
	default:
		return SameSiteLax
	}
}
