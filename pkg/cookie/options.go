package cookie

// Option adjusts cookie Attributes.
type Option func(*Attributes)

func WithPath(path string) Option {
	return func(a *Attributes) {
		a.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(a *Attributes) {
		a.Domain = domain
	}
}

// WithMaxAge sets Max-Age in seconds. Negative values are ignored.
func WithMaxAge(seconds int) Option {
	return func(a *Attributes) {
		if seconds >= 0 {
			a.MaxAge = seconds
		}
	}
}

func WithSecure(secure bool) Option {
	return func(a *Attributes) {
		a.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(a *Attributes) {
		a.HTTPOnly = httpOnly
	}
}

func WithSameSite(sameSite SameSite) Option {
	return func(a *Attributes) {
		a.SameSite = sameSite
	}
}

// Apply returns a copy of base with opts applied. The base is not modified.
func Apply(base Attributes, opts ...Option) Attributes {
	result := base
	for _, opt := range opts {
		if opt != nil {
			opt(&result)
		}
	}
	return result
}
