package cookie

import (
	"strconv"
	"strings"
)

// Encode renders a Set-Cookie header value. Attribute order is fixed:
// Max-Age, Path, Domain, HttpOnly, Secure, SameSite.
func Encode(name, value string, attrs Attributes) string {
	var b strings.Builder
	b.Grow(len(name) + len(value) + 96)

	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)

	b.WriteString("; Max-Age=")
	b.WriteString(strconv.Itoa(attrs.MaxAge))

	b.WriteString("; Path=")
	b.WriteString(sanitizeAttr(attrs.Path))

	if d := sanitizeAttr(attrs.Domain); d != "" {
		b.WriteString("; Domain=")
		b.WriteString(d)
	}
	if attrs.HTTPOnly {
		b.WriteString("; HttpOnly")
	}
	if attrs.Secure {
		b.WriteString("; Secure")
	}

	sameSite := attrs.SameSite
	if sameSite == "" {
		sameSite = SameSiteLax
	}
	b.WriteString("; SameSite=")
	b.WriteString(string(sameSite))

	return b.String()
}

// ParseHeader parses a Cookie request header into name/value pairs.
// The first occurrence of a name wins; pairs without a valid name are skipped.
func ParseHeader(raw string) map[string]string {
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if ValidateName(name) != nil {
			continue
		}
		if _, exists := out[name]; exists {
			continue
		}

		value = strings.TrimSpace(value)
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}
		out[name] = value
	}
	return out
}

// sanitizeAttr drops bytes that would terminate or corrupt an attribute.
func sanitizeAttr(v string) string {
	return strings.Map(func(r rune) rune {
		if r == ';' || r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, v)
}
