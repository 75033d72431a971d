package cookie

import "fmt"

// ValidateName checks name against the RFC 6265 cookie-name grammar
// (an RFC 2616 token): visible ASCII without separators.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for i := 0; i < len(name); i++ {
		if !isTokenChar(name[i]) {
			return fmt.Errorf("%w: %q has invalid character at position %d", ErrInvalidName, name, i)
		}
	}
	return nil
}

func isTokenChar(c byte) bool {
	if c <= 0x20 || c >= 0x7f {
		return false
	}
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}':
		return false
	}
	return true
}
