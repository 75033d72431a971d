// Package cookie implements the wire side of signed session cookies:
// HMAC-SHA256 signing over a keyring, the signed value layout, Set-Cookie
// rendering and Cookie header parsing.
//
// # Value layout
//
// A signed value is the 43 character signature (HMAC-SHA256, unpadded
// standard base64) immediately followed by the standard base64 encoding of
// the payload:
//
//	<signature:43><base64(payload)>
//
// Sign always uses the key it is given; Verify accepts a signature produced
// by any key of the ring, so a rotated secret keeps old cookies readable for
// as long as it stays in the ring. Comparison is constant time.
//
// # Usage
//
//	ring, _ := secrets.NewKeyring(os.Getenv("SESSION_COOKIE_SECRET"))
//
//	value := cookie.EncodeValue([]byte(`{"visits":1}`), ring.Primary())
//	line := cookie.Encode("session", value, cookie.DefaultAttributes())
//	// session=<value>; Max-Age=604800; Path=/; HttpOnly; Secure; SameSite=Lax
//
//	pairs := cookie.ParseHeader(r.Header.Get("Cookie"))
//	payload, err := cookie.DecodeValue(pairs["session"], ring)
//
// # Error Handling
//
// DecodeValue returns ErrInvalidFormat for values that are too short or not
// base64 and ErrInvalidSignature when no key of the ring matches.
// ValidateName returns ErrInvalidName.
package cookie
