package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/secrets"
)

// SignatureLength is the length of an encoded HMAC-SHA256 signature:
// 32 digest bytes in unpadded standard base64.
const SignatureLength = 43

var signatureEncoding = base64.RawStdEncoding

// Sign returns the HMAC-SHA256 of payload keyed by key.
func Sign(payload []byte, key secrets.Key) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(payload)
	return signatureEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches payload under any key of the ring.
func Verify(payload []byte, signature string, keyring secrets.Keyring) bool {
	if len(signature) != SignatureLength {
		return false
	}

	// Every key is checked so old cookies stay valid while a rotated key is still in the ring.
	valid := 0
	for _, key := range keyring {
		expected := Sign(payload, key)
		valid |= subtle.ConstantTimeCompare([]byte(signature), []byte(expected))
	}
	return valid == 1
}
