package cookie

import (
	"encoding/base64"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/secrets"
)

var payloadEncoding = base64.StdEncoding

// EncodeValue signs payload with key and returns the cookie value:
// the signature followed by the base64 payload.
func EncodeValue(payload []byte, key secrets.Key) string {
	return Sign(payload, key) + payloadEncoding.EncodeToString(payload)
}

// DecodeValue splits value at SignatureLength, decodes the payload and
// verifies it against the keyring.
func DecodeValue(value string, keyring secrets.Keyring) ([]byte, error) {
	if len(value) <= SignatureLength {
		return nil, ErrInvalidFormat
	}

	signature, encoded := value[:SignatureLength], value[SignatureLength:]

	payload, err := payloadEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	if !Verify(payload, signature, keyring) {
		return nil, ErrInvalidSignature
	}

	return payload, nil
}
