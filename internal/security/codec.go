package security

import (
	"encoding/base64"
	"strings"
)

// encodeSegment produces the compact JWT segment form: URL-safe base64 with
// padding stripped.
func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// decodeSegment accepts both padded and unpadded input.
func decodeSegment(segment string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(segment, "="))
}
