package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrInvalidPayload   = errors.New("invalid token payload")
	ErrTokenExpired     = errors.New("token expired")
	ErrWrongTokenType   = errors.New("wrong token type")
)

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Type   string `json:"type"`
	Iat    int64  `json:"iat"`
	Exp    int64  `json:"exp"`
}

// Engine signs and verifies HS256 tokens with a process-wide secret. The
// secret is injected at construction so tests can run with distinct keys.
type Engine struct {
	secret []byte
	now    func() time.Time
}

func NewEngine(secret string) *Engine {
	return &Engine{secret: []byte(secret), now: time.Now}
}

// Encode builds a signed token for the user. Iat and Exp are set here, never
// by the caller.
func (e *Engine) Encode(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := e.now().UTC().Unix()
	claims := Claims{
		UserID: userID,
		Type:   tokenType,
		Iat:    now,
		Exp:    now + int64(ttl/time.Second),
	}
	headerJSON, err := json.Marshal(header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", err
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	signingInput := encodeSegment(headerJSON) + "." + encodeSegment(payloadJSON)
	return signingInput + "." + encodeSegment(e.sign(signingInput)), nil
}

// decode verifies the signature before trusting any payload bytes, then
// checks expiry. A missing exp claim means the token never expires; the
// issuer always sets one.
func (e *Engine) decode(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformedToken
	}
	signature, err := decodeSegment(parts[2])
	if err != nil {
		return nil, ErrMalformedToken
	}
	signingInput := parts[0] + "." + parts[1]
	if !hmac.Equal(signature, e.sign(signingInput)) {
		return nil, ErrInvalidSignature
	}
	payloadJSON, err := decodeSegment(parts[1])
	if err != nil {
		return nil, ErrInvalidPayload
	}
	var claims Claims
	if err := json.Unmarshal(payloadJSON, &claims); err != nil {
		return nil, ErrInvalidPayload
	}
	if claims.Exp > 0 && e.now().UTC().Unix() > claims.Exp {
		return nil, ErrTokenExpired
	}
	return &claims, nil
}

// DecodeTyped is the only verification entry point exposed outside this
// package: refusing to return claims of the wrong type keeps refresh tokens
// out of bearer headers and access tokens out of refresh calls.
func (e *Engine) DecodeTyped(token, expectedType string) (*Claims, error) {
	claims, err := e.decode(token)
	if err != nil {
		return nil, err
	}
	if claims.Type != expectedType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

func (e *Engine) sign(input string) []byte {
	mac := hmac.New(sha256.New, e.secret)
	mac.Write([]byte(input))
	return mac.Sum(nil)
}
