// Package tokenx decodes access-token payloads issued by the order service.
//
// The client never verifies token signatures. The server is the sole
// authority on token validity; the decode here is advisory and exists only to
// extract the identity claim for display and request routing. Treat the
// result accordingly.
package tokenx

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed reports a token that is not structured as a JWT with a
	// decodable JSON payload segment.
	ErrMalformed = errors.New("tokenx: malformed token")

	// ErrNoSubject reports a well-formed token whose payload carries no
	// usable userId claim.
	ErrNoSubject = errors.New("tokenx: token carries no userId claim")
)

// Claims is the decoded payload of an access token. UserID is the order
// service's custom identity claim; the registered claims come along for
// expiry display and debugging.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the numeric identity of the authenticated user.
	UserID int64 `json:"userId"`
}

// Decode extracts the claims from an access token without verifying its
// signature. It is a pure function: no storage, no network.
//
// A token must have at least a header and payload segment separated by dots.
// The signature segment is ignored entirely, so tokens with two segments
// still decode.
func Decode(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: expected dot-separated header and payload segments", ErrMalformed)
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return nil, err
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload is not valid JSON", ErrMalformed)
	}

	if claims.UserID <= 0 {
		return nil, ErrNoSubject
	}

	return &claims, nil
}

// decodeSegment decodes a token segment, tolerating both padded and unpadded
// base64 in standard and URL-safe alphabets. The issuing server pads its
// payload segments, which strict raw-url JWT decoders reject.
func decodeSegment(segment string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.StdEncoding,
	}
	for _, enc := range encodings {
		if b, err := enc.DecodeString(segment); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: payload segment is not base64", ErrMalformed)
}
