package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed means the token is not three dot-joined base64 segments
	// (or the payload is not decodable at all).
	ErrMalformed = errors.New("malformed token")
	// ErrBadSignature means the recomputed HMAC does not match.
	ErrBadSignature = errors.New("bad token signature")
)

// Claims is the payload of a session token. Decode guarantees structure and
// signature only; the expiry window is checked by the caller so structural
// validity stays separate from temporal validity.
type Claims struct {
	SubjectID string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type signedClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec encodes and verifies HS256-signed session tokens with a process-wide
// secret. It is stateless and safe for concurrent use.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Encode(claims Claims) (string, error) {
	sc := signedClaims{
		Role: claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.SubjectID,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, sc).SignedString(c.secret)
}

// Decode recomputes the signature and returns the claims. It fails with
// ErrMalformed when the token is not exactly three segments and with
// ErrBadSignature on any verification mismatch. Expired tokens decode fine.
func (c *Codec) Decode(raw string) (*Claims, error) {
	if strings.Count(raw, ".") != 2 {
		return nil, ErrMalformed
	}

	var sc signedClaims
	_, err := jwt.ParseWithClaims(raw, &sc, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrMalformed
		}
		return nil, ErrBadSignature
	}

	out := &Claims{
		SubjectID: sc.Subject,
		Role:      sc.Role,
	}
	if sc.IssuedAt != nil {
		out.IssuedAt = sc.IssuedAt.Time
	}
	if sc.ExpiresAt != nil {
		out.ExpiresAt = sc.ExpiresAt.Time
	}
	return out, nil
}
