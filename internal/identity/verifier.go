package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified subject of a request token.
type Identity struct {
	Subject uint
	Roles   []string
}

var ErrUnauthorized = errors.New("unauthorized")

// Verifier is the boundary to the external identity provider. Token
// issuance happens elsewhere; this process only verifies.
type Verifier interface {
	VerifyToken(token string) (*Identity, error)
}

type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) VerifyToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthorized
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrUnauthorized
	}

	var roles []string
	if raw, ok := claims["roles"].([]interface{}); ok {
		for _, r := range raw {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
	}

	return &Identity{
		Subject: uint(sub),
		Roles:   roles,
	}, nil
}

var _ Verifier = (*JWTVerifier)(nil)
