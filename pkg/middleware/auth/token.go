package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

func (m *Middleware) verifyToken(raw string) (User, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(m.leeway),
	)

	var claims struct {
		jwt.RegisteredClaims
		Roles []string `json:"roles"`
		Role  string   `json:"role"`
	}

	tok, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return User{}, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return User{}, errors.New("missing subject")
	}

	return User{
		Username: claims.Subject,
		Role:     Role{Name: firstNonEmpty(claims.Role, first(claims.Roles...))},
	}, nil
}

func first(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
