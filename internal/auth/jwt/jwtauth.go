package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

const (
	RoleClaim = "role"
	RoleAdmin = "admin"

	defaultTTL = 24 * time.Hour
)

type Config struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	JWTTTL    string `mapstructure:"jwt_ttl"`
}

// New returns an HS256 JWTAuth for the configured secret.
func New(c Config) (*jwtauth.JWTAuth, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	return jwtauth.New("HS256", []byte(c.JWTSecret), nil), nil
}

// TTL parses JWTTTL, falling back to 24h when unset.
func (c Config) TTL() (time.Duration, error) {
	if c.JWTTTL == "" {
		return defaultTTL, nil
	}
	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return 0, fmt.Errorf("can't parse jwt ttl %q: %w", c.JWTTTL, err)
	}
	return ttl, nil
}

// VerifyToken validates token and returns its subject.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// NewAdminToken creates a JWT carrying the admin role claim.
func NewAdminToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	return encode(jwtAuth, ttl, subject, map[string]any{RoleClaim: RoleAdmin})
}

func encode(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string, extra map[string]any) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	for k, v := range extra {
		claims[k] = v
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}

// IsAdmin reports whether claims carry the admin role.
func IsAdmin(claims map[string]interface{}) bool {
	role, _ := claims[RoleClaim].(string)
	return role == RoleAdmin
}
