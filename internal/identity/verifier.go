package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kaungzawhein/thadingyut-voting/internal/config"
	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

var ErrInvalidCredential = errors.New("credential could not be verified")

// Verifier validates an opaque credential from the external identity
// provider and yields the verified claims of the acting subject.
type Verifier interface {
	Verify(credential string) (domain.Claims, error)
}

type providerClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// JWTVerifier verifies provider-signed ID tokens against a shared
// signing key and expected issuer.
type JWTVerifier struct {
	conf *config.IdentityConfig
}

func NewJWTVerifier(conf *config.IdentityConfig) *JWTVerifier {
	return &JWTVerifier{
		conf: conf,
	}
}

func (v *JWTVerifier) Verify(credential string) (domain.Claims, error) {
	var claims providerClaims
	token, err := jwt.ParseWithClaims(credential, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return []byte(v.conf.SigningKey), nil
	}, jwt.WithIssuer(v.conf.Issuer))
	if err != nil || !token.Valid || claims.Subject == "" {
		return domain.Claims{}, ErrInvalidCredential
	}

	return domain.Claims{
		SubjectID:   claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}, nil
}
