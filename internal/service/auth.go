package service

import (
	"fmt"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
	"github.com/kaungzawhein/thadingyut-voting/internal/identity"
)

var ErrInvalidCredential = identity.ErrInvalidCredential

type AuthService struct {
	verifier identity.Verifier
}

func NewAuthService(verifier identity.Verifier) *AuthService {
	return &AuthService{
		verifier: verifier,
	}
}

// Login verifies the identity provider credential and returns the
// verified claims of the acting subject. No local accounts exist;
// the provider is the sole authority.
func (s *AuthService) Login(credential string) (domain.Claims, error) {
	claims, err := s.verifier.Verify(credential)
	if err != nil {
		return domain.Claims{}, fmt.Errorf("s.verifier.Verify -> %w", err)
	}

	return claims, nil
}
