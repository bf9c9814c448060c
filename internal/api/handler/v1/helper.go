package v1

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kaungzawhein/thadingyut-voting/internal/api/handler/v1/response"
	"github.com/kaungzawhein/thadingyut-voting/internal/api/middleware"
	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

// claimsFromContext pulls the verified claims set by the session
// middleware. Missing claims mean the route was mounted without the
// authenticator, which is a wiring bug surfaced as a 401.
func claimsFromContext(ctx *gin.Context) (domain.Claims, *response.Err) {
	value, exists := ctx.Get(middleware.ClaimsKey)
	if !exists {
		return domain.Claims{}, response.ErrAuthenticationRequired()
	}

	claims, ok := value.(domain.Claims)
	if !ok || claims.SubjectID == "" {
		return domain.Claims{}, response.ErrAuthenticationRequired()
	}

	return claims, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
