package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kaungzawhein/thadingyut-voting/internal/api/handler/v1/response"
	"github.com/kaungzawhein/thadingyut-voting/internal/pkg/jwthelper"
)

// ClaimsKey is the gin context key holding the verified
// domain.Claims of the acting subject.
const ClaimsKey = "verifiedClaims"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifySession gates a route group on a valid session token and
// injects the verified claims into the request context. No store
// access happens before this check.
func (a *Authenticator) VerifySession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrAuthenticationRequired())
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrAuthenticationRequired())
			return
		}

		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}
