package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaungzawhein/thadingyut-voting/internal/api/handler/v1/request"
	"github.com/kaungzawhein/thadingyut-voting/internal/api/handler/v1/response"
	"github.com/kaungzawhein/thadingyut-voting/internal/config"
	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
	"github.com/kaungzawhein/thadingyut-voting/internal/pkg/jwthelper"
	"github.com/kaungzawhein/thadingyut-voting/internal/service"
)

type AuthService interface {
	Login(credential string) (domain.Claims, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Exchange an identity provider credential for a session token
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	claims, err := h.svc.Login(req.IDToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			response.RenderErr(ctx, response.ErrWrongCredentials(service.ErrInvalidCredential))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), claims, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:  token,
		Claims: claims,
	})
}
