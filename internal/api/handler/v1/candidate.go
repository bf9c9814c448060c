package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaungzawhein/thadingyut-voting/internal/api/handler/v1/response"
	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

type CandidateService interface {
	ListCandidates(ctx context.Context) ([]domain.Candidate, []domain.Candidate, error)
	ListLanterns(ctx context.Context) ([]domain.Candidate, error)
	Results(ctx context.Context) ([]domain.Candidate, []domain.Candidate, error)
}

type CandidateHandler struct {
	svc CandidateService
}

func NewCandidateHandler(svc CandidateService) *CandidateHandler {
	return &CandidateHandler{
		svc: svc,
	}
}

// HandleGetCandidates godoc
// @Summary      List kings and queens
// @Description  Returns both rosters ordered by name
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.CandidatesResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) HandleGetCandidates(ctx *gin.Context) {
	kings, queens, err := h.svc.ListCandidates(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCandidates -> h.svc.ListCandidates -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CandidatesResponse{
		Kings:  kings,
		Queens: queens,
	})
}

// HandleGetLanterns godoc
// @Summary      List lanterns
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.LanternsResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /lanterns [get]
// @Security     BearerAuth
func (h *CandidateHandler) HandleGetLanterns(ctx *gin.Context) {
	lanterns, err := h.svc.ListLanterns(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetLanterns -> h.svc.ListLanterns -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LanternsResponse{
		Lanterns: lanterns,
	})
}

// HandleGetResults godoc
// @Summary      Current standings
// @Description  Kings and queens ordered by vote count, highest first
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.CandidatesResponse
// @Failure      500  {object}  response.Err
// @Router       /results [get]
func (h *CandidateHandler) HandleGetResults(ctx *gin.Context) {
	kings, queens, err := h.svc.Results(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetResults -> h.svc.Results -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CandidatesResponse{
		Kings:  kings,
		Queens: queens,
	})
}
