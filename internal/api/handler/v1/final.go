package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaungzawhein/thadingyut-voting/internal/api/handler/v1/request"
	"github.com/kaungzawhein/thadingyut-voting/internal/api/handler/v1/response"
	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
	"github.com/kaungzawhein/thadingyut-voting/internal/service"
)

type FinalService interface {
	CastFinalVote(ctx context.Context, subjectID, rawToken string, category domain.Category, candidateID uint) error
	ClaimReward(ctx context.Context, subjectID, rawToken string) (string, bool, error)
	TokenStatus(ctx context.Context, rawToken string) (domain.FinalToken, error)
	FinalCandidates(ctx context.Context) ([]domain.FinalCandidate, []domain.FinalCandidate, error)
}

type FinalHandler struct {
	svc FinalService
}

func NewFinalHandler(svc FinalService) *FinalHandler {
	return &FinalHandler{
		svc: svc,
	}
}

// HandleFinalVote godoc
// @Summary      Redeem a token for a final-round vote
// @Description  Consumes one category slot of a 6-character token. The reward category is claim-only.
// @Tags         final
// @Accept       json
// @Produce      json
// @Param        request  body  request.FinalVoteRequest  true  "request body"
// @Success      200  {object}  response.VoteResult
// @Failure      400  {object}  response.VoteResult
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /votes/final [post]
// @Security     BearerAuth
func (h *FinalHandler) HandleFinalVote(ctx *gin.Context) {
	claims, respErr := claimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.FinalVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category := domain.Category(req.Category)
	err := h.svc.CastFinalVote(ctx.Request.Context(), claims.SubjectID, req.Token, category, req.CandidateID)
	if err != nil {
		h.renderFinalErr(ctx, category, err)
		return
	}

	ctx.JSON(http.StatusOK, response.VoteResult{
		Success: true,
		Message: fmt.Sprintf("Your vote for %v has been recorded.", req.Category),
	})
}

// HandleClaimReward godoc
// @Summary      Claim the reward attached to a token
// @Description  One-time claim. The original claimant can repeat the call and sees the same reward.
// @Tags         final
// @Accept       json
// @Produce      json
// @Param        request  body  request.RewardClaimRequest  true  "request body"
// @Success      200  {object}  response.RewardClaimResult
// @Failure      400  {object}  response.VoteResult
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /rewards/claim [post]
// @Security     BearerAuth
func (h *FinalHandler) HandleClaimReward(ctx *gin.Context) {
	claims, respErr := claimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RewardClaimRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	token, err := domain.NormalizeToken(req.Token)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reward, already, err := h.svc.ClaimReward(ctx.Request.Context(), claims.SubjectID, token)
	if err != nil {
		h.renderClaimErr(ctx, err)
		return
	}

	message := "Token verified successfully."
	if already {
		message = "Already claimed. Showing your reward."
	}

	ctx.JSON(http.StatusOK, response.RewardClaimResult{
		Success:     true,
		Message:     message,
		RewardValue: reward,
		Token:       token,
	})
}

// HandleTokenStatus godoc
// @Summary      Report which slots a token has spent
// @Description  Lets the final page grey out consumed categories before submitting
// @Tags         final
// @Accept       json
// @Produce      json
// @Param        request  body  request.TokenStatusRequest  true  "request body"
// @Success      200  {object}  response.TokenStatusResponse
// @Failure      400  {object}  response.VoteResult
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tokens/status [post]
// @Security     BearerAuth
func (h *FinalHandler) HandleTokenStatus(ctx *gin.Context) {
	if _, respErr := claimsFromContext(ctx); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.TokenStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	token, err := h.svc.TokenStatus(ctx.Request.Context(), req.Token)
	if err != nil {
		h.renderClaimErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.TokenStatusResponse{
		Token:       token.Token,
		KingUsed:    token.King.Used,
		QueenUsed:   token.Queen.Used,
		LanternUsed: token.Lantern.Used,
		RewardUsed:  token.Reward.Used,
	})
}

// HandleGetFinalCandidates godoc
// @Summary      List final-round kings and queens
// @Tags         final
// @Produce      json
// @Success      200  {object}  response.FinalCandidatesResponse
// @Failure      500  {object}  response.Err
// @Router       /final-candidates [get]
func (h *FinalHandler) HandleGetFinalCandidates(ctx *gin.Context) {
	kings, queens, err := h.svc.FinalCandidates(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetFinalCandidates -> h.svc.FinalCandidates -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.FinalCandidatesResponse{
		Kings:  kings,
		Queens: queens,
	})
}

func (h *FinalHandler) renderFinalErr(ctx *gin.Context, category domain.Category, err error) {
	switch {
	case errors.Is(err, service.ErrMalformedToken):
		ctx.JSON(http.StatusBadRequest, response.VoteResult{
			Success: false,
			Message: "Token must be exactly 6 characters",
		})
	case errors.Is(err, service.ErrTokenNotFound):
		ctx.JSON(http.StatusBadRequest, response.VoteResult{
			Success: false,
			Message: "Invalid token",
		})
	case errors.Is(err, service.ErrInvalidCategory):
		ctx.JSON(http.StatusBadRequest, response.VoteResult{
			Success: false,
			Message: "Invalid voting category",
		})
	case errors.Is(err, service.ErrTokenUsed):
		ctx.JSON(http.StatusBadRequest, response.VoteResult{
			Success: false,
			Message: fmt.Sprintf("Token already used for %v", category),
		})
	case errors.Is(err, service.ErrCandidateNotFound):
		ctx.JSON(http.StatusBadRequest, response.VoteResult{
			Success: false,
			Message: "Candidate not found",
		})
	default:
		err = fmt.Errorf("v1.renderFinalErr -> h.svc.CastFinalVote -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func (h *FinalHandler) renderClaimErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMalformedToken):
		ctx.JSON(http.StatusBadRequest, response.VoteResult{
			Success: false,
			Message: "Token must be exactly 6 characters",
		})
	case errors.Is(err, service.ErrTokenNotFound):
		ctx.JSON(http.StatusBadRequest, response.VoteResult{
			Success: false,
			Message: "Invalid token",
		})
	case errors.Is(err, service.ErrTokenClaimedByOther):
		ctx.JSON(http.StatusBadRequest, response.VoteResult{
			Success: false,
			Message: "This token has already been used by another user.",
		})
	default:
		err = fmt.Errorf("v1.renderClaimErr -> h.svc.ClaimReward -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
