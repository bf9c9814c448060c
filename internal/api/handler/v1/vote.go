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

type VotingService interface {
	CastVote(ctx context.Context, subjectID string, category domain.Category, candidateID uint) error
	CastLanternVote(ctx context.Context, subjectID string, lanternID uint) error
	GetVotes(ctx context.Context, subjectID string) ([]domain.Vote, error)
}

type VoteHandler struct {
	svc VotingService
}

func NewVoteHandler(svc VotingService) *VoteHandler {
	return &VoteHandler{
		svc: svc,
	}
}

// HandleCastVote godoc
// @Summary      Cast a main-round vote
// @Description  Records one vote per category for the authenticated subject
// @Tags         votes
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        candidate_id  formData  int     true  "Candidate ID"
// @Param        category      formData  string  true  "king, queen or lantern"
// @Success      200  {object}  response.VoteResult
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /votes [post]
// @Security     BearerAuth
func (h *VoteHandler) HandleCastVote(ctx *gin.Context) {
	claims, respErr := claimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CastVoteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category := domain.Category(req.Category)
	if err := h.svc.CastVote(ctx.Request.Context(), claims.SubjectID, category, req.CandidateID); err != nil {
		h.renderVoteErr(ctx, category, err)
		return
	}

	ctx.JSON(http.StatusOK, response.VoteResult{
		Success: true,
		Message: fmt.Sprintf("%v vote recorded successfully!", titleCase(req.Category)),
	})
}

// HandleCastLanternVote godoc
// @Summary      Cast a lantern vote
// @Description  Records the authenticated subject's lantern vote. An optional token field is accepted and ignored.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        request  body  request.LanternVoteRequest  true  "request body"
// @Success      200  {object}  response.VoteResult
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /votes/lantern [post]
// @Security     BearerAuth
func (h *VoteHandler) HandleCastLanternVote(ctx *gin.Context) {
	claims, respErr := claimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.LanternVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.CastLanternVote(ctx.Request.Context(), claims.SubjectID, req.LanternID); err != nil {
		h.renderVoteErr(ctx, domain.CategoryLantern, err)
		return
	}

	ctx.JSON(http.StatusOK, response.VoteResult{
		Success: true,
		Message: "Lantern vote recorded successfully!",
	})
}

// HandleGetMyVotes godoc
// @Summary      List the authenticated subject's votes
// @Description  Which categories the subject has already voted in, used by the voting pages
// @Tags         votes
// @Produce      json
// @Success      200  {object}  response.MyVotesResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /votes [get]
// @Security     BearerAuth
func (h *VoteHandler) HandleGetMyVotes(ctx *gin.Context) {
	claims, respErr := claimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	votes, err := h.svc.GetVotes(ctx.Request.Context(), claims.SubjectID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyVotes -> h.svc.GetVotes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MyVotesResponse{
		Votes: votes,
	})
}

// renderVoteErr maps vote failures to the structured envelope. The
// envelope is returned with 200 for expected outcomes, matching the
// page scripts that read the success flag.
func (h *VoteHandler) renderVoteErr(ctx *gin.Context, category domain.Category, err error) {
	switch {
	case errors.Is(err, service.ErrAlreadyVoted):
		ctx.JSON(http.StatusOK, response.VoteResult{
			Success: false,
			Message: fmt.Sprintf("You have already voted for a %v!", category),
		})
	case errors.Is(err, service.ErrCandidateNotFound):
		ctx.JSON(http.StatusOK, response.VoteResult{
			Success: false,
			Message: "Candidate not found",
		})
	case errors.Is(err, service.ErrInvalidCategory):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidCategory))
	default:
		err = fmt.Errorf("v1.renderVoteErr -> h.svc.CastVote -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
