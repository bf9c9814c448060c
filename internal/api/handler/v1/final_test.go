package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaungzawhein/thadingyut-voting/internal/api/handler/v1/response"
	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
	"github.com/kaungzawhein/thadingyut-voting/internal/service"
)

type fakeFinalService struct {
	voteErr error

	claimReward  string
	claimAlready bool
	claimErr     error

	status    domain.FinalToken
	statusErr error

	kings   []domain.FinalCandidate
	queens  []domain.FinalCandidate
	listErr error

	gotSubject   string
	gotToken     string
	gotCategory  domain.Category
	gotCandidate uint
}

func (f *fakeFinalService) CastFinalVote(_ context.Context, subjectID, rawToken string, category domain.Category, candidateID uint) error {
	f.gotSubject = subjectID
	f.gotToken = rawToken
	f.gotCategory = category
	f.gotCandidate = candidateID
	return f.voteErr
}

func (f *fakeFinalService) ClaimReward(_ context.Context, subjectID, rawToken string) (string, bool, error) {
	f.gotSubject = subjectID
	f.gotToken = rawToken
	return f.claimReward, f.claimAlready, f.claimErr
}

func (f *fakeFinalService) TokenStatus(_ context.Context, rawToken string) (domain.FinalToken, error) {
	f.gotToken = rawToken
	return f.status, f.statusErr
}

func (f *fakeFinalService) FinalCandidates(_ context.Context) ([]domain.FinalCandidate, []domain.FinalCandidate, error) {
	return f.kings, f.queens, f.listErr
}

func newFinalTestRouter(svc FinalService, subjectID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewFinalHandler(svc)
	group := router.Group("/api/v1")
	if subjectID != "" {
		group.Use(injectClaims(subjectID))
	}
	group.POST("/votes/final", handler.HandleFinalVote)
	group.POST("/tokens/status", handler.HandleTokenStatus)
	group.POST("/rewards/claim", handler.HandleClaimReward)
	router.GET("/api/v1/final-candidates", handler.HandleGetFinalCandidates)

	return router
}

func TestHandleFinalVote(t *testing.T) {
	t.Run("records a final vote", func(t *testing.T) {
		svc := &fakeFinalService{}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/votes/final", `{"token": "AB12CD", "category": "king", "candidate_id": 4}`)

		require.Equal(t, http.StatusOK, recorder.Code)
		result := decodeVoteResult(t, recorder)
		assert.True(t, result.Success)
		assert.Equal(t, "Your vote for king has been recorded.", result.Message)
		assert.Equal(t, "uid-1", svc.gotSubject)
		assert.Equal(t, domain.CategoryKing, svc.gotCategory)
		assert.Equal(t, uint(4), svc.gotCandidate)
	})

	t.Run("consumed slot", func(t *testing.T) {
		svc := &fakeFinalService{voteErr: service.ErrTokenUsed}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/votes/final", `{"token": "AB12CD", "category": "queen", "candidate_id": 2}`)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		result := decodeVoteResult(t, recorder)
		assert.False(t, result.Success)
		assert.Equal(t, "Token already used for queen", result.Message)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := &fakeFinalService{voteErr: service.ErrTokenNotFound}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/votes/final", `{"token": "ZZZZZZ", "category": "king", "candidate_id": 1}`)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		result := decodeVoteResult(t, recorder)
		assert.False(t, result.Success)
		assert.Equal(t, "Invalid token", result.Message)
	})

	t.Run("malformed token never reaches the service", func(t *testing.T) {
		svc := &fakeFinalService{}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/votes/final", `{"token": "AB", "category": "king", "candidate_id": 1}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Empty(t, svc.gotToken)
	})

	t.Run("votable category without a candidate is a 400", func(t *testing.T) {
		svc := &fakeFinalService{}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/votes/final", `{"token": "AB12CD", "category": "king"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("reward category needs no candidate", func(t *testing.T) {
		svc := &fakeFinalService{}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/votes/final", `{"token": "AB12CD", "category": "reward"}`)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, domain.CategoryReward, svc.gotCategory)
	})

	t.Run("no session claims is a 401", func(t *testing.T) {
		svc := &fakeFinalService{}
		router := newFinalTestRouter(svc, "")

		recorder := postJSON(t, router, "/api/v1/votes/final", `{"token": "AB12CD", "category": "king", "candidate_id": 1}`)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestHandleClaimReward(t *testing.T) {
	decodeClaim := func(t *testing.T, body []byte) response.RewardClaimResult {
		t.Helper()
		var result response.RewardClaimResult
		require.NoError(t, json.Unmarshal(body, &result))
		return result
	}

	t.Run("first claim", func(t *testing.T) {
		svc := &fakeFinalService{claimReward: "5000MMK"}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/rewards/claim", `{"token": "ab12cd"}`)

		require.Equal(t, http.StatusOK, recorder.Code)
		result := decodeClaim(t, recorder.Body.Bytes())
		assert.True(t, result.Success)
		assert.Equal(t, "Token verified successfully.", result.Message)
		assert.Equal(t, "5000MMK", result.RewardValue)
		assert.Equal(t, "AB12CD", result.Token)
	})

	t.Run("repeat view by the original claimant", func(t *testing.T) {
		svc := &fakeFinalService{claimReward: "5000MMK", claimAlready: true}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/rewards/claim", `{"token": "AB12CD"}`)

		require.Equal(t, http.StatusOK, recorder.Code)
		result := decodeClaim(t, recorder.Body.Bytes())
		assert.True(t, result.Success)
		assert.Equal(t, "Already claimed. Showing your reward.", result.Message)
		assert.Equal(t, "5000MMK", result.RewardValue)
	})

	t.Run("claimed by another subject", func(t *testing.T) {
		svc := &fakeFinalService{claimErr: service.ErrTokenClaimedByOther}
		router := newFinalTestRouter(svc, "uid-2")

		recorder := postJSON(t, router, "/api/v1/rewards/claim", `{"token": "AB12CD"}`)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		result := decodeVoteResult(t, recorder)
		assert.False(t, result.Success)
		assert.Equal(t, "This token has already been used by another user.", result.Message)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := &fakeFinalService{claimErr: service.ErrTokenNotFound}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/rewards/claim", `{"token": "ZZZZZZ"}`)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		result := decodeVoteResult(t, recorder)
		assert.Equal(t, "Invalid token", result.Message)
	})
}

func TestHandleTokenStatus(t *testing.T) {
	t.Run("reports spent slots", func(t *testing.T) {
		svc := &fakeFinalService{status: domain.FinalToken{
			Token: "AB12CD",
			King:  domain.TokenSlot{Used: true},
		}}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/tokens/status", `{"token": "ab12cd"}`)

		require.Equal(t, http.StatusOK, recorder.Code)

		var result response.TokenStatusResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Equal(t, "AB12CD", result.Token)
		assert.True(t, result.KingUsed)
		assert.False(t, result.QueenUsed)
		assert.False(t, result.RewardUsed)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := &fakeFinalService{statusErr: service.ErrTokenNotFound}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/tokens/status", `{"token": "ZZZZZZ"}`)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		result := decodeVoteResult(t, recorder)
		assert.Equal(t, "Invalid token", result.Message)
	})

	t.Run("malformed token is a 400", func(t *testing.T) {
		svc := &fakeFinalService{}
		router := newFinalTestRouter(svc, "uid-1")

		recorder := postJSON(t, router, "/api/v1/tokens/status", `{"token": "nope"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandleGetFinalCandidates(t *testing.T) {
	svc := &fakeFinalService{
		kings:  []domain.FinalCandidate{{ID: 1, Name: "Aung", Batch: "2020"}},
		queens: []domain.FinalCandidate{{ID: 2, Name: "Su", Batch: "2021"}},
	}
	router := newFinalTestRouter(svc, "")

	req := newGetRequest(t, "/api/v1/final-candidates")
	recorder := serve(router, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var result response.FinalCandidatesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.Len(t, result.Kings, 1)
	require.Len(t, result.Queens, 1)
	assert.Equal(t, "Aung", result.Kings[0].Name)
}
