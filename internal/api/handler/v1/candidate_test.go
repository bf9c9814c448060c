package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaungzawhein/thadingyut-voting/internal/api/handler/v1/response"
	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
)

type fakeCandidateService struct {
	kings    []domain.Candidate
	queens   []domain.Candidate
	lanterns []domain.Candidate
	err      error
}

func (f *fakeCandidateService) ListCandidates(_ context.Context) ([]domain.Candidate, []domain.Candidate, error) {
	return f.kings, f.queens, f.err
}

func (f *fakeCandidateService) ListLanterns(_ context.Context) ([]domain.Candidate, error) {
	return f.lanterns, f.err
}

func (f *fakeCandidateService) Results(_ context.Context) ([]domain.Candidate, []domain.Candidate, error) {
	return f.kings, f.queens, f.err
}

func newGetRequest(t *testing.T, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func newCandidateTestRouter(svc CandidateService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewCandidateHandler(svc)
	router.GET("/api/v1/candidates", handler.HandleGetCandidates)
	router.GET("/api/v1/lanterns", handler.HandleGetLanterns)
	router.GET("/api/v1/results", handler.HandleGetResults)

	return router
}

func TestHandleGetCandidates(t *testing.T) {
	svc := &fakeCandidateService{
		kings:  []domain.Candidate{{ID: 1, Name: "Aung", Batch: "2020"}},
		queens: []domain.Candidate{{ID: 2, Name: "Su", Batch: "2021"}, {ID: 3, Name: "Mya", Batch: "2022"}},
	}
	router := newCandidateTestRouter(svc)

	recorder := serve(router, newGetRequest(t, "/api/v1/candidates"))

	require.Equal(t, http.StatusOK, recorder.Code)

	var result response.CandidatesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Len(t, result.Kings, 1)
	assert.Len(t, result.Queens, 2)
}

func TestHandleGetLanterns(t *testing.T) {
	svc := &fakeCandidateService{
		lanterns: []domain.Candidate{{ID: 4, Name: "Sky Lantern"}},
	}
	router := newCandidateTestRouter(svc)

	recorder := serve(router, newGetRequest(t, "/api/v1/lanterns"))

	require.Equal(t, http.StatusOK, recorder.Code)

	var result response.LanternsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.Len(t, result.Lanterns, 1)
	assert.Equal(t, "Sky Lantern", result.Lanterns[0].Name)
}

func TestHandleGetResults(t *testing.T) {
	t.Run("returns standings", func(t *testing.T) {
		svc := &fakeCandidateService{
			kings: []domain.Candidate{
				{ID: 1, Name: "Aung", VoteCount: 12},
				{ID: 2, Name: "Kyaw", VoteCount: 7},
			},
		}
		router := newCandidateTestRouter(svc)

		recorder := serve(router, newGetRequest(t, "/api/v1/results"))

		require.Equal(t, http.StatusOK, recorder.Code)

		var result response.CandidatesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		require.Len(t, result.Kings, 2)
		assert.Equal(t, 12, result.Kings[0].VoteCount)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		svc := &fakeCandidateService{err: errors.New("connection refused")}
		router := newCandidateTestRouter(svc)

		recorder := serve(router, newGetRequest(t, "/api/v1/results"))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
