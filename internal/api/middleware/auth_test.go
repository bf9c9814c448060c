package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaungzawhein/thadingyut-voting/internal/domain"
	"github.com/kaungzawhein/thadingyut-voting/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/protected", NewAuthenticator(testSigningKey).VerifySession(), func(ctx *gin.Context) {
		value, _ := ctx.Get(ClaimsKey)
		claims := value.(domain.Claims)
		ctx.JSON(http.StatusOK, gin.H{"subject_id": claims.SubjectID})
	})

	return router
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestVerifySession(t *testing.T) {
	t.Run("passes a valid session through with claims", func(t *testing.T) {
		router := newProtectedRouter(t)

		token, err := jwthelper.GenerateToken([]byte(testSigningKey), domain.Claims{SubjectID: "uid-1"}, "")
		require.NoError(t, err)

		recorder := get(router, "Bearer "+token)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "uid-1")
	})

	t.Run("no header is a 401", func(t *testing.T) {
		router := newProtectedRouter(t)

		recorder := get(router, "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing bearer prefix is a 401", func(t *testing.T) {
		router := newProtectedRouter(t)

		token, err := jwthelper.GenerateToken([]byte(testSigningKey), domain.Claims{SubjectID: "uid-1"}, "")
		require.NoError(t, err)

		recorder := get(router, token)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token signed with another key is a 401", func(t *testing.T) {
		router := newProtectedRouter(t)

		token, err := jwthelper.GenerateToken([]byte("another-key"), domain.Claims{SubjectID: "uid-1"}, "")
		require.NoError(t, err)

		recorder := get(router, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
