package auth_test

import (
	"net/http"
	"testing"

	"github.com/clubops/checkin-api/internal/auth"
	sharedError "github.com/clubops/checkin-api/internal/shared/error"
	"github.com/clubops/checkin-api/internal/shared/testutil"
	"github.com/clubops/checkin-api/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, token.Manager) {
	t.Helper()

	cfg := testutil.NewTestConfig()
	tokenManager := token.NewJWTManager(cfg)

	handler := auth.NewHandler(auth.NewService(cfg, tokenManager))

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", handler.Login)
	router.POST("/api/v1/auth/refresh", handler.Refresh)

	return router, tokenManager
}

func TestLogin_Success(t *testing.T) {
	// Given: the configured admin credentials
	router, tokenManager := setupTestEnvironment(t)

	// When: logging in
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "admin",
			Password: testutil.TestAdminPassword,
		},
	})

	// Then: a usable token pair comes back
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp auth.LoginResponse
	testutil.ParseResponse(t, recorder, &resp)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	claims, err := tokenManager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, token.ACCESS, claims.TokenType)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "admin",
			Password: "wrong-password",
		},
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
}

func TestLogin_WrongUsername(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "intruder",
			Password: testutil.TestAdminPassword,
		},
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
}

func TestLogin_ValidationError(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   map[string]string{"username": "admin"}, // no password
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRefresh_Success(t *testing.T) {
	// Given: a refresh token from a real login
	router, _ := setupTestEnvironment(t)

	loginRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "admin",
			Password: testutil.TestAdminPassword,
		},
	})
	require.Equal(t, http.StatusOK, loginRecorder.Code)

	var login auth.LoginResponse
	testutil.ParseResponse(t, loginRecorder, &login)

	// When: exchanging it
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/refresh",
		Body:   auth.RefreshRequest{RefreshToken: login.RefreshToken},
	})

	// Then: a fresh pair is issued
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp auth.LoginResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	// Given: an access token, which must not be usable for refresh
	router, _ := setupTestEnvironment(t)

	loginRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "admin",
			Password: testutil.TestAdminPassword,
		},
	})
	require.Equal(t, http.StatusOK, loginRecorder.Code)

	var login auth.LoginResponse
	testutil.ParseResponse(t, loginRecorder, &login)

	// When: presenting the access token as a refresh token
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/refresh",
		Body:   auth.RefreshRequest{RefreshToken: login.AccessToken},
	})

	// Then: rejected
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-004", errorResponse.Code)
}
