package roster_test

import (
	"net/http"
	"testing"

	"github.com/clubops/checkin-api/internal/roster"
	sharedError "github.com/clubops/checkin-api/internal/shared/error"
	"github.com/clubops/checkin-api/internal/shared/middleware"
	"github.com/clubops/checkin-api/internal/shared/testutil"
	"github.com/clubops/checkin-api/internal/store/gormstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment wires the roster handler behind the same JWT guard the
// real router uses, and returns a valid admin token alongside.
func setupTestEnvironment(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	cfg := testutil.NewTestConfig()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	st := gormstore.NewWithDB(db)
	handler := roster.NewHandler(roster.NewService(st))

	router := testutil.SetupTestRouter()

	adminV1 := router.Group("/api/v1")
	adminV1.Use(middleware.JWT(cfg))
	{
		adminV1.GET("/members", handler.ListMembers)
		adminV1.POST("/members", handler.CreateMember)
		adminV1.PUT("/members/:id", handler.UpdateMember)
		adminV1.DELETE("/members/:id", handler.DeleteMember)

		adminV1.POST("/sessions", handler.CreateSession)
		adminV1.PUT("/sessions/:id", handler.UpdateSession)
		adminV1.DELETE("/sessions/:id", handler.DeleteSession)
	}

	router.GET("/api/v1/sessions", handler.ListSessions)

	return router, testutil.AdminAccessToken(t, cfg)
}

func intPtr(n int) *int {
	return &n
}

func createMember(t *testing.T, router *gin.Engine, token string, req roster.CreateMemberRequest) roster.MemberResponse {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members",
		Body:   req,
		Token:  token,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp roster.MemberResponse
	testutil.ParseResponse(t, recorder, &resp)
	return resp
}

func TestCreateMember_Success(t *testing.T) {
	router, token := setupTestEnvironment(t)

	resp := createMember(t, router, token, roster.CreateMemberRequest{
		PublicID:     "S-100",
		DisplayName:  "Alice Park",
		ContactEmail: "alice@example.com",
		MemberNumber: intPtr(7),
	})

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "S-100", resp.PublicID)
	assert.Equal(t, "Alice Park", resp.DisplayName)
	require.NotNil(t, resp.MemberNumber)
	assert.Equal(t, 7, *resp.MemberNumber)
}

func TestCreateMember_DuplicatePublicID(t *testing.T) {
	router, token := setupTestEnvironment(t)

	createMember(t, router, token, roster.CreateMemberRequest{
		PublicID:     "S-100",
		DisplayName:  "Alice Park",
		ContactEmail: "alice@example.com",
	})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members",
		Body: roster.CreateMemberRequest{
			PublicID:     "S-100", // same public id
			DisplayName:  "Another Alice",
			ContactEmail: "other@example.com",
		},
		Token: token,
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-002", errorResponse.Code)
}

func TestCreateMember_DuplicateMemberNumber(t *testing.T) {
	router, token := setupTestEnvironment(t)

	createMember(t, router, token, roster.CreateMemberRequest{
		PublicID:     "S-100",
		DisplayName:  "Alice Park",
		ContactEmail: "alice@example.com",
		MemberNumber: intPtr(7),
	})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members",
		Body: roster.CreateMemberRequest{
			PublicID:     "S-200",
			DisplayName:  "Ben Cho",
			ContactEmail: "ben@example.com",
			MemberNumber: intPtr(7), // same club number
		},
		Token: token,
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-003", errorResponse.Code)
}

func TestCreateMember_NumberlessMembersMayCoexist(t *testing.T) {
	router, token := setupTestEnvironment(t)

	createMember(t, router, token, roster.CreateMemberRequest{
		PublicID:     "S-100",
		DisplayName:  "Alice Park",
		ContactEmail: "alice@example.com",
	})
	createMember(t, router, token, roster.CreateMemberRequest{
		PublicID:     "S-200",
		DisplayName:  "Ben Cho",
		ContactEmail: "ben@example.com",
	})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members",
		Token:  token,
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp roster.ListMembersResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.Len(t, resp.Members, 2)
}

func TestListMembers_RosterOrder(t *testing.T) {
	// Given: members created out of order, one without a number
	router, token := setupTestEnvironment(t)

	createMember(t, router, token, roster.CreateMemberRequest{
		PublicID: "S-300", DisplayName: "Carol Lim", ContactEmail: "carol@example.com",
	})
	createMember(t, router, token, roster.CreateMemberRequest{
		PublicID: "S-200", DisplayName: "Ben Cho", ContactEmail: "ben@example.com", MemberNumber: intPtr(2),
	})
	createMember(t, router, token, roster.CreateMemberRequest{
		PublicID: "S-100", DisplayName: "Alice Park", ContactEmail: "alice@example.com", MemberNumber: intPtr(1),
	})

	// When: listing the roster
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members",
		Token:  token,
	})

	// Then: number ascending, numberless last
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp roster.ListMembersResponse
	testutil.ParseResponse(t, recorder, &resp)
	require.Len(t, resp.Members, 3)
	assert.Equal(t, "Alice Park", resp.Members[0].DisplayName)
	assert.Equal(t, "Ben Cho", resp.Members[1].DisplayName)
	assert.Equal(t, "Carol Lim", resp.Members[2].DisplayName)
}

func TestUpdateMember_Success(t *testing.T) {
	router, token := setupTestEnvironment(t)

	created := createMember(t, router, token, roster.CreateMemberRequest{
		PublicID:     "S-100",
		DisplayName:  "Alice Park",
		ContactEmail: "alice@example.com",
		MemberNumber: intPtr(7),
	})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/" + created.ID,
		Body: roster.UpdateMemberRequest{
			PublicID:     "S-100",
			DisplayName:  "Alice Kim",
			ContactEmail: "alice.kim@example.com",
			// number cleared
		},
		Token: token,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp roster.MemberResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.Equal(t, "Alice Kim", resp.DisplayName)
	assert.Nil(t, resp.MemberNumber)
}

func TestUpdateMember_NotFound(t *testing.T) {
	router, token := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/no-such-member",
		Body: roster.UpdateMemberRequest{
			PublicID:     "S-100",
			DisplayName:  "Alice Park",
			ContactEmail: "alice@example.com",
		},
		Token: token,
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestDeleteMember_Success(t *testing.T) {
	router, token := setupTestEnvironment(t)

	created := createMember(t, router, token, roster.CreateMemberRequest{
		PublicID:     "S-100",
		DisplayName:  "Alice Park",
		ContactEmail: "alice@example.com",
	})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/" + created.ID,
		Token:  token,
	})
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	list := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members",
		Token:  token,
	})

	var resp roster.ListMembersResponse
	testutil.ParseResponse(t, list, &resp)
	assert.Empty(t, resp.Members)
}

func TestSessionLifecycle(t *testing.T) {
	router, token := setupTestEnvironment(t)

	// Create
	createRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/sessions",
		Body: roster.CreateSessionRequest{
			Title:    "Weekly Meetup",
			Date:     "2026-03-01",
			Location: "Clubhouse",
		},
		Token: token,
	})
	require.Equal(t, http.StatusCreated, createRecorder.Code)

	var created roster.SessionResponse
	testutil.ParseResponse(t, createRecorder, &created)
	assert.Equal(t, "2026-03-01", created.Date)

	// Update
	updateRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/sessions/" + created.ID,
		Body: roster.UpdateSessionRequest{
			Title:    "Monthly Meetup",
			Date:     "2026-04-01",
			Location: "Annex",
		},
		Token: token,
	})
	assert.Equal(t, http.StatusOK, updateRecorder.Code)

	var updated roster.SessionResponse
	testutil.ParseResponse(t, updateRecorder, &updated)
	assert.Equal(t, "Monthly Meetup", updated.Title)
	assert.Equal(t, "2026-04-01", updated.Date)

	// Delete
	deleteRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/sessions/" + created.ID,
		Token:  token,
	})
	assert.Equal(t, http.StatusNoContent, deleteRecorder.Code)

	list := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/sessions",
	})

	var sessions roster.ListSessionsResponse
	testutil.ParseResponse(t, list, &sessions)
	assert.Empty(t, sessions.Sessions)
}

func TestListSessions_MostRecentFirst(t *testing.T) {
	router, token := setupTestEnvironment(t)

	for _, date := range []string{"2026-01-15", "2026-03-01", "2026-02-10"} {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodPost,
			URL:    "/api/v1/sessions",
			Body:   roster.CreateSessionRequest{Title: "Meetup " + date, Date: date},
			Token:  token,
		})
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	list := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/sessions",
	})
	assert.Equal(t, http.StatusOK, list.Code)

	var resp roster.ListSessionsResponse
	testutil.ParseResponse(t, list, &resp)
	require.Len(t, resp.Sessions, 3)
	assert.Equal(t, "2026-03-01", resp.Sessions[0].Date)
	assert.Equal(t, "2026-02-10", resp.Sessions[1].Date)
	assert.Equal(t, "2026-01-15", resp.Sessions[2].Date)
}

func TestCreateSession_InvalidDate(t *testing.T) {
	router, token := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/sessions",
		Body:   roster.CreateSessionRequest{Title: "Weekly Meetup", Date: "03/01/2026"},
		Token:  token,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAdminGuard_RejectsAnonymousAndBadTokens(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "No token", token: ""},
		{name: "Garbage token", token: "not-a-jwt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/members",
				Body: roster.CreateMemberRequest{
					PublicID:     "S-100",
					DisplayName:  "Alice Park",
					ContactEmail: "alice@example.com",
				},
				Token: tc.token,
			})

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}
