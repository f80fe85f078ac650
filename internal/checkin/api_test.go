package checkin_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/clubops/checkin-api/internal/checkin"
	"github.com/clubops/checkin-api/internal/model"
	sharedError "github.com/clubops/checkin-api/internal/shared/error"
	"github.com/clubops/checkin-api/internal/shared/testutil"
	"github.com/clubops/checkin-api/internal/store"
	"github.com/clubops/checkin-api/internal/store/gormstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for check-in tests
func setupTestEnvironment(t *testing.T) (store.Store, *gin.Engine) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	st := gormstore.NewWithDB(db)
	handler := checkin.NewHandler(checkin.NewService(st))

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/checkins", handler.Record)
	router.GET("/api/v1/sessions/:id/checkins", handler.List)

	return st, router
}

func seedSession(t *testing.T, st store.Store, title string) *model.Session {
	t.Helper()

	session := model.NewSession(title, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "Clubhouse")
	require.NoError(t, st.CreateSession(context.Background(), session))
	return session
}

func seedMember(t *testing.T, st store.Store, publicID, name string, number *int) *model.Member {
	t.Helper()

	member := model.NewMember(publicID, name, publicID+"@example.com", number)
	require.NoError(t, st.CreateMember(context.Background(), member))
	return member
}

func intPtr(n int) *int {
	return &n
}

func TestRecordCheckIn_Success(t *testing.T) {
	// Given: a session and a registered member
	st, router := setupTestEnvironment(t)
	session := seedSession(t, st, "Weekly Meetup")
	seedMember(t, st, "S-100", "Alice Park", intPtr(7))

	// When: the member checks in
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/checkins",
		Body:   checkin.CheckInRequest{SessionID: session.ID, PublicID: "S-100"},
	})

	// Then: success outcome with the member and session echoed back
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp checkin.CheckInResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.Equal(t, checkin.StatusSuccess, resp.Status)
	assert.Equal(t, "Alice Park", resp.MemberName)
	assert.Equal(t, "S-100", resp.PublicID)
	assert.Equal(t, "Weekly Meetup", resp.SessionTitle)
	assert.NotEmpty(t, resp.Time)
}

func TestRecordCheckIn_SecondAttemptReportsAlreadyCheckedIn(t *testing.T) {
	// Given: a member who already checked in
	st, router := setupTestEnvironment(t)
	session := seedSession(t, st, "Weekly Meetup")
	seedMember(t, st, "S-100", "Alice Park", intPtr(7))

	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/checkins",
		Body:   checkin.CheckInRequest{SessionID: session.ID, PublicID: "S-100"},
	}
	first := testutil.ExecuteRequest(t, router, request)
	require.Equal(t, http.StatusOK, first.Code)

	// When: the same member submits again
	second := testutil.ExecuteRequest(t, router, request)

	// Then: the retry is reported, not recorded twice
	assert.Equal(t, http.StatusOK, second.Code)

	var resp checkin.CheckInResponse
	testutil.ParseResponse(t, second, &resp)
	assert.Equal(t, checkin.StatusAlreadyCheckedIn, resp.Status)
	assert.Equal(t, "Alice Park", resp.MemberName)

	records, err := st.ListCheckIns(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordCheckIn_NonMember(t *testing.T) {
	// Given: a session but no member for the submitted id
	st, router := setupTestEnvironment(t)
	session := seedSession(t, st, "Weekly Meetup")

	// When: an unknown public id checks in
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/checkins",
		Body:   checkin.CheckInRequest{SessionID: session.ID, PublicID: "S-999"},
	})

	// Then: non-member outcome, nothing recorded
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp checkin.CheckInResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.Equal(t, checkin.StatusNonMember, resp.Status)
	assert.Contains(t, resp.Message, "S-999")

	records, err := st.ListCheckIns(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordCheckIn_UnknownSession(t *testing.T) {
	// Given: a member but no such session
	st, router := setupTestEnvironment(t)
	seedMember(t, st, "S-100", "Alice Park", intPtr(7))

	// When: checking in against a missing session id
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/checkins",
		Body:   checkin.CheckInRequest{SessionID: "no-such-session", PublicID: "S-100"},
	})

	// Then: a real error, not a business outcome
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "SESSION-001", errorResponse.Code)
}

func TestRecordCheckIn_TrimsPublicID(t *testing.T) {
	// Given: a registered member
	st, router := setupTestEnvironment(t)
	session := seedSession(t, st, "Weekly Meetup")
	seedMember(t, st, "S-100", "Alice Park", nil)

	// When: the kiosk submits the id with surrounding whitespace
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/checkins",
		Body:   map[string]string{"sessionId": session.ID, "publicId": "  S-100  "},
	})

	// Then: the member is still matched
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp checkin.CheckInResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.Equal(t, checkin.StatusSuccess, resp.Status)
	assert.Equal(t, "S-100", resp.PublicID)
}

func TestRecordCheckIn_ValidationErrors(t *testing.T) {
	_, router := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		requestBody map[string]string
	}{
		{
			name:        "Missing sessionId",
			requestBody: map[string]string{"publicId": "S-100"},
		},
		{
			name:        "Missing publicId",
			requestBody: map[string]string{"sessionId": "some-session"},
		},
		{
			name:        "Public id too short",
			requestBody: map[string]string{"sessionId": "some-session", "publicId": "x"},
		},
		{
			name:        "Public id with inner whitespace",
			requestBody: map[string]string{"sessionId": "some-session", "publicId": "S 100"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/checkins",
				Body:   tc.requestBody,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestListCheckIns_DescendingWithOneBasedIndex(t *testing.T) {
	// Given: three check-ins recorded at distinct times
	st, router := setupTestEnvironment(t)
	session := seedSession(t, st, "Weekly Meetup")

	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	names := []string{"Alice Park", "Ben Cho", "Carol Lim"}
	for i, name := range names {
		member := seedMember(t, st, fmt.Sprintf("S-10%d", i), name, intPtr(i+1))
		record := &model.CheckIn{
			SessionID:   session.ID,
			MemberID:    member.ID,
			PublicID:    member.PublicID,
			DisplayName: member.DisplayName,
			RecordedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, st.CreateCheckIn(context.Background(), record))
	}

	// When: listing the session's check-ins
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/sessions/" + session.ID + "/checkins",
	})

	// Then: most recent first, index counting from 1
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp checkin.ListCheckInsResponse
	testutil.ParseResponse(t, recorder, &resp)
	require.Len(t, resp.CheckIns, 3)

	assert.Equal(t, 1, resp.CheckIns[0].Index)
	assert.Equal(t, "Carol Lim", resp.CheckIns[0].Name)
	assert.Equal(t, 2, resp.CheckIns[1].Index)
	assert.Equal(t, "Ben Cho", resp.CheckIns[1].Name)
	assert.Equal(t, 3, resp.CheckIns[2].Index)
	assert.Equal(t, "Alice Park", resp.CheckIns[2].Name)
}

func TestListCheckIns_UnknownSession(t *testing.T) {
	_, router := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/sessions/no-such-session/checkins",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "SESSION-001", errorResponse.Code)
}
