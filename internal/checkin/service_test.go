package checkin_test

import (
	"context"
	"sync"
	"testing"

	"github.com/clubops/checkin-api/internal/checkin"
	"github.com/clubops/checkin-api/internal/shared/testutil"
	"github.com/clubops/checkin-api/internal/store/gormstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecordCheckIn_ConcurrentAttemptsYieldOneSuccess drives the same
// (session, member) pair from many goroutines at once. The store's atomic
// conditional create must let exactly one attempt through; everyone else gets
// the already-checked-in outcome, and exactly one record exists afterwards.
func TestRecordCheckIn_ConcurrentAttemptsYieldOneSuccess(t *testing.T) {
	// Given: one session, one member, one service over a shared store
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	st := gormstore.NewWithDB(db)
	service := checkin.NewService(st)

	session := seedSession(t, st, "Weekly Meetup")
	seedMember(t, st, "S-100", "Alice Park", intPtr(7))

	// When: many concurrent check-in attempts for the same pair
	const attempts = 8

	var wg sync.WaitGroup
	statuses := make([]string, attempts)
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := service.RecordCheckIn(context.Background(), session.ID, "S-100")
			if err != nil {
				errs[i] = err
				return
			}
			statuses[i] = result.Status
		}(i)
	}
	wg.Wait()

	// Then: exactly one success, the rest reported as duplicates
	successes := 0
	duplicates := 0
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		switch statuses[i] {
		case checkin.StatusSuccess:
			successes++
		case checkin.StatusAlreadyCheckedIn:
			duplicates++
		default:
			t.Fatalf("unexpected status %q", statuses[i])
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, duplicates)

	records, err := st.ListCheckIns(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
