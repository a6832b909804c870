package file_test // Use _test suffix for test package

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbt "yolo/db/db"
	"yolo/db/file"
)

// setupTest creates a store rooted in a fresh temp directory for each test.
func setupTest(t *testing.T) (dbt.TravelDBWrapper, string) {
	dir := t.TempDir()
	db, err := file.NewFileTravelDBWrapper(dir)
	require.NoError(t, err)
	return db, dir
}

func TestSeedFallback(t *testing.T) {
	db, dir := setupTest(t)

	// Test 1: Missing FAQ and review files fall back to the seed content
	faqs, err := db.GetFAQs()
	assert.NoError(t, err)
	assert.Len(t, faqs, 5)

	reviews, err := db.GetReviews()
	assert.NoError(t, err)
	assert.Len(t, reviews, 3)

	// Test 2: The fallback is not written to disk by a read
	_, err = os.Stat(filepath.Join(dir, "yolo_faqs.json"))
	assert.True(t, os.IsNotExist(err))

	// Test 3: Users start empty, no seed
	_, err = db.GetUserByUsername("anyone")
	assert.ErrorIs(t, err, dbt.ErrNotFound)
}

func TestCorruptFileFallsBackToDefault(t *testing.T) {
	db, dir := setupTest(t)

	// Test 1: A corrupt FAQ file behaves like an absent one
	err := os.WriteFile(filepath.Join(dir, "yolo_faqs.json"), []byte("{not json"), 0o644)
	require.NoError(t, err)

	faqs, err := db.GetFAQs()
	assert.NoError(t, err)
	assert.Len(t, faqs, 5)

	// Test 2: A corrupt users file yields an empty collection
	err = os.WriteFile(filepath.Join(dir, "yolo_users.json"), []byte("garbage"), 0o644)
	require.NoError(t, err)

	user, err := db.CreateUser(&dbt.UserSignup{Username: "alice", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestUserPersistsAcrossReload(t *testing.T) {
	db, dir := setupTest(t)

	created, err := db.CreateUser(&dbt.UserSignup{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	// Test 1: A fresh wrapper over the same directory sees the user
	reopened, err := file.NewFileTravelDBWrapper(dir)
	require.NoError(t, err)

	user, err := reopened.GetUserByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "secret", user.Password)

	// Test 2: Duplicate check works against the persisted data
	_, err = reopened.CreateUser(&dbt.UserSignup{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, dbt.ErrDuplicateUsername)
}

func TestIDsResumeAfterReload(t *testing.T) {
	db, dir := setupTest(t)

	trip1, err := db.CreateTrip(&dbt.TripInput{
		UserID: 1, Destination: "서울", StartDate: "2026-09-01", EndDate: "2026-09-03",
		PeopleCount: 1, BudgetRange: "50만원", TravelStyle: "도시",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), trip1.ID)

	// Test 1: Ids continue after the highest persisted id
	reopened, err := file.NewFileTravelDBWrapper(dir)
	require.NoError(t, err)

	trip2, err := reopened.CreateTrip(&dbt.TripInput{
		UserID: 1, Destination: "부산", StartDate: "2026-10-01", EndDate: "2026-10-03",
		PeopleCount: 2, BudgetRange: "80만원", TravelStyle: "휴양",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), trip2.ID)

	// Test 2: Review ids continue after the seeded ones once a write happens
	review, err := reopened.CreateReview(&dbt.ReviewInput{
		UserID: 1, Title: "좋았어요", Content: "추천합니다", Rating: 4,
		Destination: "부산", Author: "alice",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), review.ID)
}

func TestTripUpdatePersists(t *testing.T) {
	db, dir := setupTest(t)

	trip, err := db.CreateTrip(&dbt.TripInput{
		UserID: 1, Destination: "제주도", StartDate: "2026-09-01", EndDate: "2026-09-05",
		PeopleCount: 2, BudgetRange: "100만원", TravelStyle: "휴양",
	})
	require.NoError(t, err)

	newDest := "여수"
	updated, err := db.UpdateTrip(trip.ID, &dbt.TripPatch{Destination: &newDest})
	assert.NoError(t, err)
	assert.Equal(t, "여수", updated.Destination)
	assert.Equal(t, trip.StartDate, updated.StartDate)

	// Test 1: The merge survives a reload
	reopened, err := file.NewFileTravelDBWrapper(dir)
	require.NoError(t, err)
	got, err := reopened.GetTrip(trip.ID)
	assert.NoError(t, err)
	assert.Equal(t, "여수", got.Destination)

	// Test 2: Updating a missing trip reports absence
	_, err = db.UpdateTrip(9999, &dbt.TripPatch{Destination: &newDest})
	assert.ErrorIs(t, err, dbt.ErrNotFound)
}

func TestBudgetByTrip(t *testing.T) {
	db, _ := setupTest(t)

	// Test 1: Absent budget is absence, not a zero record
	_, err := db.GetBudgetByTrip(5)
	assert.ErrorIs(t, err, dbt.ErrNotFound)

	_, err = db.CreateBudget(&dbt.BudgetInput{TripID: 5, Accommodation: 100})
	require.NoError(t, err)

	food := 50.0
	updated, err := db.UpdateBudget(5, &dbt.BudgetPatch{Food: &food})
	assert.NoError(t, err)
	assert.Equal(t, 100.0, updated.Accommodation)
	assert.Equal(t, 50.0, updated.Food)

	// Test 2: Inquiry status is forced to pending here too
	inquiry, err := db.CreateInquiry(&dbt.InquiryInput{Type: "일반문의", Content: "문의합니다"})
	assert.NoError(t, err)
	assert.Equal(t, dbt.InquiryStatusPending, inquiry.Status)
}
