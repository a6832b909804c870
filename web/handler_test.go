package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbt "yolo/db/db"
	"yolo/db/mem"
	"yolo/mq/goch"
	"yolo/mq/mq"
)

// setupRouter wires the routes over a fresh in-memory store, the same way
// Serve does but without middleware and without binding a port.
func setupRouter() (*gin.Engine, dbt.TravelDBWrapper, mq.InquiryMessageQueueWrapper) {
	gin.SetMode(gin.TestMode)
	store := mem.NewInMemoryTravelDBWrapper()
	queue := goch.NewGoChanInquiryMessageQueueWrapper()
	r := gin.New()
	registerRoutes(r, NewHandler(store, queue))
	return r, store, queue
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	r, _, _ := setupRouter()

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSignupAndLogin(t *testing.T) {
	r, _, _ := setupRouter()

	// Test 1: Signup returns id and username, never the password
	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{"username": "alice", "password": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)

	var signupResp map[string]any
	decode(t, w, &signupResp)
	assert.Equal(t, "alice", signupResp["username"])
	assert.NotZero(t, signupResp["id"])
	assert.NotContains(t, signupResp, "password")

	// Test 2: A taken username is rejected with the specific message
	w = doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{"username": "alice", "password": "other"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var conflictResp map[string]any
	decode(t, w, &conflictResp)
	assert.Equal(t, "이미 존재하는 아이디입니다", conflictResp["message"])

	// Test 3: Missing fields fail validation
	w = doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test 4: Login succeeds with the right password
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "alice", "password": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)
	var loginResp map[string]any
	decode(t, w, &loginResp)
	assert.Equal(t, "alice", loginResp["username"])
	assert.Equal(t, signupResp["id"], loginResp["id"])

	// Test 5: Wrong password and unknown user are both 401
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "nobody", "password": "secret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Test 6: Missing credentials are 400
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func validTripBody() gin.H {
	return gin.H{
		"userId":      1,
		"destination": "제주도",
		"startDate":   "2026-09-01",
		"endDate":     "2026-09-05",
		"peopleCount": 2,
		"budgetRange": "100-200만원",
		"travelStyle": "휴양",
	}
}

func TestTripRoutes(t *testing.T) {
	r, _, _ := setupRouter()

	// Test 1: Create a trip
	w := doJSON(t, r, http.MethodPost, "/api/trips", validTripBody())
	assert.Equal(t, http.StatusOK, w.Code)
	var trip dbt.Trip
	decode(t, w, &trip)
	assert.Positive(t, trip.ID)
	assert.Equal(t, "제주도", trip.Destination)

	// Test 2: Missing required fields are a 400
	w = doJSON(t, r, http.MethodPost, "/api/trips", gin.H{"destination": "제주도"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test 3: Fetch it back
	w = doJSON(t, r, http.MethodGet, "/api/trips/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Test 4: Unknown and malformed ids are both 404
	w = doJSON(t, r, http.MethodGet, "/api/trips/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/trips/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Test 5: Partial update only changes the sent fields
	w = doJSON(t, r, http.MethodPut, "/api/trips/1", gin.H{"destination": "부산"})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated dbt.Trip
	decode(t, w, &updated)
	assert.Equal(t, "부산", updated.Destination)
	assert.Equal(t, trip.StartDate, updated.StartDate)
	assert.Equal(t, trip.PeopleCount, updated.PeopleCount)

	// Test 6: Updating a missing trip is a 404
	w = doJSON(t, r, http.MethodPut, "/api/trips/999", gin.H{"destination": "부산"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Test 7: Listing by user returns the trip; unknown user gets an empty array
	w = doJSON(t, r, http.MethodGet, "/api/users/1/trips", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var trips []dbt.Trip
	decode(t, w, &trips)
	assert.Len(t, trips, 1)

	w = doJSON(t, r, http.MethodGet, "/api/users/42/trips", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBudgetRoutes(t *testing.T) {
	r, _, _ := setupRouter()

	// Test 1: No budget yet means 404, not a zero record
	w := doJSON(t, r, http.MethodGet, "/api/trips/5/budget", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Test 2: Create then partial-update merges
	w = doJSON(t, r, http.MethodPost, "/api/budgets", gin.H{"tripId": 5, "accommodation": 100})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/trips/5/budget", gin.H{"food": 50})
	assert.Equal(t, http.StatusOK, w.Code)
	var b dbt.Budget
	decode(t, w, &b)
	assert.Equal(t, 100.0, b.Accommodation)
	assert.Equal(t, 50.0, b.Food)
	assert.Equal(t, 0.0, b.Transport)

	// Test 3: Updating a trip without a budget is a 404
	w = doJSON(t, r, http.MethodPut, "/api/trips/6/budget", gin.H{"food": 50})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Test 4: Summary computes totals; people count falls back to 1 when the
	// trip record is missing
	w = doJSON(t, r, http.MethodGet, "/api/trips/5/budget/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var summary map[string]any
	decode(t, w, &summary)
	assert.Equal(t, 150.0, summary["total"])
	assert.Equal(t, 150.0, summary["perPerson"])
}

func TestBudgetSummaryUsesTripPeopleCount(t *testing.T) {
	r, _, _ := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/trips", validTripBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/budgets", gin.H{"tripId": 1, "accommodation": 600, "food": 400})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/trips/1/budget/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var summary map[string]any
	decode(t, w, &summary)
	assert.Equal(t, 1000.0, summary["total"])
	assert.Equal(t, 500.0, summary["perPerson"])
}

func TestReviewRoutes(t *testing.T) {
	r, _, _ := setupRouter()

	// Test 1: Seeded reviews come back newest first
	w := doJSON(t, r, http.MethodGet, "/api/reviews", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var reviews []dbt.Review
	decode(t, w, &reviews)
	assert.Len(t, reviews, 3)
	for i := 1; i < len(reviews); i++ {
		assert.False(t, reviews[i-1].CreatedAt.Before(reviews[i].CreatedAt))
	}

	// Test 2: A new review lands at the top
	w = doJSON(t, r, http.MethodPost, "/api/reviews", gin.H{
		"userId": 1, "title": "좋았어요", "content": "추천합니다", "rating": 5,
		"destination": "강릉", "author": "alice",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reviews", nil)
	decode(t, w, &reviews)
	assert.Len(t, reviews, 4)
	assert.Equal(t, "좋았어요", reviews[0].Title)

	// Test 3: Per-user listing filters; user 1 owns a seeded review plus the
	// one just posted, newest first
	w = doJSON(t, r, http.MethodGet, "/api/users/1/reviews", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &reviews)
	assert.Len(t, reviews, 2)
	assert.Equal(t, "좋았어요", reviews[0].Title)
	for _, review := range reviews {
		assert.Equal(t, int64(1), review.UserID)
	}

	// Test 4: Invalid review body is a 400
	w = doJSON(t, r, http.MethodPost, "/api/reviews", gin.H{"title": "제목만"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFAQRoutes(t *testing.T) {
	r, _, _ := setupRouter()

	// Test 1: All FAQs, ordered ascending
	w := doJSON(t, r, http.MethodGet, "/api/faqs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var faqs []dbt.FAQ
	decode(t, w, &faqs)
	assert.Len(t, faqs, 5)
	for i := 1; i < len(faqs); i++ {
		assert.LessOrEqual(t, faqs[i-1].Order, faqs[i].Order)
	}

	// Test 2: Category filter is exact and keeps the ordering
	w = doJSON(t, r, http.MethodGet, "/api/faqs?category=예약관련", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &faqs)
	assert.Len(t, faqs, 2)
	assert.LessOrEqual(t, faqs[0].Order, faqs[1].Order)

	// Test 3: Unknown category is an empty array, not an error
	w = doJSON(t, r, http.MethodGet, "/api/faqs?category=nope", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestInquiryRoutes(t *testing.T) {
	r, _, queueWrapper := setupRouter()

	// Listen for the publish before filing the inquiry.
	queue := queueWrapper.GetInquiryMessageQueue(mq.ActionCreate)
	require.NotNil(t, queue)
	_, events, err := queue.Subscribe()
	require.NoError(t, err)

	// Test 1: Status is forced to pending regardless of input
	w := doJSON(t, r, http.MethodPost, "/api/inquiries", gin.H{
		"type": "환불문의", "phone": "010-1234-5678", "content": "취소 요청", "status": "done",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var inquiry dbt.Inquiry
	decode(t, w, &inquiry)
	assert.Equal(t, dbt.InquiryStatusPending, inquiry.Status)

	// Test 2: The creation was published
	select {
	case msg := <-events:
		assert.Equal(t, inquiry.ID, msg.ID)
		assert.Equal(t, "취소 요청", msg.Content)
	case <-time.After(time.Second):
		t.Fatal("inquiry event was not published")
	}

	// Test 3: Listing returns newest first
	w = doJSON(t, r, http.MethodPost, "/api/inquiries", gin.H{"type": "일반문의", "content": "문의합니다"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/inquiries", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var inquiries []dbt.Inquiry
	decode(t, w, &inquiries)
	assert.Len(t, inquiries, 2)
	for i := 1; i < len(inquiries); i++ {
		assert.False(t, inquiries[i-1].CreatedAt.Before(inquiries[i].CreatedAt))
	}

	// Test 4: Missing required fields are a 400
	w = doJSON(t, r, http.MethodPost, "/api/inquiries", gin.H{"type": "일반문의"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnsureDemoUser(t *testing.T) {
	store := mem.NewInMemoryTravelDBWrapper()

	// Test 1: The demo account is created once
	EnsureDemoUser(store)
	user, err := store.GetUserByUsername(dbt.DemoUsername)
	require.NoError(t, err)
	assert.Equal(t, dbt.DemoUsername, user.Username)

	// Test 2: A second run is a no-op
	EnsureDemoUser(store)
	again, err := store.GetUserByUsername(dbt.DemoUsername)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}
