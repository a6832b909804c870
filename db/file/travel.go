package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	dbt "yolo/db/db"
)

// Collection file names keep the original storage keys, one JSON array per
// collection.
const (
	usersFile     = "yolo_users.json"
	tripsFile     = "yolo_trips.json"
	budgetsFile   = "yolo_budgets.json"
	reviewsFile   = "yolo_reviews.json"
	faqsFile      = "yolo_faqs.json"
	inquiriesFile = "yolo_inquiries.json"
)

// fileTravelDBWrapper is the file-backed implementation of
// dbt.TravelDBWrapper. Every operation reads the collection file, applies the
// change and writes the whole array back. A missing file yields the seed
// default for that collection; a file that fails to parse is treated the same
// way and silently replaced on the next write.
type fileTravelDBWrapper struct {
	mu  sync.Mutex
	dir string
}

// NewFileTravelDBWrapper creates a store rooted at dir, creating the
// directory if needed.
func NewFileTravelDBWrapper(dir string) (dbt.TravelDBWrapper, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileTravelDBWrapper{dir: dir}, nil
}

// userRecord is the on-disk shape of a user. The domain type hides the
// password from JSON, so persistence needs its own mapping.
type userRecord struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (w *fileTravelDBWrapper) path(name string) string {
	return filepath.Join(w.dir, name)
}

func loadCollection[T any](path string, fallback []T) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		return append([]T(nil), fallback...)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return append([]T(nil), fallback...)
	}
	return items
}

func saveCollection[T any](path string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// nextID continues after the highest id present, so ids survive a reload.
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (w *fileTravelDBWrapper) loadUsers() []userRecord {
	return loadCollection(w.path(usersFile), []userRecord{})
}

func (w *fileTravelDBWrapper) loadTrips() []dbt.Trip {
	return loadCollection(w.path(tripsFile), []dbt.Trip{})
}

func (w *fileTravelDBWrapper) loadBudgets() []dbt.Budget {
	return loadCollection(w.path(budgetsFile), []dbt.Budget{})
}

func (w *fileTravelDBWrapper) loadReviews() []dbt.Review {
	return loadCollection(w.path(reviewsFile), dbt.DefaultReviews())
}

func (w *fileTravelDBWrapper) loadFAQs() []dbt.FAQ {
	return loadCollection(w.path(faqsFile), dbt.DefaultFAQs())
}

func (w *fileTravelDBWrapper) loadInquiries() []dbt.Inquiry {
	return loadCollection(w.path(inquiriesFile), []dbt.Inquiry{})
}

func (w *fileTravelDBWrapper) CreateUser(signup *dbt.UserSignup) (*dbt.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	users := w.loadUsers()
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		if u.Username == signup.Username {
			return nil, dbt.ErrDuplicateUsername
		}
		ids = append(ids, u.ID)
	}

	record := userRecord{
		ID:       nextID(ids),
		Username: signup.Username,
		Password: signup.Password,
	}
	users = append(users, record)
	if err := saveCollection(w.path(usersFile), users); err != nil {
		return nil, err
	}

	return &dbt.User{ID: record.ID, Username: record.Username, Password: record.Password}, nil
}

func (w *fileTravelDBWrapper) GetUser(id int64) (*dbt.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, u := range w.loadUsers() {
		if u.ID == id {
			return &dbt.User{ID: u.ID, Username: u.Username, Password: u.Password}, nil
		}
	}
	return nil, dbt.ErrNotFound
}

func (w *fileTravelDBWrapper) GetUserByUsername(username string) (*dbt.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, u := range w.loadUsers() {
		if u.Username == username {
			return &dbt.User{ID: u.ID, Username: u.Username, Password: u.Password}, nil
		}
	}
	return nil, dbt.ErrNotFound
}

func (w *fileTravelDBWrapper) CreateTrip(input *dbt.TripInput) (*dbt.Trip, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	trips := w.loadTrips()
	ids := make([]int64, 0, len(trips))
	for _, t := range trips {
		ids = append(ids, t.ID)
	}

	trip := dbt.Trip{
		ID:          nextID(ids),
		UserID:      input.UserID,
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		PeopleCount: input.PeopleCount,
		BudgetRange: input.BudgetRange,
		TravelStyle: input.TravelStyle,
		Itinerary:   input.Itinerary,
		TotalBudget: input.TotalBudget,
		CreatedAt:   time.Now(),
	}
	trips = append(trips, trip)
	if err := saveCollection(w.path(tripsFile), trips); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (w *fileTravelDBWrapper) GetTrip(id int64) (*dbt.Trip, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, t := range w.loadTrips() {
		if t.ID == id {
			trip := t
			return &trip, nil
		}
	}
	return nil, dbt.ErrNotFound
}

func (w *fileTravelDBWrapper) GetTripsByUser(userID int64) ([]dbt.Trip, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	trips := make([]dbt.Trip, 0)
	for _, t := range w.loadTrips() {
		if t.UserID == userID {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

func (w *fileTravelDBWrapper) UpdateTrip(id int64, patch *dbt.TripPatch) (*dbt.Trip, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	trips := w.loadTrips()
	for i := range trips {
		if trips[i].ID != id {
			continue
		}
		patch.Apply(&trips[i])
		if err := saveCollection(w.path(tripsFile), trips); err != nil {
			return nil, err
		}
		trip := trips[i]
		return &trip, nil
	}
	return nil, dbt.ErrNotFound
}

func (w *fileTravelDBWrapper) CreateBudget(input *dbt.BudgetInput) (*dbt.Budget, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	budgets := w.loadBudgets()
	ids := make([]int64, 0, len(budgets))
	for _, b := range budgets {
		ids = append(ids, b.ID)
	}

	budget := dbt.Budget{
		ID:            nextID(ids),
		TripID:        input.TripID,
		Accommodation: input.Accommodation,
		Food:          input.Food,
		Transport:     input.Transport,
		Others:        input.Others,
		Total:         input.Total,
	}
	budgets = append(budgets, budget)
	if err := saveCollection(w.path(budgetsFile), budgets); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (w *fileTravelDBWrapper) GetBudgetByTrip(tripID int64) (*dbt.Budget, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, b := range w.loadBudgets() {
		if b.TripID == tripID {
			budget := b
			return &budget, nil
		}
	}
	return nil, dbt.ErrNotFound
}

func (w *fileTravelDBWrapper) UpdateBudget(tripID int64, patch *dbt.BudgetPatch) (*dbt.Budget, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	budgets := w.loadBudgets()
	for i := range budgets {
		if budgets[i].TripID != tripID {
			continue
		}
		patch.Apply(&budgets[i])
		if err := saveCollection(w.path(budgetsFile), budgets); err != nil {
			return nil, err
		}
		budget := budgets[i]
		return &budget, nil
	}
	return nil, dbt.ErrNotFound
}

func (w *fileTravelDBWrapper) CreateReview(input *dbt.ReviewInput) (*dbt.Review, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	reviews := w.loadReviews()
	ids := make([]int64, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.ID)
	}

	review := dbt.Review{
		ID:          nextID(ids),
		UserID:      input.UserID,
		TripID:      input.TripID,
		Title:       input.Title,
		Content:     input.Content,
		Rating:      input.Rating,
		Destination: input.Destination,
		Author:      input.Author,
		CreatedAt:   time.Now(),
	}
	reviews = append(reviews, review)
	if err := saveCollection(w.path(reviewsFile), reviews); err != nil {
		return nil, err
	}
	return &review, nil
}

func (w *fileTravelDBWrapper) GetReviews() ([]dbt.Review, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	reviews := w.loadReviews()
	dbt.SortReviewsLatest(reviews)
	return reviews, nil
}

func (w *fileTravelDBWrapper) GetReviewsByUser(userID int64) ([]dbt.Review, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	reviews := make([]dbt.Review, 0)
	for _, r := range w.loadReviews() {
		if r.UserID == userID {
			reviews = append(reviews, r)
		}
	}
	dbt.SortReviewsLatest(reviews)
	return reviews, nil
}

func (w *fileTravelDBWrapper) GetFAQs() ([]dbt.FAQ, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	faqs := w.loadFAQs()
	dbt.SortFAQsByOrder(faqs)
	return faqs, nil
}

func (w *fileTravelDBWrapper) GetFAQsByCategory(category string) ([]dbt.FAQ, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	faqs := make([]dbt.FAQ, 0)
	for _, faq := range w.loadFAQs() {
		if faq.Category == category {
			faqs = append(faqs, faq)
		}
	}
	dbt.SortFAQsByOrder(faqs)
	return faqs, nil
}

func (w *fileTravelDBWrapper) CreateInquiry(input *dbt.InquiryInput) (*dbt.Inquiry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	inquiries := w.loadInquiries()
	ids := make([]int64, 0, len(inquiries))
	for _, i := range inquiries {
		ids = append(ids, i.ID)
	}

	inquiry := dbt.Inquiry{
		ID:        nextID(ids),
		Type:      input.Type,
		Phone:     input.Phone,
		Content:   input.Content,
		Status:    dbt.InquiryStatusPending,
		CreatedAt: time.Now(),
	}
	inquiries = append(inquiries, inquiry)
	if err := saveCollection(w.path(inquiriesFile), inquiries); err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (w *fileTravelDBWrapper) GetInquiries() ([]dbt.Inquiry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	inquiries := w.loadInquiries()
	dbt.SortInquiriesLatest(inquiries)
	return inquiries, nil
}
