package mem

import (
	"sync"
	"time"

	dbt "yolo/db/db"
)

// inMemoryTravelDBWrapper is the process-memory implementation of
// dbt.TravelDBWrapper. Each collection keeps its own map and its own
// id counter; nothing is ever evicted or persisted.
type inMemoryTravelDBWrapper struct {
	mu sync.RWMutex

	users     map[int64]*dbt.User
	trips     map[int64]*dbt.Trip
	budgets   map[int64]*dbt.Budget
	reviews   map[int64]*dbt.Review
	faqs      map[int64]*dbt.FAQ
	inquiries map[int64]*dbt.Inquiry

	nextUserID    int64
	nextTripID    int64
	nextBudgetID  int64
	nextReviewID  int64
	nextFAQID     int64
	nextInquiryID int64
}

// NewInMemoryTravelDBWrapper creates a fresh store with the seed FAQ and
// review content already in place.
func NewInMemoryTravelDBWrapper() dbt.TravelDBWrapper {
	w := &inMemoryTravelDBWrapper{
		users:         make(map[int64]*dbt.User),
		trips:         make(map[int64]*dbt.Trip),
		budgets:       make(map[int64]*dbt.Budget),
		reviews:       make(map[int64]*dbt.Review),
		faqs:          make(map[int64]*dbt.FAQ),
		inquiries:     make(map[int64]*dbt.Inquiry),
		nextUserID:    1,
		nextTripID:    1,
		nextBudgetID:  1,
		nextReviewID:  1,
		nextFAQID:     1,
		nextInquiryID: 1,
	}

	for _, faq := range dbt.DefaultFAQs() {
		faqCopy := faq
		faqCopy.ID = w.nextFAQID
		w.nextFAQID++
		w.faqs[faqCopy.ID] = &faqCopy
	}
	for _, review := range dbt.DefaultReviews() {
		reviewCopy := review
		reviewCopy.ID = w.nextReviewID
		w.nextReviewID++
		w.reviews[reviewCopy.ID] = &reviewCopy
	}

	return w
}

// CreateUser inserts a new user unless the username is already taken. The
// uniqueness check and the insert run under one lock, so two concurrent
// signups for the same name cannot both succeed.
func (w *inMemoryTravelDBWrapper) CreateUser(signup *dbt.UserSignup) (*dbt.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, u := range w.users {
		if u.Username == signup.Username {
			return nil, dbt.ErrDuplicateUsername
		}
	}

	user := &dbt.User{
		ID:       w.nextUserID,
		Username: signup.Username,
		Password: signup.Password,
	}
	w.nextUserID++
	w.users[user.ID] = user

	userCopy := *user
	return &userCopy, nil
}

func (w *inMemoryTravelDBWrapper) GetUser(id int64) (*dbt.User, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	user, ok := w.users[id]
	if !ok {
		return nil, dbt.ErrNotFound
	}
	userCopy := *user
	return &userCopy, nil
}

func (w *inMemoryTravelDBWrapper) GetUserByUsername(username string) (*dbt.User, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, user := range w.users {
		if user.Username == username {
			userCopy := *user
			return &userCopy, nil
		}
	}
	return nil, dbt.ErrNotFound
}

func (w *inMemoryTravelDBWrapper) CreateTrip(input *dbt.TripInput) (*dbt.Trip, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	trip := &dbt.Trip{
		ID:          w.nextTripID,
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
	w.nextTripID++
	w.trips[trip.ID] = trip

	tripCopy := *trip
	return &tripCopy, nil
}

func (w *inMemoryTravelDBWrapper) GetTrip(id int64) (*dbt.Trip, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	trip, ok := w.trips[id]
	if !ok {
		return nil, dbt.ErrNotFound
	}
	tripCopy := *trip
	return &tripCopy, nil
}

func (w *inMemoryTravelDBWrapper) GetTripsByUser(userID int64) ([]dbt.Trip, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	trips := make([]dbt.Trip, 0)
	for _, trip := range w.trips {
		if trip.UserID == userID {
			trips = append(trips, *trip)
		}
	}
	return trips, nil
}

func (w *inMemoryTravelDBWrapper) UpdateTrip(id int64, patch *dbt.TripPatch) (*dbt.Trip, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	trip, ok := w.trips[id]
	if !ok {
		return nil, dbt.ErrNotFound
	}

	patch.Apply(trip)
	tripCopy := *trip
	return &tripCopy, nil
}

func (w *inMemoryTravelDBWrapper) CreateBudget(input *dbt.BudgetInput) (*dbt.Budget, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	budget := &dbt.Budget{
		ID:            w.nextBudgetID,
		TripID:        input.TripID,
		Accommodation: input.Accommodation,
		Food:          input.Food,
		Transport:     input.Transport,
		Others:        input.Others,
		Total:         input.Total,
	}
	w.nextBudgetID++
	w.budgets[budget.ID] = budget

	budgetCopy := *budget
	return &budgetCopy, nil
}

// GetBudgetByTrip returns the first budget recorded for the trip. More than
// one budget per trip is possible by convention, not forbidden by the store.
func (w *inMemoryTravelDBWrapper) GetBudgetByTrip(tripID int64) (*dbt.Budget, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	budget := w.findBudgetByTrip(tripID)
	if budget == nil {
		return nil, dbt.ErrNotFound
	}
	budgetCopy := *budget
	return &budgetCopy, nil
}

func (w *inMemoryTravelDBWrapper) UpdateBudget(tripID int64, patch *dbt.BudgetPatch) (*dbt.Budget, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	budget := w.findBudgetByTrip(tripID)
	if budget == nil {
		return nil, dbt.ErrNotFound
	}

	patch.Apply(budget)
	budgetCopy := *budget
	return &budgetCopy, nil
}

// findBudgetByTrip picks the budget with the lowest id among matches, so the
// "first match" is stable across calls. Callers must hold the lock.
func (w *inMemoryTravelDBWrapper) findBudgetByTrip(tripID int64) *dbt.Budget {
	var found *dbt.Budget
	for _, budget := range w.budgets {
		if budget.TripID != tripID {
			continue
		}
		if found == nil || budget.ID < found.ID {
			found = budget
		}
	}
	return found
}

func (w *inMemoryTravelDBWrapper) CreateReview(input *dbt.ReviewInput) (*dbt.Review, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	review := &dbt.Review{
		ID:          w.nextReviewID,
		UserID:      input.UserID,
		TripID:      input.TripID,
		Title:       input.Title,
		Content:     input.Content,
		Rating:      input.Rating,
		Destination: input.Destination,
		Author:      input.Author,
		CreatedAt:   time.Now(),
	}
	w.nextReviewID++
	w.reviews[review.ID] = review

	reviewCopy := *review
	return &reviewCopy, nil
}

func (w *inMemoryTravelDBWrapper) GetReviews() ([]dbt.Review, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	reviews := make([]dbt.Review, 0, len(w.reviews))
	for _, review := range w.reviews {
		reviews = append(reviews, *review)
	}
	dbt.SortReviewsLatest(reviews)
	return reviews, nil
}

func (w *inMemoryTravelDBWrapper) GetReviewsByUser(userID int64) ([]dbt.Review, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	reviews := make([]dbt.Review, 0)
	for _, review := range w.reviews {
		if review.UserID == userID {
			reviews = append(reviews, *review)
		}
	}
	dbt.SortReviewsLatest(reviews)
	return reviews, nil
}

func (w *inMemoryTravelDBWrapper) GetFAQs() ([]dbt.FAQ, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	faqs := make([]dbt.FAQ, 0, len(w.faqs))
	for _, faq := range w.faqs {
		faqs = append(faqs, *faq)
	}
	dbt.SortFAQsByOrder(faqs)
	return faqs, nil
}

func (w *inMemoryTravelDBWrapper) GetFAQsByCategory(category string) ([]dbt.FAQ, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	faqs := make([]dbt.FAQ, 0)
	for _, faq := range w.faqs {
		if faq.Category == category {
			faqs = append(faqs, *faq)
		}
	}
	dbt.SortFAQsByOrder(faqs)
	return faqs, nil
}

func (w *inMemoryTravelDBWrapper) CreateInquiry(input *dbt.InquiryInput) (*dbt.Inquiry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	inquiry := &dbt.Inquiry{
		ID:        w.nextInquiryID,
		Type:      input.Type,
		Phone:     input.Phone,
		Content:   input.Content,
		Status:    dbt.InquiryStatusPending,
		CreatedAt: time.Now(),
	}
	w.nextInquiryID++
	w.inquiries[inquiry.ID] = inquiry

	inquiryCopy := *inquiry
	return &inquiryCopy, nil
}

func (w *inMemoryTravelDBWrapper) GetInquiries() ([]dbt.Inquiry, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	inquiries := make([]dbt.Inquiry, 0, len(w.inquiries))
	for _, inquiry := range w.inquiries {
		inquiries = append(inquiries, *inquiry)
	}
	dbt.SortInquiriesLatest(inquiries)
	return inquiries, nil
}
