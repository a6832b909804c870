package db

import "errors"

// ErrNotFound signals that a lookup matched no record. Handlers translate it
// into a 404; it is never a reason to panic or retry.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateUsername is returned by CreateUser when the username is already
// taken. The check and the insert happen atomically inside the store.
var ErrDuplicateUsername = errors.New("username already exists")

// TravelDBWrapper is the storage contract every backend implements. All id
// lookups and foreign-key filters return ErrNotFound instead of fabricating
// zero-valued records; list operations return empty slices, never nil.
type TravelDBWrapper interface {
	// User
	CreateUser(signup *UserSignup) (*User, error)
	GetUser(id int64) (*User, error)
	GetUserByUsername(username string) (*User, error)
	// Trip
	CreateTrip(input *TripInput) (*Trip, error)
	GetTrip(id int64) (*Trip, error)
	GetTripsByUser(userID int64) ([]Trip, error)
	UpdateTrip(id int64, patch *TripPatch) (*Trip, error)
	// Budget
	CreateBudget(input *BudgetInput) (*Budget, error)
	GetBudgetByTrip(tripID int64) (*Budget, error)
	UpdateBudget(tripID int64, patch *BudgetPatch) (*Budget, error)
	// Review
	CreateReview(input *ReviewInput) (*Review, error)
	GetReviews() ([]Review, error)
	GetReviewsByUser(userID int64) ([]Review, error)
	// FAQ
	GetFAQs() ([]FAQ, error)
	GetFAQsByCategory(category string) ([]FAQ, error)
	// Inquiry
	CreateInquiry(input *InquiryInput) (*Inquiry, error)
	GetInquiries() ([]Inquiry, error)
}
