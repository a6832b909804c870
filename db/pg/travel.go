package pg

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	dbt "yolo/db/db"
)

// GORMTravelDBWrapper is the GORM-based PostgreSQL implementation of
// dbt.TravelDBWrapper.
type GORMTravelDBWrapper struct {
	db *gorm.DB
}

// NewGORMTravelDBWrapper creates and returns a new instance of GORMTravelDBWrapper.
func NewGORMTravelDBWrapper(db *gorm.DB) dbt.TravelDBWrapper {
	return &GORMTravelDBWrapper{
		db: db,
	}
}

func toUser(m *UserModel) *dbt.User {
	return &dbt.User{ID: m.ID, Username: m.Username, Password: m.Password}
}

func toTrip(m *TripModel) *dbt.Trip {
	return &dbt.Trip{
		ID:          m.ID,
		UserID:      m.UserID,
		Destination: m.Destination,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		PeopleCount: m.PeopleCount,
		BudgetRange: m.BudgetRange,
		TravelStyle: m.TravelStyle,
		Itinerary:   m.Itinerary,
		TotalBudget: m.TotalBudget,
		CreatedAt:   m.CreatedAt,
	}
}

func fromTrip(t *dbt.Trip) *TripModel {
	return &TripModel{
		ID:          t.ID,
		UserID:      t.UserID,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		PeopleCount: t.PeopleCount,
		BudgetRange: t.BudgetRange,
		TravelStyle: t.TravelStyle,
		Itinerary:   t.Itinerary,
		TotalBudget: t.TotalBudget,
		CreatedAt:   t.CreatedAt,
	}
}

func toBudget(m *BudgetModel) *dbt.Budget {
	return &dbt.Budget{
		ID:            m.ID,
		TripID:        m.TripID,
		Accommodation: m.Accommodation,
		Food:          m.Food,
		Transport:     m.Transport,
		Others:        m.Others,
		Total:         m.Total,
	}
}

func fromBudget(b *dbt.Budget) *BudgetModel {
	return &BudgetModel{
		ID:            b.ID,
		TripID:        b.TripID,
		Accommodation: b.Accommodation,
		Food:          b.Food,
		Transport:     b.Transport,
		Others:        b.Others,
		Total:         b.Total,
	}
}

func toReview(m *ReviewModel) dbt.Review {
	return dbt.Review{
		ID:          m.ID,
		UserID:      m.UserID,
		TripID:      m.TripID,
		Title:       m.Title,
		Content:     m.Content,
		Rating:      m.Rating,
		Destination: m.Destination,
		Author:      m.Author,
		CreatedAt:   m.CreatedAt,
	}
}

func toFAQ(m *FAQModel) dbt.FAQ {
	return dbt.FAQ{
		ID:       m.ID,
		Question: m.Question,
		Answer:   m.Answer,
		Category: m.Category,
		Order:    m.Order,
	}
}

func toInquiry(m *InquiryModel) dbt.Inquiry {
	return dbt.Inquiry{
		ID:        m.ID,
		Type:      m.Type,
		Phone:     m.Phone,
		Content:   m.Content,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

// CreateUser inserts a new user; the unique index on username makes the
// insert-if-absent atomic.
func (pgdb *GORMTravelDBWrapper) CreateUser(signup *dbt.UserSignup) (*dbt.User, error) {
	model := UserModel{
		Username: signup.Username,
		Password: signup.Password,
	}
	result := pgdb.db.Create(&model)
	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "duplicate key value violates unique constraint") {
			return nil, dbt.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", result.Error)
	}
	return toUser(&model), nil
}

func (pgdb *GORMTravelDBWrapper) GetUser(id int64) (*dbt.User, error) {
	var model UserModel
	result := pgdb.db.First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, dbt.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, result.Error)
	}
	return toUser(&model), nil
}

func (pgdb *GORMTravelDBWrapper) GetUserByUsername(username string) (*dbt.User, error) {
	var model UserModel
	result := pgdb.db.First(&model, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, dbt.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %q: %w", username, result.Error)
	}
	return toUser(&model), nil
}

func (pgdb *GORMTravelDBWrapper) CreateTrip(input *dbt.TripInput) (*dbt.Trip, error) {
	model := TripModel{
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
	if result := pgdb.db.Create(&model); result.Error != nil {
		return nil, fmt.Errorf("failed to create trip: %w", result.Error)
	}
	return toTrip(&model), nil
}

func (pgdb *GORMTravelDBWrapper) GetTrip(id int64) (*dbt.Trip, error) {
	var model TripModel
	result := pgdb.db.First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, dbt.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trip %d: %w", id, result.Error)
	}
	return toTrip(&model), nil
}

func (pgdb *GORMTravelDBWrapper) GetTripsByUser(userID int64) ([]dbt.Trip, error) {
	var models []TripModel
	result := pgdb.db.Where("user_id = ?", userID).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get trips for user %d: %w", userID, result.Error)
	}
	trips := make([]dbt.Trip, 0, len(models))
	for i := range models {
		trips = append(trips, *toTrip(&models[i]))
	}
	return trips, nil
}

// UpdateTrip loads, merges and saves inside one transaction so the merge
// keeps the same semantics as the other backends.
func (pgdb *GORMTravelDBWrapper) UpdateTrip(id int64, patch *dbt.TripPatch) (*dbt.Trip, error) {
	var updated *dbt.Trip
	err := pgdb.db.Transaction(func(tx *gorm.DB) error {
		var model TripModel
		if result := tx.First(&model, "id = ?", id); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return dbt.ErrNotFound
			}
			return result.Error
		}
		trip := toTrip(&model)
		patch.Apply(trip)
		if result := tx.Save(fromTrip(trip)); result.Error != nil {
			return result.Error
		}
		updated = trip
		return nil
	})
	if err != nil {
		if errors.Is(err, dbt.ErrNotFound) {
			return nil, dbt.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update trip %d: %w", id, err)
	}
	return updated, nil
}

func (pgdb *GORMTravelDBWrapper) CreateBudget(input *dbt.BudgetInput) (*dbt.Budget, error) {
	model := BudgetModel{
		TripID:        input.TripID,
		Accommodation: input.Accommodation,
		Food:          input.Food,
		Transport:     input.Transport,
		Others:        input.Others,
		Total:         input.Total,
	}
	if result := pgdb.db.Create(&model); result.Error != nil {
		return nil, fmt.Errorf("failed to create budget: %w", result.Error)
	}
	return toBudget(&model), nil
}

// GetBudgetByTrip returns the earliest budget recorded for the trip.
func (pgdb *GORMTravelDBWrapper) GetBudgetByTrip(tripID int64) (*dbt.Budget, error) {
	var model BudgetModel
	result := pgdb.db.Where("trip_id = ?", tripID).Order("id ASC").First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, dbt.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get budget for trip %d: %w", tripID, result.Error)
	}
	return toBudget(&model), nil
}

func (pgdb *GORMTravelDBWrapper) UpdateBudget(tripID int64, patch *dbt.BudgetPatch) (*dbt.Budget, error) {
	var updated *dbt.Budget
	err := pgdb.db.Transaction(func(tx *gorm.DB) error {
		var model BudgetModel
		result := tx.Where("trip_id = ?", tripID).Order("id ASC").First(&model)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return dbt.ErrNotFound
			}
			return result.Error
		}
		budget := toBudget(&model)
		patch.Apply(budget)
		if result := tx.Save(fromBudget(budget)); result.Error != nil {
			return result.Error
		}
		updated = budget
		return nil
	})
	if err != nil {
		if errors.Is(err, dbt.ErrNotFound) {
			return nil, dbt.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update budget for trip %d: %w", tripID, err)
	}
	return updated, nil
}

func (pgdb *GORMTravelDBWrapper) CreateReview(input *dbt.ReviewInput) (*dbt.Review, error) {
	model := ReviewModel{
		UserID:      input.UserID,
		TripID:      input.TripID,
		Title:       input.Title,
		Content:     input.Content,
		Rating:      input.Rating,
		Destination: input.Destination,
		Author:      input.Author,
		CreatedAt:   time.Now(),
	}
	if result := pgdb.db.Create(&model); result.Error != nil {
		return nil, fmt.Errorf("failed to create review: %w", result.Error)
	}
	review := toReview(&model)
	return &review, nil
}

func (pgdb *GORMTravelDBWrapper) GetReviews() ([]dbt.Review, error) {
	var models []ReviewModel
	result := pgdb.db.Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", result.Error)
	}
	reviews := make([]dbt.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, toReview(&models[i]))
	}
	return reviews, nil
}

func (pgdb *GORMTravelDBWrapper) GetReviewsByUser(userID int64) ([]dbt.Review, error) {
	var models []ReviewModel
	result := pgdb.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list reviews for user %d: %w", userID, result.Error)
	}
	reviews := make([]dbt.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, toReview(&models[i]))
	}
	return reviews, nil
}

func (pgdb *GORMTravelDBWrapper) GetFAQs() ([]dbt.FAQ, error) {
	var models []FAQModel
	result := pgdb.db.Order(`"order" ASC`).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", result.Error)
	}
	faqs := make([]dbt.FAQ, 0, len(models))
	for i := range models {
		faqs = append(faqs, toFAQ(&models[i]))
	}
	return faqs, nil
}

func (pgdb *GORMTravelDBWrapper) GetFAQsByCategory(category string) ([]dbt.FAQ, error) {
	var models []FAQModel
	result := pgdb.db.Where("category = ?", category).Order(`"order" ASC`).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list faqs for category %q: %w", category, result.Error)
	}
	faqs := make([]dbt.FAQ, 0, len(models))
	for i := range models {
		faqs = append(faqs, toFAQ(&models[i]))
	}
	return faqs, nil
}

func (pgdb *GORMTravelDBWrapper) CreateInquiry(input *dbt.InquiryInput) (*dbt.Inquiry, error) {
	model := InquiryModel{
		Type:      input.Type,
		Phone:     input.Phone,
		Content:   input.Content,
		Status:    dbt.InquiryStatusPending,
		CreatedAt: time.Now(),
	}
	if result := pgdb.db.Create(&model); result.Error != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", result.Error)
	}
	inquiry := toInquiry(&model)
	return &inquiry, nil
}

func (pgdb *GORMTravelDBWrapper) GetInquiries() ([]dbt.Inquiry, error) {
	var models []InquiryModel
	result := pgdb.db.Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", result.Error)
	}
	inquiries := make([]dbt.Inquiry, 0, len(models))
	for i := range models {
		inquiries = append(inquiries, toInquiry(&models[i]))
	}
	return inquiries, nil
}
