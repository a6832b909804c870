package db

import "time"

// User is an account record. The password field holds a bcrypt hash and is
// never serialized into API responses.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type Trip struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	PeopleCount int       `json:"peopleCount"`
	BudgetRange string    `json:"budgetRange"`
	TravelStyle string    `json:"travelStyle"`
	Itinerary   *string   `json:"itinerary"`
	TotalBudget *float64  `json:"totalBudget"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Budget struct {
	ID            int64   `json:"id"`
	TripID        int64   `json:"tripId"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Others        float64 `json:"others"`
	Total         float64 `json:"total"`
}

type Review struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	TripID      *int64    `json:"tripId"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	Destination string    `json:"destination"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FAQ struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// InquiryStatusPending is assigned to every new inquiry. Inquiries never
// transition out of it.
const InquiryStatusPending = "pending"

type Inquiry struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Phone     *string   `json:"phone"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Insert payloads. The binding tags double as the request validation rules
// for the HTTP layer, so a payload that binds is a payload the store accepts.

type UserSignup struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TripInput struct {
	UserID      int64    `json:"userId" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	PeopleCount int      `json:"peopleCount" binding:"required"`
	BudgetRange string   `json:"budgetRange" binding:"required"`
	TravelStyle string   `json:"travelStyle" binding:"required"`
	Itinerary   *string  `json:"itinerary"`
	TotalBudget *float64 `json:"totalBudget"`
}

type BudgetInput struct {
	TripID        int64   `json:"tripId" binding:"required"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Others        float64 `json:"others"`
	Total         float64 `json:"total"`
}

type ReviewInput struct {
	UserID      int64  `json:"userId" binding:"required"`
	TripID      *int64 `json:"tripId"`
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Author      string `json:"author" binding:"required"`
}

type InquiryInput struct {
	Type    string  `json:"type" binding:"required"`
	Phone   *string `json:"phone"`
	Content string  `json:"content" binding:"required"`
}

// Patch payloads for partial updates. A nil field means "leave as is"; the
// stores shallow-merge only the fields that are set.

type TripPatch struct {
	UserID      *int64   `json:"userId"`
	Destination *string  `json:"destination"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	PeopleCount *int     `json:"peopleCount"`
	BudgetRange *string  `json:"budgetRange"`
	TravelStyle *string  `json:"travelStyle"`
	Itinerary   *string  `json:"itinerary"`
	TotalBudget *float64 `json:"totalBudget"`
}

type BudgetPatch struct {
	Accommodation *float64 `json:"accommodation"`
	Food          *float64 `json:"food"`
	Transport     *float64 `json:"transport"`
	Others        *float64 `json:"others"`
	Total         *float64 `json:"total"`
}

// Apply merges the patch over t, touching only the fields that are set.
func (p *TripPatch) Apply(t *Trip) {
	if p.UserID != nil {
		t.UserID = *p.UserID
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.PeopleCount != nil {
		t.PeopleCount = *p.PeopleCount
	}
	if p.BudgetRange != nil {
		t.BudgetRange = *p.BudgetRange
	}
	if p.TravelStyle != nil {
		t.TravelStyle = *p.TravelStyle
	}
	if p.Itinerary != nil {
		t.Itinerary = p.Itinerary
	}
	if p.TotalBudget != nil {
		t.TotalBudget = p.TotalBudget
	}
}

// Apply merges the patch over b, touching only the fields that are set.
func (p *BudgetPatch) Apply(b *Budget) {
	if p.Accommodation != nil {
		b.Accommodation = *p.Accommodation
	}
	if p.Food != nil {
		b.Food = *p.Food
	}
	if p.Transport != nil {
		b.Transport = *p.Transport
	}
	if p.Others != nil {
		b.Others = *p.Others
	}
	if p.Total != nil {
		b.Total = *p.Total
	}
}
