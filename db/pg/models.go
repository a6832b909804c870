package pg

import "time"

type UserModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"size:255;not null;uniqueIndex"`
	Password string `gorm:"size:255;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type TripModel struct {
	ID          int64    `gorm:"primaryKey;autoIncrement"`
	UserID      int64    `gorm:"not null"`
	Destination string   `gorm:"size:255;not null"`
	StartDate   string   `gorm:"size:64;not null"`
	EndDate     string   `gorm:"size:64;not null"`
	PeopleCount int      `gorm:"not null"`
	BudgetRange string   `gorm:"size:255;not null"`
	TravelStyle string   `gorm:"size:255;not null"`
	Itinerary   *string  `gorm:"type:text"`
	TotalBudget *float64 `gorm:"type:numeric(10,2)"`
	CreatedAt   time.Time
}

func (TripModel) TableName() string {
	return "trips"
}

type BudgetModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	TripID        int64   `gorm:"not null;index"`
	Accommodation float64 `gorm:"type:numeric(10,2);not null;default:0"`
	Food          float64 `gorm:"type:numeric(10,2);not null;default:0"`
	Transport     float64 `gorm:"type:numeric(10,2);not null;default:0"`
	Others        float64 `gorm:"type:numeric(10,2);not null;default:0"`
	Total         float64 `gorm:"type:numeric(10,2);not null;default:0"`
}

func (BudgetModel) TableName() string {
	return "budgets"
}

type ReviewModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"`
	TripID      *int64 `gorm:"index"`
	Title       string `gorm:"size:255;not null"`
	Content     string `gorm:"type:text;not null"`
	Rating      int    `gorm:"not null"`
	Destination string `gorm:"size:255;not null"`
	Author      string `gorm:"size:255;not null"`
	CreatedAt   time.Time
}

func (ReviewModel) TableName() string {
	return "reviews"
}

type FAQModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Question string `gorm:"type:text;not null"`
	Answer   string `gorm:"type:text;not null"`
	Category string `gorm:"size:255;not null"`
	Order    int    `gorm:"column:order;not null;default:0"`
}

func (FAQModel) TableName() string {
	return "faqs"
}

type InquiryModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Type      string  `gorm:"size:255;not null"`
	Phone     *string `gorm:"size:64"`
	Content   string  `gorm:"type:text;not null"`
	Status    string  `gorm:"size:64;not null;default:pending"`
	CreatedAt time.Time
}

func (InquiryModel) TableName() string {
	return "inquiries"
}
