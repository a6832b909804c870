package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"yolo/auth"
	"yolo/budget"
	dbt "yolo/db/db"
	"yolo/mq/mq"

	"github.com/gin-gonic/gin"
)

// Handler carries the dependencies every route needs. Routes never touch
// package-level state.
type Handler struct {
	Store dbt.TravelDBWrapper
	MQ    mq.InquiryMessageQueueWrapper
}

func NewHandler(store dbt.TravelDBWrapper, queue mq.InquiryMessageQueueWrapper) *Handler {
	return &Handler{Store: store, MQ: queue}
}

// pathID parses a numeric path parameter. Lookups with a malformed id behave
// like lookups for an id that does not exist.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// --------- auth ---------

func (h *Handler) Signup(c *gin.Context) {
	var signup dbt.UserSignup
	if err := c.ShouldBindJSON(&signup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "회원가입 중 오류가 발생했습니다", "error": err.Error()})
		return
	}

	hashed, err := auth.HashPassword(signup.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "회원가입 중 오류가 발생했습니다", "error": err.Error()})
		return
	}
	signup.Password = hashed

	user, err := h.Store.CreateUser(&signup)
	if err != nil {
		if errors.Is(err, dbt.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "이미 존재하는 아이디입니다"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "회원가입 중 오류가 발생했습니다", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

func (h *Handler) Login(c *gin.Context) {
	var creds dbt.UserSignup
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "아이디와 비밀번호를 입력해주세요"})
		return
	}

	user, err := h.Store.GetUserByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, dbt.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "아이디나 비밀번호가 일치하지 않습니다"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "로그인 중 오류가 발생했습니다"})
		return
	}
	if auth.ComparePassword(user.Password, creds.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "아이디나 비밀번호가 일치하지 않습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

// --------- trips ---------

func (h *Handler) CreateTrip(c *gin.Context) {
	var input dbt.TripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid trip data", "error": err.Error()})
		return
	}

	trip, err := h.Store.CreateTrip(&input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid trip data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) GetTrip(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
		return
	}

	trip, err := h.Store.GetTrip(id)
	if err != nil {
		if errors.Is(err, dbt.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch trip", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) GetUserTrips(c *gin.Context) {
	// A malformed userId matches no trips, same as an unknown one.
	userID, _ := pathID(c, "userId")

	trips, err := h.Store.GetTripsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch trips", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *Handler) UpdateTrip(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
		return
	}

	var patch dbt.TripPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid update data", "error": err.Error()})
		return
	}

	trip, err := h.Store.UpdateTrip(id, &patch)
	if err != nil {
		if errors.Is(err, dbt.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid update data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trip)
}

// --------- budgets ---------

func (h *Handler) CreateBudget(c *gin.Context) {
	var input dbt.BudgetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid budget data", "error": err.Error()})
		return
	}

	b, err := h.Store.CreateBudget(&input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid budget data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) GetTripBudget(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Budget not found"})
		return
	}

	b, err := h.Store.GetBudgetByTrip(tripID)
	if err != nil {
		if errors.Is(err, dbt.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Budget not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch budget", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) UpdateTripBudget(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Budget not found"})
		return
	}

	var patch dbt.BudgetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid budget data", "error": err.Error()})
		return
	}

	b, err := h.Store.UpdateBudget(tripID, &patch)
	if err != nil {
		if errors.Is(err, dbt.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Budget not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid budget data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) GetTripBudgetSummary(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Budget not found"})
		return
	}

	b, err := h.Store.GetBudgetByTrip(tripID)
	if err != nil {
		if errors.Is(err, dbt.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Budget not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch budget", "error": err.Error()})
		return
	}

	// Head count comes from the trip; a budget can exist without one.
	peopleCount := 1
	if trip, err := h.Store.GetTrip(tripID); err == nil {
		peopleCount = trip.PeopleCount
	}

	c.JSON(http.StatusOK, budget.Summarize(b, peopleCount))
}

// --------- reviews ---------

func (h *Handler) CreateReview(c *gin.Context) {
	var input dbt.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review data", "error": err.Error()})
		return
	}

	review, err := h.Store.CreateReview(&input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *Handler) GetReviews(c *gin.Context) {
	reviews, err := h.Store.GetReviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reviews", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) GetUserReviews(c *gin.Context) {
	userID, _ := pathID(c, "userId")

	reviews, err := h.Store.GetReviewsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user reviews", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// --------- faqs ---------

func (h *Handler) GetFAQs(c *gin.Context) {
	var (
		faqs []dbt.FAQ
		err  error
	)
	if category := c.Query("category"); category != "" {
		faqs, err = h.Store.GetFAQsByCategory(category)
	} else {
		faqs, err = h.Store.GetFAQs()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch FAQs", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// --------- inquiries ---------

func (h *Handler) CreateInquiry(c *gin.Context) {
	var input dbt.InquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid inquiry data", "error": err.Error()})
		return
	}

	inquiry, err := h.Store.CreateInquiry(&input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid inquiry data", "error": err.Error()})
		return
	}

	// Notify subscribers. The inquiry is already stored, so a publish failure
	// must not fail the request.
	if h.MQ != nil {
		if queue := h.MQ.GetInquiryMessageQueue(mq.ActionCreate); queue != nil {
			msg := mq.InquiryMessage{
				ID:        inquiry.ID,
				Type:      inquiry.Type,
				Content:   inquiry.Content,
				Status:    inquiry.Status,
				CreatedAt: inquiry.CreatedAt,
			}
			if err := queue.Publish(msg); err != nil {
				log.Printf("publish inquiry %d: %v", inquiry.ID, err)
			}
		}
	}

	c.JSON(http.StatusOK, inquiry)
}

func (h *Handler) GetInquiries(c *gin.Context) {
	inquiries, err := h.Store.GetInquiries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch inquiries", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inquiries)
}
