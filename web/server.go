package web

import (
	"context"
	"errors"
	"log"

	"yolo/auth"
	dbt "yolo/db/db"
	"yolo/mq/mq"

	"github.com/gin-gonic/gin"
)

// ServiceConfig is everything Serve needs. The caller owns backend selection;
// this package only wires routes to whatever store and queue it is handed.
type ServiceConfig struct {
	IsDev bool
	Port  string
	Store dbt.TravelDBWrapper
	MQ    mq.InquiryMessageQueueWrapper
}

func registerRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)

		api.POST("/trips", h.CreateTrip)
		api.GET("/trips/:id", h.GetTrip)
		api.PUT("/trips/:id", h.UpdateTrip)
		api.GET("/users/:userId/trips", h.GetUserTrips)

		api.POST("/budgets", h.CreateBudget)
		api.GET("/trips/:id/budget", h.GetTripBudget)
		api.PUT("/trips/:id/budget", h.UpdateTripBudget)
		api.GET("/trips/:id/budget/summary", h.GetTripBudgetSummary)

		api.POST("/reviews", h.CreateReview)
		api.GET("/reviews", h.GetReviews)
		api.GET("/users/:userId/reviews", h.GetUserReviews)

		api.GET("/faqs", h.GetFAQs)

		api.POST("/inquiries", h.CreateInquiry)
		api.GET("/inquiries", h.GetInquiries)
	}
}

// EnsureDemoUser creates the demo account if it is missing. Every backend gets
// one so a fresh deployment is immediately usable.
func EnsureDemoUser(store dbt.TravelDBWrapper) {
	_, err := store.GetUserByUsername(dbt.DemoUsername)
	if err == nil {
		return
	}
	if !errors.Is(err, dbt.ErrNotFound) {
		log.Printf("Demo user initialization failed: %v", err)
		return
	}

	hashed, err := auth.HashPassword(dbt.DemoPassword)
	if err != nil {
		log.Printf("Demo user initialization failed: %v", err)
		return
	}
	_, err = store.CreateUser(&dbt.UserSignup{Username: dbt.DemoUsername, Password: hashed})
	if err != nil && !errors.Is(err, dbt.ErrDuplicateUsername) {
		log.Printf("Demo user initialization failed: %v", err)
	}
}

// startSupportFeed logs every new inquiry as it is published. It stands in
// for the support team's notification channel.
func startSupportFeed(ctx context.Context, wrapper mq.InquiryMessageQueueWrapper) {
	queue := wrapper.GetInquiryMessageQueue(mq.ActionCreate)
	if queue == nil {
		return
	}

	feed := make(chan string, 5)
	mq.SubscribeProcessor(ctx, queue, func(msg mq.InquiryMessage) (string, bool, error) {
		return msg.Type + ": " + msg.Content, false, nil
	}, feed)

	go func() {
		for line := range feed {
			log.Printf("[inquiry] %s", line)
		}
	}()
}

func Serve(cfg ServiceConfig) {
	if !cfg.IsDev {
		gin.SetMode(gin.ReleaseMode)
	}

	EnsureDemoUser(cfg.Store)

	if cfg.MQ != nil {
		startSupportFeed(context.Background(), cfg.MQ)
	}

	r := gin.New()
	setupMiddlewares(r)
	registerRoutes(r, NewHandler(cfg.Store, cfg.MQ))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
