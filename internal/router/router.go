package router

import (
	"net/http"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/middleware"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type Handler interface {
	InitiateTransfer(c *ginext.Context)
	AcceptTransfer(c *ginext.Context)
	CancelTransfer(c *ginext.Context)
	ListTransfers(c *ginext.Context)

	RefundEligibility(c *ginext.Context)
	ProcessRefund(c *ginext.Context)
	BatchRefund(c *ginext.Context)
	StripeWebhook(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CancelEvent(c *ginext.Context)
	SetRefundPolicy(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(
	mode string,
	h Handler,
	users middleware.ActorResolver,
	log logger.Logger,
	mw ...ginext.HandlerFunc,
) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	// signed by the provider, no actor
	router.POST("/api/webhooks/stripe", h.StripeWebhook)

	api := router.Group("/api")
	api.Use(middleware.Auth(users, log))
	{
		// Transfers
		api.POST("/tickets/:id/transfers", h.InitiateTransfer)
		api.POST("/transfers/accept", h.AcceptTransfer)
		api.POST("/transfers/:id/cancel", h.CancelTransfer)
		api.GET("/transfers", h.ListTransfers)

		// Refunds
		api.GET("/orders/:id/refund-eligibility", h.RefundEligibility)
		api.POST("/orders/:id/refund", h.ProcessRefund)
		api.POST("/refunds/batch", h.BatchRefund)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
	}

	admin := api.Group("")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/events", h.CreateEvent)
		admin.POST("/events/:id/cancel", h.CancelEvent)
		admin.PUT("/events/:id/refund-policy", h.SetRefundPolicy)

		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
	}

	return router
}
