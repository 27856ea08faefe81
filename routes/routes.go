package routes

import (
	"github.com/gin-gonic/gin"

	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/policy"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", handlers.Login)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Catalog, region-scoped
		catalog := auth.Group("/restaurants", middleware.ActionRequired(policy.ActionViewCatalog))
		{
			catalog.GET("", handlers.ListRestaurants)
			catalog.GET("/:id", handlers.GetRestaurant)
			catalog.GET("/:id/menu", handlers.GetMenu)
		}

		// Orders
		orders := auth.Group("/orders")
		{
			orders.POST("", middleware.ActionRequired(policy.ActionCreateOrder), handlers.CreateOrder)
			orders.GET("", handlers.ListOrders)
			orders.GET("/:id", handlers.GetOrder)
			orders.PUT("/:id/checkout", middleware.ActionRequired(policy.ActionCheckoutOrder), handlers.Checkout)
			orders.PUT("/:id/cancel", middleware.ActionRequired(policy.ActionCancelOrder), handlers.CancelOrder)
		}

		// Payment methods — viewing is open to every role, managing is admin only
		payments := auth.Group("/payment-methods")
		{
			payments.GET("", middleware.ActionRequired(policy.ActionViewOwnPaymentMethods), handlers.ListPaymentMethods)
			payments.POST("", middleware.ActionRequired(policy.ActionManagePaymentMethods), handlers.AddPaymentMethod)
			payments.PUT("/:id", middleware.ActionRequired(policy.ActionManagePaymentMethods), handlers.UpdatePaymentMethod)
			payments.DELETE("/:id", middleware.ActionRequired(policy.ActionManagePaymentMethods), handlers.DeletePaymentMethod)
		}
	}
}
