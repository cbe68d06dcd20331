package routes

import (
	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu & floor plan (no auth needed)
		public.GET("/menu", handlers.GetMenu)
		public.GET("/menu/daily", handlers.GetDailyMenus)
		public.GET("/tables", handlers.GetTables)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/auth/logout", handlers.Logout)
		auth.GET("/me", handlers.Me)
		auth.PUT("/profile", handlers.UpdateProfile)

		// Cart (in-memory session state)
		auth.GET("/cart", handlers.GetCart)
		auth.POST("/cart/items", handlers.AddCartItem)
		auth.PUT("/cart/items/:id", handlers.UpdateCartItem)
		auth.DELETE("/cart/items/:id", handlers.RemoveCartItem)
		auth.POST("/cart/checkout", handlers.Checkout)

		// Orders
		auth.POST("/orders", handlers.PlaceOrder)
		auth.GET("/orders", handlers.GetMyOrders)

		// Reservations
		auth.POST("/reservations", handlers.CreateReservation)
		auth.GET("/reservations", handlers.GetMyReservations)

		// Feedback
		auth.POST("/feedback", handlers.SubmitFeedback)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/dashboard", handlers.GetDashboard)
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.GET("/reservations", handlers.AdminGetAllReservations)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/feedback", handlers.AdminGetAllFeedback)
	}
}
