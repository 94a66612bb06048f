package routes

import (
	"github.com/Ashik0101/food-delivery-app/handlers"
	"github.com/Ashik0101/food-delivery-app/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/")
	{
		// Auth
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		// Restaurants & menus (no auth needed)
		public.POST("/restaurants", handlers.AddRestaurant)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/menu", handlers.GetMenu)
		public.PUT("/restaurants/:id/menu", handlers.AddMenuItem)
		public.DELETE("/restaurants/:id/menu/:menuId", handlers.RemoveMenuItem)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.PATCH("/user/:id/reset", handlers.ResetPassword)

		auth.POST("/orders", handlers.PlaceOrder)
		auth.GET("/orders/:id", handlers.GetOrder)
		auth.PATCH("/orders/:id", handlers.UpdateOrderStatus)
	}
}
