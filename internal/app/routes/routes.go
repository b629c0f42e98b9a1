package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adlavijwal/innovbridge/internal/app/controllers"
	"github.com/adlavijwal/innovbridge/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	contentController *controllers.ContentController,
	subscriptionController *controllers.SubscriptionController,
	contactController *controllers.ContactController,
	studentHubController *controllers.StudentHubController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public content routes ---
	v1.GET("/tech-updates", contentController.GetTechUpdates)
	v1.GET("/opportunities", contentController.GetOpportunities)
	v1.GET("/services", contentController.GetServices)

	// --- Subscription routes ---
	v1.POST("/newsletter/subscribe", subscriptionController.SubscribeNewsletter)
	v1.POST("/community/join", subscriptionController.JoinCommunity)

	// --- Contact route ---
	v1.POST("/contact", contactController.Submit)

	// --- Student hub wizard routes ---
	studentHub := v1.Group("/student-hub")
	{
		studentHub.POST("/sessions", studentHubController.OpenSession)
		studentHub.GET("/sessions/:id", studentHubController.GetSession)
		studentHub.PUT("/sessions/:id", studentHubController.SaveForm)
		studentHub.DELETE("/sessions/:id", studentHubController.CancelSession)
		studentHub.POST("/sessions/:id/checkout", studentHubController.StartCheckout)
		studentHub.POST("/sessions/:id/submit", studentHubController.Submit)

		// The payment provider redirects here; only query parameters survive
		// the round trip, so this one is not session scoped.
		studentHub.GET("/confirm", studentHubController.ConfirmPayment)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	{
		admin.POST("/login", adminController.Login)

		adminProtected := admin.Group("")
		adminProtected.Use(authMiddleware.AdminRequired())
		{
			adminProtected.POST("/emails", adminController.SendEmail)

			adminProtected.GET("/student-requests/:id/history", studentHubController.RequestHistory)

			adminProtected.GET("/tech-updates/:id", contentController.GetTechUpdate)
			adminProtected.POST("/tech-updates", contentController.CreateTechUpdate)
			adminProtected.PUT("/tech-updates/:id", contentController.UpdateTechUpdate)
			adminProtected.DELETE("/tech-updates/:id", contentController.DeleteTechUpdate)

			adminProtected.GET("/opportunities/:id", contentController.GetOpportunity)
			adminProtected.POST("/opportunities", contentController.CreateOpportunity)
			adminProtected.PUT("/opportunities/:id", contentController.UpdateOpportunity)
			adminProtected.DELETE("/opportunities/:id", contentController.DeleteOpportunity)

			adminProtected.GET("/services/:id", contentController.GetService)
			adminProtected.POST("/services", contentController.CreateService)
			adminProtected.PUT("/services/:id", contentController.UpdateService)
			adminProtected.DELETE("/services/:id", contentController.DeleteService)
		}
	}
}
