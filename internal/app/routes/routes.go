package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kritsada/alumnihub/internal/app/controllers"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	alumniController *controllers.AlumniController,
	shippingController *controllers.ShippingController,
	labelController *controllers.LabelController,
	reportController *controllers.ReportController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/alumni/register", alumniController.Register)
	v1.POST("/status/check", alumniController.CheckStatus)
	v1.POST("/auth/login", authController.Login)

	// --- Authenticated admin routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		alumni := authenticated.Group("/alumni")
		{
			alumni.GET("", alumniController.List)
			alumni.GET("/statistics", alumniController.Statistics)
			alumni.GET("/shipping-list", shippingController.ShippingList)
			alumni.GET("/shipping-statistics", shippingController.ShippingStatistics)
			alumni.POST("/bulk-shipping", shippingController.BulkUpdateShipping)
			alumni.GET("/export/all-members-excel", reportController.ExportAllMembers)

			alumni.GET("/:id", alumniController.GetByID)
			alumni.PUT("/:id", alumniController.Update)
			alumni.DELETE("/:id", alumniController.Delete)
			alumni.PATCH("/:id/status", alumniController.UpdateStatus)
			alumni.PATCH("/:id/position", alumniController.UpdatePosition)
			alumni.PATCH("/:id/shipping", shippingController.UpdateShipping)
		}

		shipping := authenticated.Group("/shipping")
		{
			shipping.GET("/labels/minimal/:id", labelController.MinimalLabel)
			shipping.GET("/labels/single/:id", labelController.SingleLabel)
			shipping.POST("/labels/4up", labelController.FourUpLabels)
			shipping.POST("/labels/bulk", labelController.BulkLabels)

			shipping.POST("/print-jobs", labelController.CreatePrintJob)
			shipping.GET("/print-jobs/:id", labelController.GetPrintJob)
			shipping.GET("/print-jobs/:id/sheets/:index", labelController.GetPrintSheet)

			shipping.GET("/reports/detailed", reportController.DetailedReport)
			shipping.GET("/export/shipping-list", reportController.ExportShippingList)
			shipping.GET("/export/detailed", reportController.ExportDetailed)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.List)
			notifications.PATCH("/mark-all-read", notificationController.MarkAllRead)
			notifications.PATCH("/:id/read", notificationController.MarkRead)
			notifications.DELETE("/:id", notificationController.Delete)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
