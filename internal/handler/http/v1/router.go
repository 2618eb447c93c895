package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestID())

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/register", h.register)
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)
	}

	// Публичные формы и объявления
	api.POST("/emergencies", h.createEmergency)
	api.GET("/location", h.locate)
	api.GET("/announcements", h.listAnnouncements)
	api.GET("/notifications", h.listNotifications)
	api.DELETE("/notifications/:id", h.dismissNotification)

	member := api.Group("", RequireRoles(h.Session, h.logger))
	{
		member.POST("/certificates", h.createCertificate)
		member.POST("/business-permits", h.createBusinessPermit)
		member.POST("/complaints", h.createComplaint)
		member.GET("/complaints/mine", h.listMyComplaints)
		member.GET("/me/id-card", h.downloadIDCard)
	}

	resident := api.Group("", RequireRoles(h.Session, h.logger, residentRoles...))
	{
		resident.POST("/blotters", h.createBlotter)
	}

	panel := api.Group("/panel", RequireRoles(h.Session, h.logger, staffRoles...))
	{
		panel.GET("", h.getPanel)
		panel.POST("/sound", h.setSound)
		panel.POST("/dismiss", h.dismissPanel)
		panel.DELETE("/details", h.closeDetails)
		panel.GET("/reports/:id", h.viewReport)
		panel.PATCH("/reports/:id/status", h.changeReportStatus)
		panel.DELETE("/reports/:id", h.dismissReport)
	}

	board := api.Group("/dashboard", RequireRoles(h.Session, h.logger, staffRoles...), RecoveryBoundary(h.logger))
	{
		board.GET("", h.listBoards)
		board.GET("/:resource", h.viewBoard)
		board.GET("/:resource/:id", h.getRecord)
		board.PATCH("/:resource/:id/status", h.setRecordStatus)
		board.DELETE("/:resource/:id", h.deleteRecord)
	}
}
