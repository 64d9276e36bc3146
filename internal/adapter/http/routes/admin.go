package routes

import (
	"nct_portal/internal/adapter/http/handlers"
	"nct_portal/internal/adapter/http/middleware"
	"nct_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, documentHandler *handlers.DocumentHandler, auth usecase.IAuthUseCase) {
	admin := rg.Group(PathAdmin, middleware.RequireAuth(auth), middleware.RequireAdmin())
	{
		admin.GET("/orders", adminHandler.ListOrders)
		admin.PUT("/orders/:id/status", adminHandler.SetStatus)
		admin.PUT("/orders/:id/payment", adminHandler.SetPayment)
		admin.POST("/orders/:id/requote", adminHandler.Requote)

		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/statistics", adminHandler.Statistics)
		admin.GET("/customers", adminHandler.Customers)
		admin.GET("/customers/:phone", adminHandler.CustomerDetail)

		admin.DELETE("/files/:fileId", documentHandler.DeleteFile)
	}
}
