package routes

import (
	"nct_portal/internal/adapter/http/handlers"
	"nct_portal/internal/adapter/http/middleware"
	"nct_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders  = "/orders"
	PathPricing = "/pricing"
)

// addPricingRoutes exposes the public price list and the dry-run quote. No
// session needed: visitors price a job before signing up.
func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler, orderHandler *handlers.OrderHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("", pricingHandler.GetPriceList)
		pricing.POST("/quote", orderHandler.PriceCheck)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, documentHandler *handlers.DocumentHandler, auth usecase.IAuthUseCase) {
	orders := rg.Group(PathOrders, middleware.RequireAuth(auth))
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListMyOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.POST("/:id/cancel", orderHandler.CancelOrder)
		orders.GET("/:id/timeline", orderHandler.GetTimeline)

		orders.POST("/:id/documents", documentHandler.UploadDocument)
		orders.GET("/:id/documents", documentHandler.ListDocuments)
		orders.POST("/:id/extract", documentHandler.ExtractDocument)
	}

	ai := rg.Group("/ai", middleware.RequireAuth(auth))
	{
		ai.POST("/translate", documentHandler.Translate)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, auth usecase.IAuthUseCase) {
	catalog := rg.Group("/catalog", middleware.RequireAuth(auth))
	{
		catalog.GET("/document-types", catalogHandler.GetDocumentTypes)
		catalog.GET("/languages", catalogHandler.GetLanguages)
	}
}
