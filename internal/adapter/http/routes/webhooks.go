package routes

import (
	"nct_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWebhooks = "/webhooks"

// Webhook routes authenticate by body signature, not bearer token.
func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/zaincash", webhookHandler.ZainCash)
		webhooks.POST("/qicard", webhookHandler.QiCard)
	}
}
