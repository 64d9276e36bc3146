package handlers

import (
	"net/http"

	"nct_portal/internal/domain/pricing"

	"github.com/gin-gonic/gin"
)

// PricingHandler serves the bilingual price list straight from the engine's
// rate table, so deployment overrides show up without a restart dance.

type PricingHandler struct {
	engine *pricing.Engine
}

func NewPricingHandler(engine *pricing.Engine) *PricingHandler {
	return &PricingHandler{engine: engine}
}

// GetPriceList godoc
// @Summary      Get the price list
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  pricing.PriceList
// @Router       /pricing [get]
func (h *PricingHandler) GetPriceList(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.PriceList())
}
