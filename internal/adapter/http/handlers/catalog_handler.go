package handlers

import (
	"net/http"

	"nct_portal/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static UI vocabulary: document types with their
// extractable fields, and the supported language pairs.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetDocumentTypes godoc
// @Summary      Document types with their extractable fields
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]entities.DocumentTypeInfo
// @Security     Bearer
// @Router       /catalog/document-types [get]
func (h *CatalogHandler) GetDocumentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"documentTypes": entities.DocumentTypeCatalog})
}

// GetLanguages godoc
// @Summary      Supported languages and translation pairs
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]any
// @Security     Bearer
// @Router       /catalog/languages [get]
func (h *CatalogHandler) GetLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": entities.Languages,
		"pairs":     entities.LanguagePairs,
	})
}
