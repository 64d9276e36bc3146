package handlers

import (
	"errors"
	"io"
	"net/http"

	request "nct_portal/internal/adapter/http/dto/request"
	response "nct_portal/internal/adapter/http/dto/response"
	"nct_portal/internal/adapter/http/middleware"
	"nct_portal/internal/usecase"
	"nct_portal/pkg"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 20 << 20

var (
	errMissingUploadFile = pkg.NewDomainErrorSimple("VALIDATION_FILE_REQUIRED", "A file form field is required", http.StatusBadRequest).
				WithArabic("حقل الملف مطلوب")
	errUploadTooLarge = pkg.NewDomainErrorSimple("VALIDATION_FILE_TOO_LARGE", "File exceeds the upload limit", http.StatusRequestEntityTooLarge).
				WithArabic("حجم الملف يتجاوز الحد المسموح")
)

type DocumentHandler struct {
	documents usecase.IDocumentUseCase
}

func NewDocumentHandler(documents usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// UploadDocument godoc
// @Summary      Upload a document to an order
// @Description  Stores the file in the order's Uploads folder and records a reference on the order.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Order id"
// @Param        file  formData  file    true  "Document"
// @Success      201   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.ErrorBody
// @Security     Bearer
// @Router       /orders/{id}/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingUploadFile.HTTPStatus, errMissingUploadFile.ToHTTPError())
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(errUploadTooLarge.HTTPStatus, errUploadTooLarge.ToHTTPError())
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(errMissingUploadFile.HTTPStatus, errMissingUploadFile.ToHTTPError())
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, _, err := h.documents.Upload(c.Request.Context(), middleware.Actor(c), usecase.UploadDocumentCommand{
		OrderID:  c.Param("id"),
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Content:  content,
	})
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListDocuments godoc
// @Summary      List an order's documents
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  response.DocumentListResponse
// @Security     Bearer
// @Router       /orders/{id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	orderID := c.Param("id")

	documents, err := h.documents.ListDocuments(c.Request.Context(), middleware.Actor(c), orderID)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.DocumentListResponse{OrderID: orderID, Documents: []response.AttachmentResponse{}}
	for _, doc := range documents {
		out.Documents = append(out.Documents, response.AttachmentResponse{Name: doc.Name, URL: doc.URL})
	}
	c.JSON(http.StatusOK, out)
}

// DeleteFile godoc
// @Summary      Delete a stored file
// @Tags         documents
// @Produce      json
// @Param        fileId  path  string  true  "Drive file id"
// @Success      204
// @Security     Bearer
// @Router       /admin/files/{fileId} [delete]
func (h *DocumentHandler) DeleteFile(c *gin.Context) {
	if err := h.documents.DeleteFile(c.Request.Context(), middleware.Actor(c), c.Param("fileId")); err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ExtractDocument godoc
// @Summary      Extract text from a document image
// @Description  Runs the image through the AI collaborator and appends the extracted text to the order notes.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "Order id"
// @Param        file          formData  file    true   "Document image"
// @Param        documentType  formData  string  false  "Document type hint"
// @Success      200           {object}  response.ExtractionResponse
// @Security     Bearer
// @Router       /orders/{id}/extract [post]
func (h *DocumentHandler) ExtractDocument(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingUploadFile.HTTPStatus, errMissingUploadFile.ToHTTPError())
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(errMissingUploadFile.HTTPStatus, errMissingUploadFile.ToHTTPError())
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	extraction, err := h.documents.Extract(
		c.Request.Context(),
		middleware.Actor(c),
		c.Param("id"),
		image,
		header.Header.Get("Content-Type"),
		c.PostForm("documentType"),
	)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExtraction(extraction))
}

// Translate godoc
// @Summary      Translate a text snippet
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        input  body      request.TranslateRequest  true  "Text and language pair"
// @Success      200    {object}  response.TranslationResponse
// @Security     Bearer
// @Router       /ai/translate [post]
func (h *DocumentHandler) Translate(c *gin.Context) {
	var payload request.TranslateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	from, to := payload.ResolveFrom(), payload.ResolveTo()
	translated, err := h.documents.Translate(c.Request.Context(), middleware.Actor(c), payload.Text, from, to)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.TranslationResponse{Translated: translated, From: from, To: to})
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyFile):
		return pkg.NewDomainErrorSimple("VALIDATION_EMPTY_FILE", "The uploaded file is empty", http.StatusBadRequest).
			WithArabic("الملف المرفوع فارغ")
	case errors.Is(err, usecase.ErrFileNameMissing):
		return pkg.NewDomainErrorSimple("VALIDATION_FILE_NAME_REQUIRED", "A file name is required", http.StatusBadRequest).
			WithArabic("اسم الملف مطلوب")
	default:
		return mapOrderError(err)
	}
}
