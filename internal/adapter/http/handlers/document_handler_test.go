package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"nct_portal/internal/adapter/http/handlers/mocks"
	"nct_portal/internal/domain/entities"
	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartFile(t *testing.T, field, name, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestDocumentHandler_UploadDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/documents", h.UploadDocument)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/documents", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/documents", h.UploadDocument)

		uc.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ lifecycle.Actor, cmd usecase.UploadDocumentCommand) (entities.Order, entities.DriveFile, error) {
				if cmd.OrderID != "o-1" || cmd.FileName != "passport.jpg" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if string(cmd.Content) != "jpeg-bytes" {
					t.Fatalf("file content not forwarded")
				}
				return entities.Order{ID: "o-1"}, entities.DriveFile{ID: "f-1"}, nil
			})

		body, contentType := multipartFile(t, "file", "passport.jpg", "jpeg-bytes")
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/documents", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("empty file maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/documents", h.UploadDocument)

		uc.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{}, entities.DriveFile{}, usecase.ErrEmptyFile)

		body, contentType := multipartFile(t, "file", "empty.pdf", "")
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/documents", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_ListDocuments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty list stays a list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/documents", h.ListDocuments)

		uc.EXPECT().ListDocuments(gomock.Any(), gomock.Any(), "o-1").Return([]entities.Attachment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1/documents", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"documents":[]`)) {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestDocumentHandler_Translate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("language pair defaults to en and ar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/ai/translate", h.Translate)

		uc.EXPECT().Translate(gomock.Any(), gomock.Any(), "hello", "en", "ar").Return("مرحبا", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ai/translate", bytes.NewBufferString(`{"text":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("مرحبا")) {
			t.Fatalf("expected translation in body, got %s", w.Body.String())
		}
	})

	t.Run("missing text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/ai/translate", h.Translate)

		req := httptest.NewRequest(http.MethodPost, "/v1/ai/translate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
