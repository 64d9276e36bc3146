package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nct_portal/internal/adapter/http/handlers/mocks"
	"nct_portal/internal/domain/entities"
	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/domain/pricing"
	"nct_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults applied before the usecase sees the command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ lifecycle.Actor, cmd usecase.CreateOrderCommand) (entities.Order, pricing.Quote, error) {
				if cmd.Pages != 1 || cmd.NumDocs != 1 {
					t.Fatalf("expected defaulted pages/numDocs, got %d/%d", cmd.Pages, cmd.NumDocs)
				}
				if cmd.DeliveryMethod != string(pricing.DeliveryPickup) {
					t.Fatalf("expected pickup delivery, got %q", cmd.DeliveryMethod)
				}
				return entities.Order{ID: "o-1", Status: entities.StatusNewTicket}, pricing.Quote{Total: 15000}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"serviceType":"full-service","customerName":"Ali"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Order struct {
				ID string `json:"id"`
			} `json:"order"`
			Quote struct {
				Total int64 `json:"total"`
			} `json:"quote"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body.Order.ID != "o-1" || body.Quote.Total != 15000 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing service type maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{}, pricing.Quote{}, usecase.ErrServiceTypeRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"customerName":"Ali"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("foreign order maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "o-2").Return(entities.Order{}, usecase.ErrAccessDenied)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		now := time.Now().UTC()
		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "o-1").Return(entities.Order{
			ID:        "o-1",
			Status:    entities.StatusTranslation,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is a valid no-reason cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/cancel", h.CancelOrder)

		uc.EXPECT().Cancel(gomock.Any(), gomock.Any(), "o-1", "").Return(entities.Order{ID: "o-1", Status: entities.StatusLost}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("past cancellation window maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/cancel", h.CancelOrder)

		uc.EXPECT().Cancel(gomock.Any(), gomock.Any(), "o-1", "too late").Return(entities.Order{}, lifecycle.ErrNotCancellable)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/cancel", bytes.NewBufferString(`{"reason":"too late"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderHandler_PriceCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to full service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/quote", h.PriceCheck)

		uc.EXPECT().PriceCheck(gomock.Any()).DoAndReturn(func(in pricing.Input) (pricing.Quote, error) {
			if in.ServiceType != pricing.FullService {
				t.Fatalf("expected full-service default, got %q", in.ServiceType)
			}
			return pricing.Quote{Total: 15000, Subtotal: 15000}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown vocabulary maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/quote", h.PriceCheck)

		uc.EXPECT().PriceCheck(gomock.Any()).Return(pricing.Quote{}, usecase.ErrInvalidPricingInput)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", bytes.NewBufferString(`{"serviceType":"premium"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
