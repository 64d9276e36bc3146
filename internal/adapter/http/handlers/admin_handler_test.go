package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nct_portal/internal/adapter/http/handlers/mocks"
	"nct_portal/internal/domain/entities"
	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query filters reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		stats := mocks.NewMockIStatsUseCase(ctrl)
		h := NewAdminHandler(orders, stats)

		r := gin.New()
		r.GET("/v1/admin/orders", h.ListOrders)

		orders.EXPECT().AdminList(gomock.Any(), gomock.Any(), gomock.Any(), 10, "c-1").DoAndReturn(
			func(_ context.Context, _ lifecycle.Actor, filter entities.OrderFilter, _ int, _ string) (entities.OrderPage, error) {
				if filter.Status != entities.StatusTranslation {
					t.Fatalf("expected status filter, got %q", filter.Status)
				}
				if filter.DateFrom.IsZero() || filter.DateTo.IsZero() {
					t.Fatalf("expected parsed date range, got %+v", filter)
				}
				return entities.OrderPage{Orders: []entities.Order{{ID: "o-1"}}, HasMore: true, NextCursor: "c-2"}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders?status=Translation&dateFrom=2026-08-01&dateTo=2026-08-31&pageSize=10&cursor=c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"nextCursor":"c-2"`)) {
			t.Fatalf("expected cursor in body, got %s", w.Body.String())
		}
	})
}

func TestAdminHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("terminal order maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		stats := mocks.NewMockIStatsUseCase(ctrl)
		h := NewAdminHandler(orders, stats)

		r := gin.New()
		r.PUT("/v1/admin/orders/:id/status", h.SetStatus)

		orders.EXPECT().SetStatus(gomock.Any(), gomock.Any(), "o-1", "Translation").Return(entities.Order{}, lifecycle.ErrTerminalStatus)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/orders/o-1/status", bytes.NewBufferString(`{"status":"Translation"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		stats := mocks.NewMockIStatsUseCase(ctrl)
		h := NewAdminHandler(orders, stats)

		r := gin.New()
		r.PUT("/v1/admin/orders/:id/status", h.SetStatus)

		orders.EXPECT().SetStatus(gomock.Any(), gomock.Any(), "o-1", "Translation").Return(entities.Order{ID: "o-1", Status: entities.StatusTranslation}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/orders/o-1/status", bytes.NewBufferString(`{"status":"Translation"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAdminHandler_Statistics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to the last month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		stats := mocks.NewMockIStatsUseCase(ctrl)
		h := NewAdminHandler(orders, stats)

		r := gin.New()
		r.GET("/v1/admin/statistics", h.Statistics)

		stats.EXPECT().Statistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ lifecycle.Actor, from, to time.Time) (usecase.StatisticsView, error) {
				if from.IsZero() || to.IsZero() {
					t.Fatalf("expected defaulted range, got %v..%v", from, to)
				}
				if !from.Before(to) {
					t.Fatalf("expected from < to, got %v..%v", from, to)
				}
				return usecase.StatisticsView{TotalOrders: 3}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/statistics", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAdminHandler_CustomerDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown customer maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		stats := mocks.NewMockIStatsUseCase(ctrl)
		h := NewAdminHandler(orders, stats)

		r := gin.New()
		r.GET("/v1/admin/customers/:phone", h.CustomerDetail)

		stats.EXPECT().CustomerDetail(gomock.Any(), gomock.Any(), "+964000").Return(usecase.CustomerDetailView{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/customers/+964000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
