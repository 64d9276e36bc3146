package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nct_portal/internal/adapter/http/handlers/mocks"
	"nct_portal/internal/domain/entities"
	"nct_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_LoginVIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAuthHandler(auth, orders)

		r := gin.New()
		r.POST("/v1/auth/login", h.LoginVIP)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAuthHandler(auth, orders)

		r := gin.New()
		r.POST("/v1/auth/login", h.LoginVIP)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"profileId":"NCTV-10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong password maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAuthHandler(auth, orders)

		r := gin.New()
		r.POST("/v1/auth/login", h.LoginVIP)

		auth.EXPECT().LoginVIP(gomock.Any(), "NCTV-10", "nope").Return(usecase.Session{}, usecase.ErrWrongPassword)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"profileId":"NCTV-10","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAuthHandler(auth, orders)

		r := gin.New()
		r.POST("/v1/auth/login", h.LoginVIP)

		auth.EXPECT().LoginVIP(gomock.Any(), "NCTV-10", "secret").Return(usecase.Session{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    86400,
			Profile:      entities.VIPProfile{ProfileID: "NCTV-10", Name: "Ali", Phone: "+9647700000001"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"profileId":"NCTV-10","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			AccessToken string `json:"accessToken"`
			Profile     struct {
				ProfileID string `json:"profileId"`
			} `json:"profile"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body.AccessToken != "access" || body.Profile.ProfileID != "NCTV-10" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("expired refresh token maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAuthHandler(auth, orders)

		r := gin.New()
		r.POST("/v1/auth/refresh", h.Refresh)

		auth.EXPECT().Refresh(gomock.Any(), "stale").Return(usecase.Session{}, usecase.ErrTokenExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", bytes.NewBufferString(`{"refreshToken":"stale"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAuthHandler(auth, orders)

		r := gin.New()
		r.POST("/v1/auth/refresh", h.Refresh)

		auth.EXPECT().Refresh(gomock.Any(), "refresh").Return(usecase.Session{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", bytes.NewBufferString(`{"refreshToken":"refresh"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("profile with order count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAuthHandler(auth, orders)

		r := gin.New()
		r.GET("/v1/auth/me", h.Me)

		auth.EXPECT().Me(gomock.Any(), gomock.Any()).Return(entities.VIPProfile{ProfileID: "NCTV-10", Name: "Ali", Phone: "+9647700000001"}, nil)
		orders.EXPECT().ListByActor(gomock.Any(), gomock.Any(), "", 1, 1).Return(nil, 7, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			OrderCount int `json:"orderCount"`
			Profile    struct {
				Name string `json:"name"`
			} `json:"profile"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body.OrderCount != 7 || body.Profile.Name != "Ali" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no stored profile still answers from claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAuthHandler(auth, orders)

		r := gin.New()
		r.GET("/v1/auth/me", h.Me)

		auth.EXPECT().Me(gomock.Any(), gomock.Any()).Return(entities.VIPProfile{}, usecase.ErrProfileNotFound)
		orders.EXPECT().ListByActor(gomock.Any(), gomock.Any(), "", 1, 1).Return(nil, 0, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
