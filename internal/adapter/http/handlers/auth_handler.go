package handlers

import (
	"errors"
	"net/http"

	request "nct_portal/internal/adapter/http/dto/request"
	response "nct_portal/internal/adapter/http/dto/response"
	"nct_portal/internal/adapter/http/middleware"
	"nct_portal/internal/usecase"
	"nct_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("VALIDATION_INVALID_PAYLOAD", "Invalid authentication payload", http.StatusBadRequest).
	WithArabic("بيانات تسجيل الدخول غير صالحة")

type AuthHandler struct {
	auth   usecase.IAuthUseCase
	orders usecase.IOrderUseCase
}

func NewAuthHandler(auth usecase.IAuthUseCase, orders usecase.IOrderUseCase) *AuthHandler {
	return &AuthHandler{auth: auth, orders: orders}
}

// LoginVIP godoc
// @Summary      VIP membership login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      request.VIPLoginRequest  true  "Membership id and password"
// @Success      200          {object}  response.SessionResponse
// @Failure      401          {object}  pkg.ErrorBody
// @Router       /auth/login [post]
func (h *AuthHandler) LoginVIP(c *gin.Context) {
	var payload request.VIPLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	session, err := h.auth.LoginVIP(c.Request.Context(), payload.ProfileID, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// VerifyToken godoc
// @Summary      Exchange an external phone-auth token for a portal session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  body      request.VerifyTokenRequest  true  "Provider id token"
// @Success      200    {object}  response.SessionResponse
// @Failure      401    {object}  pkg.ErrorBody
// @Router       /auth/verify [post]
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var payload request.VerifyTokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	session, err := h.auth.VerifyExternal(c.Request.Context(), payload.IDToken, payload.Name)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  body      request.RefreshTokenRequest  true  "Refresh token"
// @Success      200    {object}  response.SessionResponse
// @Failure      401    {object}  pkg.ErrorBody
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var payload request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	session, err := h.auth.Refresh(c.Request.Context(), payload.RefreshToken)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Me godoc
// @Summary      Current profile with order count
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.MeResponse
// @Security     Bearer
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.Actor(c)

	profile, err := h.auth.Me(c.Request.Context(), actor)
	if err != nil && !errors.Is(err, usecase.ErrProfileNotFound) {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	// External-auth users may have no stored profile yet; fall back to claims.
	if profile.Phone == "" {
		profile.Phone = actor.Phone
		if claims, ok := middleware.Claims(c); ok {
			profile.Name = claims.Name
			profile.ProfileID = claims.ProfileID
		}
	}

	_, orderCount, err := h.orders.ListByActor(c.Request.Context(), actor, "", 1, 1)
	if err != nil {
		orderCount = 0
	}

	c.JSON(http.StatusOK, response.MeResponse{
		Profile:    response.FromProfile(profile),
		IsAdmin:    actor.IsAdmin,
		OrderCount: orderCount,
	})
}

// Logout godoc
// @Summary      Logout acknowledgement
// @Description  Tokens are stateless; the client discards them.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Security     Bearer
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"loggedOut": true})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("AUTH_PROFILE_NOT_FOUND", "Profile not found", http.StatusUnauthorized).
			WithArabic("الملف الشخصي غير موجود")
	case errors.Is(err, usecase.ErrWrongPassword):
		return pkg.NewDomainErrorSimple("AUTH_WRONG_PASSWORD", "Wrong password", http.StatusUnauthorized).
			WithArabic("كلمة المرور غير صحيحة")
	case errors.Is(err, usecase.ErrTokenExpired):
		return pkg.NewDomainErrorSimple("AUTH_TOKEN_EXPIRED", "Token expired", http.StatusUnauthorized).
			WithArabic("انتهت صلاحية رمز الدخول")
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("AUTH_INVALID_TOKEN", "Invalid token", http.StatusUnauthorized).
			WithArabic("رمز الدخول غير صالح")
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError).
			WithArabic("حدث خطأ داخلي")
	}
}
