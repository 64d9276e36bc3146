package middleware

import (
	"net/http"
	"strings"

	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/usecase"
	"nct_portal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	actorKey  = "auth.actor"
	claimsKey = "auth.claims"
)

var (
	errMissingBearer = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed Authorization header", http.StatusUnauthorized).
				WithArabic("ترويسة التفويض مفقودة أو غير صالحة")
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized).
			WithArabic("رمز الدخول غير صالح أو منتهي الصلاحية")
	errAdminOnly = pkg.NewDomainErrorSimple("ACCESS_DENIED", "Admin access required", http.StatusForbidden).
			WithArabic("هذه العملية تتطلب صلاحية المشرف")
)

// RequireAuth validates the bearer token and stores the acting identity on
// the request context.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errMissingBearer.HTTPStatus, errMissingBearer.ToHTTPError())
			return
		}

		actor, claims, err := auth.VerifyAccess(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(actorKey, actor)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Actor(c).IsAdmin {
			c.AbortWithStatusJSON(errAdminOnly.HTTPStatus, errAdminOnly.ToHTTPError())
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated identity, or a zero Actor outside the
// authenticated route groups.
func Actor(c *gin.Context) lifecycle.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(lifecycle.Actor); ok {
			return actor
		}
	}
	return lifecycle.Actor{}
}

// Claims returns the verified token claims, if any.
func Claims(c *gin.Context) (usecase.Claims, bool) {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(usecase.Claims); ok {
			return claims, true
		}
	}
	return usecase.Claims{}, false
}
