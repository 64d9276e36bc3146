package routes

import (
	"nct_portal/internal/adapter/http/handlers"
	"nct_portal/internal/adapter/http/middleware"
	"nct_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, auth usecase.IAuthUseCase) {
	public := rg.Group(PathAuth)
	{
		public.POST("/login", authHandler.LoginVIP)
		public.POST("/verify", authHandler.VerifyToken)
		public.POST("/refresh", authHandler.Refresh)
	}

	private := rg.Group(PathAuth, middleware.RequireAuth(auth))
	{
		private.GET("/me", authHandler.Me)
		private.POST("/logout", authHandler.Logout)
	}
}
