package routes

import (
	"github.com/gin-gonic/gin"

	"weiyue/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	// LoginLimit is applied to the login route when set.
	LoginLimit gin.HandlerFunc
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	login := []gin.HandlerFunc{config.AuthHandler.Login}
	if config.LoginLimit != nil {
		login = append([]gin.HandlerFunc{config.LoginLimit}, login...)
	}
	api.POST("/login", login...)
	api.POST("/register", config.AuthHandler.Register)
	api.GET("/users/:id", config.AuthHandler.GetUser)
}
