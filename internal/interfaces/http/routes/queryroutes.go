package routes

import (
	"github.com/gin-gonic/gin"

	"weiyue/internal/interfaces/http/handlers"
)

type QueryRouteConfig struct {
	CustomerHandler   *handlers.CustomerHandler
	StatisticsHandler *handlers.StatisticsHandler
	OptionsHandler    *handlers.OptionsHandler
	FileHandler       *handlers.FileHandler
}

func SetupQueryRoutes(api *gin.RouterGroup, config *QueryRouteConfig) {
	customers := api.Group("/customers")
	{
		customers.GET("", config.CustomerHandler.ListCustomers)
		customers.GET("/defaulted", config.CustomerHandler.ListDefaulted)
		customers.GET("/:id", config.CustomerHandler.GetCustomer)
	}

	api.GET("/statistics", config.StatisticsHandler.GetStatistics)

	api.GET("/options/severity", config.OptionsHandler.Severity)
	api.GET("/options/status", config.OptionsHandler.Status)

	api.POST("/files", config.FileHandler.Upload)
	api.GET("/files/:name", config.FileHandler.Download)
}
