package routes

import (
	"github.com/dewrapsquare/dewrap-api/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/status", controllers.GetShopStatus)
}
