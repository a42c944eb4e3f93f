package routes

import (
	"github.com/dewrapsquare/dewrap-api/controllers"
	"github.com/dewrapsquare/dewrap-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func MenuRoutes(server *gin.Engine, db *gorm.DB) {
	server.GET("/menu", controllers.GetMenu(db))
	server.GET("/menu/:id", controllers.GetMenuItem(db))

	admin := server.Group("/menu", middlewares.Authenticate(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateMenuItem(db))
		admin.PATCH("/:id", controllers.UpdateMenuItem(db))
		admin.DELETE("/:id", controllers.DeleteMenuItem(db))
		admin.POST("/:id/image", controllers.UploadMenuItemImage(db))
	}
}
