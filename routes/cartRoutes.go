package routes

import (
	"github.com/dewrapsquare/dewrap-api/controllers"
	"github.com/dewrapsquare/dewrap-api/middlewares"
	"github.com/dewrapsquare/dewrap-api/services"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, carts *services.CartService) {
	cart := server.Group("/cart", middlewares.CartSession())
	{
		cart.GET("", controllers.GetCart(carts))
		cart.POST("/items", controllers.AddCartItem(carts))
		cart.POST("/items/:index/increase", controllers.IncreaseCartItem(carts))
		cart.POST("/items/:index/decrease", controllers.DecreaseCartItem(carts))
		cart.DELETE("/items/:index", controllers.RemoveCartItem(carts))
		cart.DELETE("", controllers.ClearCart(carts))
	}
}
