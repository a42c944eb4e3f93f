package routes

import (
	"github.com/dewrapsquare/dewrap-api/controllers"
	"github.com/dewrapsquare/dewrap-api/middlewares"
	"github.com/dewrapsquare/dewrap-api/services"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, orders *services.OrderService) {
	order := server.Group("/order", middlewares.CartSession())
	{
		order.POST("/checkout", controllers.Checkout(orders))
		order.POST("/payment/confirm", controllers.ConfirmPayment(orders))
		order.POST("/payment/cancel", controllers.CancelPayment(orders))
		order.GET("/recovery", controllers.GetRecovery(orders))
		order.POST("/recovery/resume", controllers.ResumeRecovery(orders))
		order.DELETE("/recovery", controllers.DiscardRecovery(orders))
	}
}
