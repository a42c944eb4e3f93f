package controllers

import (
	"net/http"
	"time"

	"github.com/dewrapsquare/dewrap-api/utils"
	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the De Wrap Square API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

SHOP
- GET "/status" - Shop open/closed status
- GET "/menu" - List menu items (optional ?category=)
- GET "/menu/{id}" - Get menu item by ID

CART (session cookie)
- GET "/cart" - Get cart contents and totals
- POST "/cart/items" - Add an item to the cart
- POST "/cart/items/{index}/increase" - Increase quantity
- POST "/cart/items/{index}/decrease" - Decrease quantity
- DELETE "/cart/items/{index}" - Remove an item
- DELETE "/cart?confirm=true" - Clear the cart

ORDER (session cookie)
- POST "/order/checkout" - Validate and start payment
- POST "/order/payment/confirm" - Confirm a completed payment
- POST "/order/payment/cancel" - Report a cancelled payment
- GET "/order/recovery" - Check for a recoverable order
- POST "/order/recovery/resume" - Resume a recovered order
- DELETE "/order/recovery" - Discard a recovered order

ADMIN
- POST "/auth/login" - Shop owner login
- POST "/menu" - Create a menu item
- PATCH "/menu/{id}" - Update a menu item
- DELETE "/menu/{id}" - Delete a menu item
- POST "/menu/{id}/image" - Upload a menu item image`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func GetShopStatus(ctx *gin.Context) {
	status := utils.ShopStatusAt(time.Now())
	ctx.JSON(http.StatusOK, gin.H{"status": status})
}
