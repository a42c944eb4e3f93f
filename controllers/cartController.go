package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/dewrapsquare/dewrap-api/middlewares"
	"github.com/dewrapsquare/dewrap-api/services"
	"github.com/gin-gonic/gin"
)

func GetCart(carts *services.CartService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		view := carts.Get(middlewares.SessionID(ctx))
		sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": view})
	}
}

func AddCartItem(carts *services.CartService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body struct {
			Name  string  `json:"name" binding:"required"`
			Size  string  `json:"size" binding:"required"`
			Price float64 `json:"price" binding:"gte=0"`
		}
		if err := ctx.ShouldBindJSON(&body); err != nil {
			log.Println("Bind error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		view := carts.Add(middlewares.SessionID(ctx), body.Name, body.Size, body.Price)
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": body.Name + " added to cart",
			"cart":    view,
		})
	}
}

func cartIndex(ctx *gin.Context) (int, bool) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item index")
		return 0, false
	}
	return index, true
}

func IncreaseCartItem(carts *services.CartService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		index, ok := cartIndex(ctx)
		if !ok {
			return
		}
		view := carts.Increase(middlewares.SessionID(ctx), index)
		sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": view})
	}
}

func DecreaseCartItem(carts *services.CartService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		index, ok := cartIndex(ctx)
		if !ok {
			return
		}
		view := carts.Decrease(middlewares.SessionID(ctx), index)
		sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": view})
	}
}

func RemoveCartItem(carts *services.CartService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		index, ok := cartIndex(ctx)
		if !ok {
			return
		}
		view := carts.Remove(middlewares.SessionID(ctx), index)
		sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": view})
	}
}

// ClearCart refuses to empty a non-empty cart unless the client
// confirms, mirroring the storefront's "remove all items?" prompt.
func ClearCart(carts *services.CartService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sessionID := middlewares.SessionID(ctx)

		view := carts.Get(sessionID)
		if len(view.Items) > 0 && ctx.Query("confirm") != "true" {
			sendErrorResponse(ctx, http.StatusConflict, "Confirmation required to clear the cart")
			return
		}

		view = carts.Clear(sessionID)
		sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": view})
	}
}
