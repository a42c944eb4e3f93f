package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dewrapsquare/dewrap-api/middlewares"
	"github.com/dewrapsquare/dewrap-api/models"
	"github.com/dewrapsquare/dewrap-api/services"
	"github.com/gin-gonic/gin"
)

func Checkout(orders *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var customer models.CustomerInfo
		if err := ctx.ShouldBindJSON(&customer); err != nil {
			log.Println("Bind error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		resp, err := orders.Checkout(ctx.Request.Context(), middlewares.SessionID(ctx), customer)
		if err != nil {
			orderErrorResponse(ctx, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Order created. Redirect user to payment.",
			"payment": resp,
		})
	}
}

type paymentOutcomeBody struct {
	Reference string `json:"reference" binding:"required"`
}

func ConfirmPayment(orders *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body paymentOutcomeBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		handoff, err := orders.ConfirmPayment(ctx.Request.Context(), middlewares.SessionID(ctx), body.Reference)
		if err != nil {
			orderErrorResponse(ctx, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": handoff.Message,
			"handoff": handoff,
		})
	}
}

func CancelPayment(orders *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body paymentOutcomeBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		if err := orders.CancelPayment(ctx.Request.Context(), middlewares.SessionID(ctx), body.Reference); err != nil {
			orderErrorResponse(ctx, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgPaymentCancelled})
	}
}

// GetRecovery reports the in-flight order the session may resume, if
// any survives reconciliation.
func GetRecovery(orders *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		record, err := orders.Recover(ctx.Request.Context(), middlewares.SessionID(ctx))
		if err != nil {
			log.Println("recovery load failed:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"recovery": record})
	}
}

func ResumeRecovery(orders *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		handoff, err := orders.ResumeRecovery(ctx.Request.Context(), middlewares.SessionID(ctx))
		if err != nil {
			orderErrorResponse(ctx, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": handoff.Message,
			"handoff": handoff,
		})
	}
}

func DiscardRecovery(orders *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := orders.DiscardRecovery(ctx.Request.Context(), middlewares.SessionID(ctx)); err != nil {
			orderErrorResponse(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Saved order discarded."})
	}
}

// orderErrorResponse maps lifecycle errors onto one user-visible
// message each.
func orderErrorResponse(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidName),
		errors.Is(err, services.ErrInvalidPhone),
		errors.Is(err, services.ErrMissingAddress):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNoPendingOrder):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrPaymentNotConfirmed):
		sendErrorResponse(ctx, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, services.ErrIllegalTransition):
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
	default:
		log.Println("order error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to process order. Try again later.")
	}
}
