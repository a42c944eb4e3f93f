package controllers

import "github.com/gin-gonic/gin"

const (
	msgInvalidInput        = "Invalid input"
	msgInternalServerError = "Internal server error"
	msgInvalidCredentials  = "invalid username or password"
	msgPaymentCancelled    = "Order was not placed because payment was cancelled."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}
