package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func generateAdminJWT(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     "admin",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 7).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// Login authenticates the shop owner against env-seeded credentials.
func Login(ctx *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminHash == "" {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Admin account is not configured")
		return
	}

	if body.Username != adminUsername ||
		bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(body.Password)) != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	token, err := generateAdminJWT(body.Username)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": token})
}
