package middlewares

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "dws_session"
	sessionContextKey = "sessionID"
	sessionLifetime   = 30 * 24 * time.Hour
)

// CartSession pins every storefront visitor to a session id carried in
// a signed cookie. The id keys both the in-memory cart and the
// recovery slot.
func CartSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		secret := []byte(os.Getenv("JWT_SECRET"))

		if sid := sessionFromCookie(ctx, secret); sid != "" {
			ctx.Set(sessionContextKey, sid)
			ctx.Next()
			return
		}

		sid := uuid.NewString()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sid": sid,
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(sessionLifetime).Unix(),
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			log.Println("failed to sign session token:", err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to start session"})
			return
		}

		ctx.SetCookie(SessionCookieName, signed, int(sessionLifetime.Seconds()), "/", "", false, true)
		ctx.Set(sessionContextKey, sid)
		ctx.Next()
	}
}

func sessionFromCookie(ctx *gin.Context, secret []byte) string {
	cookie, err := ctx.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	token, err := jwt.Parse(cookie, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	sid, _ := claims["sid"].(string)
	return sid
}

// SessionID returns the session id set by CartSession.
func SessionID(ctx *gin.Context) string {
	value, _ := ctx.Get(sessionContextKey)
	sid, _ := value.(string)
	return sid
}
