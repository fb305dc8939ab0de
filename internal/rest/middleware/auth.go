package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// Claims carries the actor id. The subject claim is accepted as a fallback.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

func (c *Claims) actorID() int64 {
	if c.UserID > 0 {
		return c.UserID
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  http.StatusUnauthorized,
		"kind":    "Unauthorized",
		"message": msg,
	})
}

// AuthMiddleware verifies the bearer token and stores the actor id under "user_id".
// With an empty secret every request is rejected.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	if len(key) == 0 {
		logrus.Error("auth middleware has no signing secret, rejecting all tokens")
	}
	return func(c *gin.Context) {
		if len(key) == 0 {
			unauthorized(c, "authentication is not configured")
			return
		}
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
			unauthorized(c, "missing or malformed Authorization header")
			return
		}

		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !parsed.Valid {
			msg := "token is invalid"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token has expired"
			}
			logrus.WithField("request_id", c.GetString(ContextRequestID)).Debugf("jwt rejected: %v", err)
			unauthorized(c, msg)
			return
		}

		uid := claims.actorID()
		if uid <= 0 {
			unauthorized(c, "token carries no user id")
			return
		}
		c.Set("user_id", uid)
		c.Next()
	}
}
