package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"smartstay/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey = "user_id"
	roleKey   = "role"
)

// RequireUser accepts an HS256 bearer token signed with secret and carrying
// an exp claim, and puts its sub claim on the context as the caller's user id.
func RequireUser(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return key, nil
		},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !tok.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidToken", "invalid token")
			c.Abort()
			return
		}

		userID, err := subjectID(claims)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidToken", err.Error())
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		if role, ok := claims["role"].(string); ok {
			c.Set(roleKey, role)
		}
		c.Next()
	}
}

// subjectID reads sub as a positive integer, sent either as a string or a number.
func subjectID(claims jwt.MapClaims) (uint, error) {
	var raw string
	switch v := claims["sub"].(type) {
	case string:
		raw = v
	case float64:
		raw = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return 0, fmt.Errorf("token has no subject")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("token subject %q is not a user id", raw)
	}
	return uint(id), nil
}

// CurrentUserID returns the id set by RequireUser.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id > 0
}
