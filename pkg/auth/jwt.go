package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskmanager/internal/core/domain"
)

// JWT issues and verifies HS256 session tokens. Issuer, audience, secret and
// expiry horizon are supplied by configuration.
type JWT struct {
	Secret          string
	Issuer          string
	Audience        string
	ExpirationHours int
}

// Issue signs a token embedding the subject id, email, username and role,
// expiring after the configured horizon (24 hours when unset).
func (j *JWT) Issue(user *domain.User) (string, time.Time, error) {
	hours := j.ExpirationHours

	if hours <= 0 {
		hours = 24
	}

	expiresAt := time.Now().UTC().Add(time.Duration(hours) * time.Hour)

	claims := jwt.MapClaims{
		"sub":      strconv.Itoa(user.ID),
		"email":    user.Email,
		"username": user.Username,
		"role":     string(user.Role()),
		"iss":      j.Issuer,
		"aud":      j.Audience,
		"jti":      uuid.NewString(),
		"iat":      time.Now().UTC().Unix(),
		"exp":      expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.Secret))

	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func (j *JWT) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}

	return token.Claims.(jwt.MapClaims), nil
}

// GinMiddleware rejects requests without a valid bearer token and exposes
// the authenticated user id as "x-user-id" on the context.
func (j *JWT) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Invalid authorization format"},
			})

			c.Abort()
			return
		}

		claims, err := j.Verify(bearer[len("Bearer "):])

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request", err.Error()},
			})
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := strconv.Atoi(sub)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})
			c.Abort()
			return
		}

		c.Set("x-user-id", userID)
		c.Set("x-user-role", claims["role"])
		c.Next()
	}
}
