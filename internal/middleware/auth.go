package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"gstfiler/internal/config"
	"gstfiler/internal/domain"
)

const (
	ContextKeySubject = "subject"
	ContextKeyGSTIN   = "gstin"
	ContextKeyClaims  = "claims"
)

// Claims are the JWT claims this service expects from the auth gateway.
type Claims struct {
	GSTIN string `json:"gstin"`
	jwt.RegisteredClaims
}

// AuthMiddleware returns Gin middleware that validates HMAC-signed JWT
// bearer tokens and injects the caller's subject and GSTIN into the context.
func AuthMiddleware(cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := parseToken(token, cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyGSTIN, claims.GSTIN)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

func parseToken(token string, cfg config.JWTConfig) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// GetSubject extracts the authenticated subject from the Gin context.
func GetSubject(c *gin.Context) (string, error) {
	val, exists := c.Get(ContextKeySubject)
	if !exists {
		return "", domain.ErrUnauthorized
	}
	return val.(string), nil
}

// GetGSTIN extracts the caller's GSTIN from the Gin context. Empty when the
// token carries none.
func GetGSTIN(c *gin.Context) string {
	val, exists := c.Get(ContextKeyGSTIN)
	if !exists {
		return ""
	}
	return val.(string)
}
