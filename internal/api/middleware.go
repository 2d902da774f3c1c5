package api

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// Constants for context keys
const (
	ContextUserIDKey  = "userID"
	ContextIsCoachKey = "isCoach"
)

// Fixed user-facing error messages.
const (
	MsgUnauthenticated = "Non authentifié"
	MsgAccessDenied    = "Accès refusé"
	MsgInvalidData     = "Données invalides"
	MsgServerError     = "Erreur serveur"
)

// sessionClaims mirrors the payload written by the auth service.
type sessionClaims struct {
	UserID  string `json:"uid"`
	IsCoach bool   `json:"coach"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware for JWT authentication.
// 401 is reserved for this middleware: a missing or invalid token.
// Every authenticated-but-disallowed case downstream is 403.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, MsgUnauthenticated)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, MsgUnauthenticated)
			return
		}
		tokenString := parts[1]

		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid || claims.UserID == "" {
			abortWithError(c, http.StatusUnauthorized, MsgUnauthenticated)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextIsCoachKey, claims.IsCoach)
		c.Next()
	}
}

// CoachMiddleware rejects non-coach callers. Must run AFTER AuthMiddleware.
func CoachMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isCoach, err := getIsCoachFromContext(c)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, MsgServerError)
			return
		}
		if !isCoach {
			abortWithError(c, http.StatusForbidden, MsgAccessDenied)
			return
		}
		c.Next()
	}
}

// AdminMiddleware guards the administrative endpoints with a shared
// secret header. An empty configured secret disables the surface.
func AdminMiddleware(adminSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-Admin-Secret")
		if adminSecret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(adminSecret)) != 1 {
			abortWithError(c, http.StatusUnauthorized, MsgUnauthenticated)
			return
		}
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}

// Helper function to get the coach flag from context (used by handlers)
func getIsCoachFromContext(c *gin.Context) (bool, error) {
	raw, exists := c.Get(ContextIsCoachKey)
	if !exists {
		return false, errors.New("coach flag not found in context")
	}
	isCoach, ok := raw.(bool)
	if !ok {
		return false, errors.New("invalid coach flag type in context")
	}
	return isCoach, nil
}
