package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// authRequired verifies the access token and stashes the caller's identity
// on the context. Tokens arrive as "Authorization: Bearer <token>" or, for
// older clients, an x-auth-token header.
func authRequired(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		claims, err := tokens.Validate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}
		c.Set("userId", claims.UserID)
		c.Next()
	}
}

// adminRequired re-fetches the user record to confirm the admin flag
// server-side instead of trusting the token claim.
func adminRequired(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		if err := customers.RequireAdmin(c.Request.Context(), userID); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Admins only."})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return c.GetHeader("x-auth-token")
}

func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
