package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerHandler(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		if _, err := customers.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
			respondError(c, err, "User not found", "User already exists")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
	}
}

func loginHandler(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		user, token, err := customers.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err, "User not found", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

func adminLoginHandler(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		user, token, err := customers.AdminLogin(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err, "User not found", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

func profileHandler(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		user, err := customers.Profile(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "User not found", "")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func adminListUsersHandler(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := customers.ListUsers(c.Request.Context())
		if err != nil {
			respondError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

func adminDeleteUserHandler(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		targetID, err := primitive.ObjectIDFromHex(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id."})
			return
		}
		if err := customers.DeleteUser(c.Request.Context(), adminID, targetID); err != nil {
			respondError(c, err, "User not found.", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User and associated data deleted successfully!"})
	}
}
