package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
)

func listAddressesHandler(addresses AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		list, err := addresses.List(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func createAddressHandler(addresses AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		var a domain.Address
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		created, err := addresses.Create(c.Request.Context(), userID, a)
		if err != nil {
			respondError(c, err, "", "")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateAddressHandler(addresses AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address id."})
			return
		}
		var a domain.Address
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		updated, err := addresses.Update(c.Request.Context(), id, userID, a)
		if err != nil {
			respondError(c, err, "Address not found or not authorized", "")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteAddressHandler(addresses AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address id."})
			return
		}
		if err := addresses.Delete(c.Request.Context(), id, userID); err != nil {
			respondError(c, err, "Address not found or not authorized", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
	}
}
