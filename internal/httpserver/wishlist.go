package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laptopstore-backend/internal/domain"
)

func getWishlistHandler(wishlists WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		items, err := wishlists.Items(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Wishlist not found for this user.", "")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func addToWishlistHandler(wishlists WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		var item domain.WishlistItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		added, err := wishlists.Add(c.Request.Context(), userID, item)
		if err != nil {
			respondError(c, err, "Wishlist not found for this user.", "Product is already in your wishlist.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to wishlist successfully.", "item": added})
	}
}

func removeFromWishlistHandler(wishlists WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		if err := wishlists.Remove(c.Request.Context(), userID, c.Param("productId")); err != nil {
			respondError(c, err, "Product not found in wishlist.", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from wishlist successfully."})
	}
}
