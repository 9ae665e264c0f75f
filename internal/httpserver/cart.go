package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laptopstore-backend/internal/domain"
)

func getCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		items, err := carts.Items(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Cart not found for this user.", "")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func addToCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		var item domain.CartItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		items, err := carts.Add(c.Request.Context(), userID, item)
		if err != nil {
			respondError(c, err, "Cart not found for this user.", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart successfully", "cart": items})
	}
}

func updateCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		// Pointer so a missing or non-numeric quantity fails binding or the
		// nil check rather than defaulting to zero.
		var req struct {
			Quantity *int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be a positive number."})
			return
		}
		items, err := carts.UpdateQuantity(c.Request.Context(), userID, c.Param("productId"), *req.Quantity)
		if err != nil {
			respondError(c, err, "Product not found in cart to update.", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item quantity updated successfully", "cart": items})
	}
}

func removeCartItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		items, err := carts.Remove(c.Request.Context(), userID, c.Param("productId"))
		if err != nil {
			respondError(c, err, "Product not found in cart to remove.", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart successfully", "cart": items})
	}
}
