package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
)

func listProductsHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}

func adminCreateProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		created, err := products.Create(c.Request.Context(), p)
		if err != nil {
			respondError(c, err, "Product not found.", "")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product": created})
	}
}

func adminUpdateProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id."})
			return
		}
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		updated, err := products.Update(c.Request.Context(), id, p)
		if err != nil {
			respondError(c, err, "Product not found.", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": updated})
	}
}

func adminDeleteProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id."})
			return
		}
		if err := products.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Product not found.", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
	}
}
