package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createPaymentOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// createRazorpayOrderHandler proxies payment-order creation to the gateway.
// The returned id is echoed back by the client at checkout for correlation.
func createRazorpayOrderHandler(payments PaymentGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPaymentOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		if req.Amount <= 0 || req.Currency == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Amount and currency are required."})
			return
		}
		order, err := payments.CreateOrder(c.Request.Context(), req.Amount, req.Currency, req.Receipt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Razorpay order: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orderId": order.ID, "currency": order.Currency, "amount": order.Amount})
	}
}
