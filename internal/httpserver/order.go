package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	orderrepo "laptopstore-backend/internal/repository/order"
	ordersvc "laptopstore-backend/internal/service/order"
)

func placeOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		var in ordersvc.PlaceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}
		placed, err := orders.Place(c.Request.Context(), userID, in)
		if err != nil {
			respondError(c, err, "Order not found.", "Order with this ID already exists. Please try again.")
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully!",
			"orderId": placed.OrderID,
			"order":   placed,
		})
	}
}

func listUserOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		list, err := orders.ListForUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Order not found.", "")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func getOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		order, err := orders.GetForUser(c.Request.Context(), c.Param("orderId"), userID)
		if err != nil {
			respondError(c, err, "Order not found or you do not have permission to view it.", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

func adminListOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := parseOrderFilter(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		list, err := orders.ListAll(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

func adminUpdateOrderStatusHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order status provided."})
			return
		}
		order, err := orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status)
		if err != nil {
			respondError(c, err, "Order not found.", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully!", "order": order})
	}
}

// parseOrderFilter reads the admin listing query parameters. Dates accept
// RFC3339 or a bare date; a bare dateTo is extended to the end of that day
// so the range stays inclusive.
func parseOrderFilter(c *gin.Context) (orderrepo.Filter, error) {
	f := orderrepo.Filter{
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		PaymentMethod: c.Query("paymentMethod"),
	}

	if v := c.Query("dateFrom"); v != "" {
		t, _, err := parseDate(v)
		if err != nil {
			return f, err
		}
		f.DateFrom = &t
	}
	if v := c.Query("dateTo"); v != "" {
		t, dateOnly, err := parseDate(v)
		if err != nil {
			return f, err
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Millisecond)
		}
		f.DateTo = &t
	}
	if v := c.Query("amountMin"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errInvalidAmount
		}
		f.AmountMin = &amount
	}
	if v := c.Query("amountMax"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errInvalidAmount
		}
		f.AmountMax = &amount
	}
	return f, nil
}

var (
	errInvalidDate   = filterError("Invalid date filter provided.")
	errInvalidAmount = filterError("Invalid amount filter provided.")
)

type filterError string

func (e filterError) Error() string { return string(e) }

func parseDate(v string) (time.Time, bool, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, errInvalidDate
}
