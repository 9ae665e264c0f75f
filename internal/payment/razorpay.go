package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com"

// Client creates payment orders against the Razorpay Orders API. The order
// id it returns is stored on our Order for later correlation; payment
// signatures are not verified here.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

type orderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

// OrderResponse is the subset of the gateway response the frontend needs.
type OrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrder registers a payment order for the given amount in minor
// currency units, with auto-capture enabled.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (OrderResponse, error) {
	body, err := json.Marshal(orderRequest{
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
	})
	if err != nil {
		return OrderResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return OrderResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return OrderResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return OrderResponse{}, fmt.Errorf("razorpay order create failed: %s", resp.Status)
	}

	var out OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return OrderResponse{}, err
	}
	return out, nil
}
