package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/robekc/topup-service/internal/adapter/config"
	"github.com/robekc/topup-service/internal/core/domain"
	"github.com/robekc/topup-service/internal/core/port"
	"go.uber.org/zap"
)

// Client talks to the payment gateway over its HTTP API. The provider is
// opaque: we open checkout sessions and poll session status, everything
// else arrives through the webhook.
type Client struct {
	host   string
	client *http.Client
	logger *zap.Logger
}

func NewClient(cfg *config.Gateway, log *zap.Logger) (*Client, error) {
	return &Client{
		host:   cfg.HostString,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: log,
	}, nil
}

type checkoutRequest struct {
	Order  string `json:"order"`
	Amount int64  `json:"amount"`
}

type checkoutResponse struct {
	Reference string `json:"reference"`
	PayURL    string `json:"pay_url"`
}

type sessionStatusResponse struct {
	Status string `json:"status"`
}

func (c *Client) CreateSession(ctx context.Context, orderID domain.OrderID, amount int64) (*port.CheckoutSession, error) {
	body, err := json.Marshal(checkoutRequest{Order: string(orderID), Amount: amount})
	if err != nil {
		return nil, err
	}

	requestStr := "http://" + c.host + "/api/checkout"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Open checkout session", zap.String("order", string(orderID)))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected status for checkout request",
			zap.String("order", string(orderID)), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var result checkoutResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	if result.Reference == "" || result.PayURL == "" {
		return nil, fmt.Errorf("incomplete checkout response for order %s", orderID)
	}

	return &port.CheckoutSession{
		PaymentRef: result.Reference,
		PayURL:     result.PayURL,
	}, nil
}

func (c *Client) SessionStatus(ctx context.Context, paymentRef string) (domain.PaymentOutcome, error) {
	requestStr := "http://" + c.host + "/api/sessions/" + paymentRef
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return domain.PaymentOutcomeUnknown, fmt.Errorf("error on %s : %w", requestStr, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.PaymentOutcomeUnknown, fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.PaymentOutcomeUnknown, fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var result sessionStatusResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return domain.PaymentOutcomeUnknown, fmt.Errorf("error on response decode: %w", err)
	}

	switch result.Status {
	case "paid":
		return domain.PaymentOutcomePaid, nil
	case "failed":
		return domain.PaymentOutcomeFailed, nil
	}
	return domain.PaymentOutcomeUnknown, nil
}
