package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/robekc/topup-service/internal/adapter/config"
	"github.com/robekc/topup-service/internal/core/domain"
	"go.uber.org/zap"
)

const telegramAPIHost = "https://api.telegram.org"

// Telegram posts order updates to the admin chat through the Bot API.
type Telegram struct {
	apiHost string
	token   string
	chatID  string
	client  *http.Client
	logger  *zap.Logger
}

func NewTelegram(cfg *config.Telegram, log *zap.Logger) (*Telegram, error) {
	return &Telegram{
		apiHost: telegramAPIHost,
		token:   cfg.BotToken,
		chatID:  cfg.ChatID,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  log,
	}, nil
}

// NewTelegramWithHost is for tests pointing the adapter at a local server.
func NewTelegramWithHost(apiHost string, cfg *config.Telegram, log *zap.Logger) *Telegram {
	t, _ := NewTelegram(cfg, log)
	t.apiHost = apiHost
	return t
}

func (t *Telegram) Channel() string {
	return "telegram"
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK bool `json:"ok"`
}

func (t *Telegram) Notify(ctx context.Context, order *domain.Order, status domain.OrderStatus) error {
	text := fmt.Sprintf("Order %s: %s\nProduct: %s\nPlayer: %s\nAmount: Rp %d",
		order.ID, status, order.ProductID, order.UserID, order.Amount)

	body, err := json.Marshal(sendMessageRequest{ChatID: t.chatID, Text: text})
	if err != nil {
		return err
	}

	requestStr := t.apiHost + "/bot" + t.token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.logger.Error("unexpected status from telegram",
			zap.String("order", string(order.ID)), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("telegram response status %d", resp.StatusCode)
	}

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("telegram response decode: %w", err)
	}
	if !result.OK {
		return domain.ErrNotificationFailed
	}

	return nil
}
