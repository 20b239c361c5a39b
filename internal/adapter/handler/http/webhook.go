package http

import (
	"github.com/gin-gonic/gin"
	"github.com/robekc/topup-service/internal/core/domain"
	"github.com/robekc/topup-service/internal/core/port"
	"go.uber.org/zap"
)

type WebhookHandler struct {
	Handler
	service port.Service
}

func NewWebhookHandler(service port.Service, logger *zap.Logger) (*WebhookHandler, error) {
	return &WebhookHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type webhookRequest struct {
	Reference string `json:"reference"`
	Outcome   string `json:"outcome"`
}

// PaymentWebhook applies a gateway callback. The signature middleware has
// already verified authenticity. Duplicate and late deliveries come back
// 200 so the gateway stops redelivering.
func (wh *WebhookHandler) PaymentWebhook(ctx *gin.Context) {
	var req webhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Reference == "" {
		wh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err := wh.service.ApplyPaymentResult(ctx, req.Reference, domain.PaymentOutcome(req.Outcome))
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, gin.H{"result": "accepted"})
}
