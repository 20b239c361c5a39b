package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robekc/topup-service/internal/core/domain"
	"github.com/robekc/topup-service/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createOrderRequest struct {
	ProductID string `json:"productId"`
	UserID    string `json:"userId"`
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
	PayURL  string `json:"payUrl"`
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.CreateOrder(ctx, req.ProductID, req.UserID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, createOrderResponse{
		OrderID: string(order.ID),
		PayURL:  order.PayURL,
	})
}

type orderResp struct {
	OrderID   string    `json:"orderId"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	PayURL    string    `json:"payUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newOrderResp(o *domain.Order) orderResp {
	return orderResp{
		OrderID:   string(o.ID),
		ProductID: o.ProductID,
		UserID:    o.UserID,
		Amount:    o.Amount,
		Status:    string(o.Status),
		PayURL:    o.PayURL,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id := domain.OrderID(ctx.Param("order"))

	order, err := oh.service.GetOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

type notifyRequest struct {
	OrderID string `json:"orderId"`
}

func (oh *OrderHandler) NotifyOrder(ctx *gin.Context) {
	var req notifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.OrderID == "" {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err := oh.service.NotifyOrder(ctx, domain.OrderID(req.OrderID))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{"result": "ok"})
}
