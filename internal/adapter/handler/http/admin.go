package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/robekc/topup-service/internal/core/domain"
	"github.com/robekc/topup-service/internal/core/port"
	"go.uber.org/zap"
)

const defaultOrderListLimit = 20

type AdminHandler struct {
	Handler
	service port.Service
}

func NewAdminHandler(service port.Service, logger *zap.Logger) (*AdminHandler, error) {
	return &AdminHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ah *AdminHandler) ListOrders(ctx *gin.Context) {
	limit := uint64(defaultOrderListLimit)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			ah.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
		limit = parsed
	}

	list, err := ah.service.ListRecentOrders(ctx, limit)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	ah.handleSuccess(ctx, result)
}

// CancelOrder is idempotent: cancelling an already terminal order returns
// its current state without touching it.
func (ah *AdminHandler) CancelOrder(ctx *gin.Context) {
	id := domain.OrderID(ctx.Param("order"))

	order, err := ah.service.CancelOrder(ctx, id)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newOrderResp(order))
}
