package http

import (
	"github.com/gin-gonic/gin"
	"github.com/robekc/topup-service/internal/core/port"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	catalog port.Catalog
}

func NewProductHandler(catalog port.Catalog, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		catalog: catalog,
	}, nil
}

type productResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	products, err := ph.catalog.ListProducts(ctx)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]productResp, 0, len(products))
	for _, p := range products {
		result = append(result, productResp{ID: p.ID, Name: p.Name, Price: p.Price})
	}

	ph.handleSuccess(ctx, result)
}
