package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robekc/topup-service/internal/adapter/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	webhookConf *config.Gateway,
	orderHandler *OrderHandler,
	webhookHandler *WebhookHandler,
	productHandler *ProductHandler,
	adminHandler *AdminHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/products", productHandler.ListProducts)
		api.POST("/create-order", orderHandler.CreateOrder)
		api.GET("/orders/:order", orderHandler.GetOrder)
		api.POST("/notify", orderHandler.NotifyOrder)

		webhook := api.Group("/payment-webhook")
		{
			webhook.Use(webhookSignatureCheck(webhookConf.WebhookSecret, logger))
			webhook.POST("", webhookHandler.PaymentWebhook)
		}

		admin := api.Group("/admin")
		{
			admin.Use(adminCheck(conf.AdminToken))
			admin.GET("/orders", adminHandler.ListOrders)
			admin.POST("/orders/:order/cancel", adminHandler.CancelOrder)
		}
	}

	return &Router{router}, nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down,
// letting in-flight requests finish within shutdownTimeout.
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &http.Server{Addr: listenAddr, Handler: r}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
