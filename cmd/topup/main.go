package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/robekc/topup-service/internal/adapter/catalog"
	"github.com/robekc/topup-service/internal/adapter/client/gateway"
	"github.com/robekc/topup-service/internal/adapter/config"
	"github.com/robekc/topup-service/internal/adapter/handler/http"
	"github.com/robekc/topup-service/internal/adapter/idgen"
	"github.com/robekc/topup-service/internal/adapter/logger"
	"github.com/robekc/topup-service/internal/adapter/notifier"
	"github.com/robekc/topup-service/internal/adapter/storage"
	"github.com/robekc/topup-service/internal/adapter/storage/repository"
	"github.com/robekc/topup-service/internal/core/notify"
	"github.com/robekc/topup-service/internal/core/port"
	"github.com/robekc/topup-service/internal/core/service"
	"github.com/robekc/topup-service/internal/worker"
	"go.uber.org/zap"
)

const dispatchWorkers = 3

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}

	products := catalog.NewStaticCatalog()

	payments, err := gateway.NewClient(conf.Gateway, log.Named("Gateway"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}

	telegram, err := notifier.NewTelegram(conf.Telegram, log.Named("Telegram"))
	if err != nil {
		log.Error("telegram notifier creating error", zap.Error(err))
		return
	}

	dispatcher := notify.NewDispatcher(repo, []port.Notifier{telegram}, log.Named("Dispatcher"))
	dispatcher.Run(ctx, dispatchWorkers)

	svc, err := service.NewService(repo, products, payments, dispatcher,
		idgen.NewULIDGenerator(), conf.Sweep.OrderTTL, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	sweeper := worker.NewSweeper(svc, conf.Sweep.Interval, log.Named("Sweeper"))
	go sweeper.Run(ctx)

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	webhookHandler, err := http.NewWebhookHandler(svc, log.Named("Webhook handler"))
	if err != nil {
		log.Error("webhook handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(products, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	adminHandler, err := http.NewAdminHandler(svc, log.Named("Admin handler"))
	if err != nil {
		log.Error("admin handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, conf.Gateway,
		orderHandler, webhookHandler, productHandler, adminHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(ctx, conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
	}

	// stop cancels ctx, so the sweeper and the dispatcher workers exit
	// even when Serve failed before any signal arrived.
	stop()
	dispatcher.Wait()
}
