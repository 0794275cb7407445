package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/neo-dine/config"
	"github.com/yeremiapane/neo-dine/database"
	"github.com/yeremiapane/neo-dine/rabbitmq"
	"github.com/yeremiapane/neo-dine/router"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

func main() {
	utils.InitLogger()
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize DB
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Setup(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to prepare database: %v", err)
	}

	// Event bus opsional: tanpa RABBITMQ_URL event order tidak dikirim
	var publisher services.EventPublisher = services.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewRabbitMQ(cfg.RabbitMQURL, cfg.OrderExchange)
		if err != nil {
			utils.ErrorLogger.Printf("RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			defer mq.Close()
			publisher = mq
			utils.InfoLogger.Printf("Publishing order events to exchange %s", cfg.OrderExchange)
		}
	}

	svc := services.NewServices(db, services.Options{
		OrderStatusInterval:    cfg.OrderStatusInterval,
		PaymentProcessingDelay: cfg.PaymentProcessingDelay,
		ToastTTL:               cfg.ToastTTL,
		WizardMaxAge:           cfg.WizardMaxAge,
	}, publisher)

	r := router.SetupRouter(cfg, svc)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Printf("HTTP shutdown: %v", err)
	}
	svc.Shutdown()
}
