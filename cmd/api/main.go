// cmd/api/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-retry"

	"parking-portal/internal/auth"
	"parking-portal/internal/config"
	"parking-portal/internal/handler"
	"parking-portal/internal/middleware"
	"parking-portal/internal/notify"
	"parking-portal/internal/provider"
	"parking-portal/internal/service"
	"parking-portal/internal/storage/postgres"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	pool, err := pgxpool.New(context.Background(), cfg.DBConn)
	if err != nil {
		slog.Error("failed to create connection pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// The database may still be starting; retry the first ping.
	backoff := retry.WithMaxRetries(5, retry.NewExponential(time.Second))
	err = retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			slog.Warn("database ping failed, retrying", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.Error("database unreachable", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to PostgreSQL")

	store := postgres.NewStorage(pool)
	tokenService := auth.NewTokenService(cfg)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	var notifier service.Notifier
	if cfg.TelegramBotToken != "" && cfg.TelegramOwnerChatID != 0 {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramOwnerChatID)
		if err != nil {
			slog.Error("failed to initialize telegram notifier", "error", err)
			os.Exit(1)
		}
		notifier = tg
		slog.Info("telegram notifications enabled")
	}

	checkout := provider.NewStripeCheckout(cfg.StripeAPIKey)
	payments := service.NewPaymentService(store, store, checkout, notifier)

	loginHandler := handler.NewLoginHandler(tokenService, store, cfg)
	portalHandler := handler.NewPortalHandler(payments, store, cfg.BaseURL)
	adminHandler := handler.NewAdminHandler(payments, store, store)
	webhookHandler := handler.NewWebhookHandler(payments, cfg.StripeWebhookSecret)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/api/v1/login/contractor", loginHandler.ContractorLogin)
	router.POST("/api/v1/login/owner", loginHandler.OwnerLogin)
	router.POST("/api/v1/webhooks/stripe", webhookHandler.HandleStripe)

	portal := router.Group("/api/v1/portal")
	portal.Use(authMiddleware.RequireContractor())
	{
		portal.GET("/summary", portalHandler.Summary)
		portal.POST("/checkout", portalHandler.StartCheckout)
		portal.POST("/transfer-report", portalHandler.ReportTransfer)
		portal.GET("/payments/:id", portalHandler.Receipt)
	}

	admin := router.Group("/api/v1/admin")
	admin.Use(authMiddleware.RequireOwner())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.POST("/contractors", adminHandler.AddContractor)
		admin.PUT("/contractors/:id", adminHandler.UpdateContractor)
		admin.DELETE("/contractors/:id", adminHandler.DeleteContractor)
		admin.GET("/transfers", adminHandler.PendingTransfers)
		admin.POST("/transfers/approve", adminHandler.ApproveTransfers)
		admin.POST("/transfers/reject", adminHandler.RejectTransfers)
		admin.POST("/payments", adminHandler.RecordManualPayment)
		admin.GET("/settings", adminHandler.GetSettings)
		admin.PUT("/settings", adminHandler.UpdateSettings)
	}

	slog.Info("server started", "port", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
