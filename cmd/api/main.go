package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"babyheaven-storefront/internal/cart"
	"babyheaven-storefront/internal/config"
	"babyheaven-storefront/internal/content"
	"babyheaven-storefront/internal/httpserver"
	"babyheaven-storefront/internal/instagram"
	"babyheaven-storefront/internal/upload"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.ContentProjectID == "" {
		logger.Fatal("CONTENT_PROJECT_ID is required")
	}

	catalog := content.NewClient(content.Config{
		ProjectID:  cfg.ContentProjectID,
		Dataset:    cfg.ContentDataset,
		APIVersion: cfg.ContentAPIVersion,
		Token:      cfg.ContentToken,
	}, logger)

	var rdb *redis.Client
	var sessionStore func(string) cart.Storage
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer rdb.Close()
		sessionStore = func(sessionID string) cart.Storage {
			return cart.NewRedisStorage(rdb, sessionID)
		}
	} else {
		logger.Printf("REDIS_ADDR not set, carts will not survive restarts")
	}

	var receipts httpserver.ReceiptSaver
	if cfg.Storage.Bucket != "" {
		uploader, err := upload.New(cfg.Storage, logger)
		if err != nil {
			logger.Fatalf("init receipt storage: %v", err)
		}
		receipts = uploader
	} else {
		logger.Printf("STORAGE_BUCKET not set, receipt uploads disabled")
	}

	var feed httpserver.FeedReader
	if cfg.InstagramToken != "" {
		feed = instagram.NewClient(cfg.InstagramToken, logger)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, rdb, httpserver.Deps{
		Catalog:       catalog,
		Feed:          feed,
		Receipts:      receipts,
		SessionStore:  sessionStore,
		CORSOrigins:   cfg.CORSOrigins,
		FallbackPhone: cfg.FallbackWhatsAppPhone,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
