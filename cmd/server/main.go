package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/advice-board/config"
	"github.com/d60-Lab/advice-board/internal/api"
	"github.com/d60-Lab/advice-board/internal/api/handler"
	"github.com/d60-Lab/advice-board/internal/auth"
	"github.com/d60-Lab/advice-board/internal/ratelimit"
	"github.com/d60-Lab/advice-board/internal/repository"
	"github.com/d60-Lab/advice-board/internal/service"
	"github.com/d60-Lab/advice-board/pkg/database"
	"github.com/d60-Lab/advice-board/pkg/logger"
	"github.com/d60-Lab/advice-board/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			panic(err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()
	if cfg.Trace.Enabled {
		shutdown := must(tracing.Init(ctx, "advice-board", cfg.Trace.Endpoint))
		defer func() { _ = shutdown(ctx) }()
	}

	db := must(database.InitDB(cfg))

	// 提交限流：单进程用内存窗口，多进程部署切 redis 共享计数
	var limiter ratelimit.Limiter
	switch cfg.RateLimit.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic(err)
		}
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Window, cfg.RateLimit.Max)
	default:
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Window, cfg.RateLimit.Max)
	}

	profileRepo := repository.NewProfileRepository(db)
	adviceRepo := repository.NewAdviceRepository(db)
	profileSvc := service.NewProfileService(profileRepo)
	adviceSvc := service.NewAdviceService(adviceRepo, profileRepo, limiter)
	provider := auth.NewJWTProvider(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	h := handler.New(profileSvc, adviceSvc)
	r := api.NewRouter(cfg, h, provider)

	srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: r}
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
