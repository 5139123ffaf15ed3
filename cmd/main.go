package main

import (
	"context"
	"net/http"

	accountapp "github.com/platewise/account-service/application/account"
	"github.com/platewise/account-service/cmd/config"
	mongoclient "github.com/platewise/account-service/cmd/mongo"
	_ "github.com/platewise/account-service/docs"
	tokenRepo "github.com/platewise/account-service/repository/token"
	userRepo "github.com/platewise/account-service/repository/user"
	"github.com/platewise/account-service/thirdparty/rabbitmq"
	"github.com/platewise/account-service/transport"
	"github.com/platewise/account-service/utils/hasher"
	"github.com/platewise/account-service/utils/logger"
	"github.com/platewise/account-service/utils/ratelimit"
	validatorx "github.com/platewise/account-service/utils/validator"
	"go.uber.org/zap"
)

// @title ACCOUNT SERVICE API
// @version 1.0
// @description User account management API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Register the account validation rules
	validatorx.Init()

	// Connect to the document store
	if err := mongoclient.New(cfg); err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		_ = mongoclient.Close()
	}()

	// Reset-link delivery via RabbitMQ
	publisher, err := rabbitmq.NewPublisher(cfg.AMQP.Host, cfg.AMQP.Port, cfg.AMQP.User, cfg.AMQP.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer publisher.Close()

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()

	consumer, err := rabbitmq.NewConsumer(cfg.AMQP.Host, cfg.AMQP.Port, cfg.AMQP.User, cfg.AMQP.Password, rabbitmq.LogNotifier)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(consumerCtx); err != nil {
		logger.Fatal("err start reset notifier", zap.Error(err))
	}

	// Initialize repositories
	db := mongoclient.Get()
	UserRepo := userRepo.NewUserRepository(db)
	TokenRepo := tokenRepo.NewTokenRepository(db)

	// Secret hasher and rate limiter
	secretHasher := hasher.NewBcrypt(cfg.Hasher.Cost, cfg.Hasher.MaxConcurrent)
	limiter := ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer limiter.Stop()

	// Initialize application layers
	AccountApp := accountapp.NewAccountApp(cfg, UserRepo, TokenRepo, secretHasher, publisher)

	httpTransport := transport.NewTransport(AccountApp, limiter)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
