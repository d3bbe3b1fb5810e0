package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/edupagos/backoffice/internal/pkg/config"
	"github.com/edupagos/backoffice/internal/pkg/database"
	"github.com/edupagos/backoffice/internal/pkg/health"
	"github.com/edupagos/backoffice/internal/pkg/logger"
	"github.com/edupagos/backoffice/internal/pkg/middleware"
	nsqpkg "github.com/edupagos/backoffice/internal/pkg/nsq"
	"github.com/edupagos/backoffice/internal/pkg/server"
	"github.com/edupagos/backoffice/services/register"
	registerGateway "github.com/edupagos/backoffice/services/register/gateway"
	registerHandler "github.com/edupagos/backoffice/services/register/handler"
	registerRepository "github.com/edupagos/backoffice/services/register/repository"
	registerUsecase "github.com/edupagos/backoffice/services/register/usecase"
	"github.com/edupagos/backoffice/services/transactions"
	transactionGateway "github.com/edupagos/backoffice/services/transactions/gateway"
	transactionHandler "github.com/edupagos/backoffice/services/transactions/handler"
	transactionRepository "github.com/edupagos/backoffice/services/transactions/repository"
	transactionUsecase "github.com/edupagos/backoffice/services/transactions/usecase"
)

const appName = "backoffice"

func main() {
	configs := config.InitConfig(appName, os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	shutdownManager := server.NewShutdownManager(zapLogger)

	// PostgreSQL: pgxpool for health checks, sqlx handle for repositories.
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		postgresClient.Close()
		return nil
	})

	db, err := database.NewSQLXConnection(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to open database handle", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return db.Close()
	})

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	var transactionEvents transactions.EventsGW
	var registerEvents register.EventsGW
	if configs.NSQ.Enabled {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
		transactionEvents = transactionGateway.NewTransactionGW(producer)
		registerEvents = registerGateway.NewRegisterGW(producer)
	}

	// Repositories
	transactionRepo := transactionRepository.NewTransactionRepository(configs, db)
	cardRepo := transactionRepository.NewCardRepository(configs, db, redisClient)
	registerRepo := registerRepository.NewRegisterRepository(configs, db)

	// Use cases
	transactionUC := transactionUsecase.NewTransactionUC(configs, transactionRepo, cardRepo, transactionEvents)
	registerUC := registerUsecase.NewRegisterUC(configs, registerRepo, registerEvents)

	// Handlers
	txHandler := transactionHandler.NewTransactionHandler(transactionUC)
	regHandler := registerHandler.NewRegisterHandler(registerUC)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName,
		health.Checker{Name: "postgres", Check: func(ctx context.Context) error {
			return postgresClient.GetPool().Ping(ctx)
		}},
		health.Checker{Name: "redis", Check: func(ctx context.Context) error {
			_, err := redisClient.GetClient().Ping(ctx).Result()
			return err
		}},
	)

	txHandler.RegisterRoutes(e)
	regHandler.RegisterRoutes(e)

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Error during shutdown", logger.Err(err))
	}
}
