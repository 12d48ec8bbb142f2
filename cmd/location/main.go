package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/adiwira/tebengan/internal/pkg/config"
	"github.com/adiwira/tebengan/internal/pkg/database"
	"github.com/adiwira/tebengan/internal/pkg/health"
	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/middleware"
	"github.com/adiwira/tebengan/internal/pkg/nsq"
	"github.com/adiwira/tebengan/internal/pkg/server"
	"github.com/adiwira/tebengan/internal/pkg/websocket"
	"github.com/adiwira/tebengan/services/location/gateway"
	"github.com/adiwira/tebengan/services/location/handler"
	httphandler "github.com/adiwira/tebengan/services/location/handler/http"
	"github.com/adiwira/tebengan/services/location/repository"
	"github.com/adiwira/tebengan/services/location/usecase"
)

func main() {
	appName := "location-service"

	configs, err := config.InitConfig("./config")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewAppLogger(logger.Config{
		Level:       configs.Logger.Level,
		FilePath:    configs.Logger.FilePath,
		ServiceName: appName,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)
	defer appLogger.Close()

	// Postgres
	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer pgClient.Close()

	// Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// NSQ producer
	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Wiring
	locationRepo := repository.NewLocationRepository(pgClient.GetDB(), redisClient)
	locationGW := gateway.NewLocationGW(redisClient, producer)
	locationUC := usecase.NewLocationUC(locationRepo, locationGW, configs)

	locationHandler := httphandler.NewLocationHandler(locationUC)
	wsManager := websocket.NewManager(configs.JWT)
	rideChannel := handler.NewRideChannelHandler(wsManager, redisClient)

	// History writer consumes the service's own location events
	historyConsumer, err := handler.NewHistoryConsumer(locationUC, configs.NSQ)
	if err != nil {
		logger.Fatal("Failed to start history consumer", logger.Err(err))
	}
	defer historyConsumer.Stop()

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())

	handler.RegisterRoutes(e, configs, locationHandler, rideChannel)

	healthHandler := health.NewHandler(appName, configs.App.Version)
	healthHandler.AddChecker("postgres", func(ctx context.Context) error {
		return pgClient.GetDB().PingContext(ctx)
	})
	healthHandler.AddChecker("redis", func(ctx context.Context) error {
		return redisClient.GetClient().Ping(ctx).Err()
	})
	healthHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.RegisterCleanup(func(ctx context.Context) error {
		historyConsumer.Stop()
		producer.Stop()
		return nil
	})

	if err := srv.Start(); err != nil {
		logger.Fatal("Server exited with error", logger.Err(err))
	}
}
