package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/controller"
	"ecommerce-backend/internal/infrastructure/database/mongodb"
	kafkamq "ecommerce-backend/internal/infrastructure/message-queue/kafka"
	"ecommerce-backend/internal/infrastructure/tracing"
	appmiddleware "ecommerce-backend/internal/middleware"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	if config.TracingConfig.CollectorHost != "" {
		tracerProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
		if err != nil {
			panic(err)
		}
		defer tracerProvider.Shutdown(context.Background())
	}

	var publisher service.EventPublisher = kafkamq.NopProducer{}
	if config.KafkaConfig.BrokerAddress != "" {
		producer, err := kafkamq.CreateKafkaProducer(config)
		if err != nil {
			panic(err)
		}
		publisher = producer
	}

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(appmiddleware.Logger)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server is running")
	})
	e.GET("/index", func(c echo.Context) error {
		return c.String(http.StatusOK, "index Server is running")
	})

	repo := repository.CreateNewMongoDBRepository(db)
	catalogSvc := service.CreateCatalogService(repo, publisher)
	reviewSvc := service.CreateReviewService(repo, publisher, config.RatingTx)
	orderSvc := service.CreateOrderService(repo, publisher)

	userGroup := e.Group("/api/user")
	controller.CreateUserController(userGroup, catalogSvc, reviewSvc, orderSvc)

	adminGroup := e.Group("/api/admin")
	controller.CreateAdminController(adminGroup, catalogSvc, orderSvc)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
