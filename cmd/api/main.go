package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/alizaidi-dev/tripbudget/internal/adapter/assistant"
	"github.com/alizaidi-dev/tripbudget/internal/adapter/countries"
	"github.com/alizaidi-dev/tripbudget/internal/adapter/exchange"
	"github.com/alizaidi-dev/tripbudget/internal/adapter/geocode"
	"github.com/alizaidi-dev/tripbudget/internal/adapter/handler"
	"github.com/alizaidi-dev/tripbudget/internal/adapter/logger"
	"github.com/alizaidi-dev/tripbudget/internal/adapter/storage/postgres"
	redisadapter "github.com/alizaidi-dev/tripbudget/internal/adapter/storage/redis"
	"github.com/alizaidi-dev/tripbudget/internal/config"
	"github.com/alizaidi-dev/tripbudget/internal/core/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, _ := logger.New(cfg.Env)
	defer appLogger.Sync()

	dbConfig, err := pgxpool.ParseConfig(cfg.DBUrl)
	if err != nil {
		appLogger.Fatal("unable to parse db config", zap.Error(err))
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		appLogger.Fatal("unable to create db pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		appLogger.Fatal("cannot connect to db", zap.Error(err))
	}

	appLogger.Info("connected to database via pgxpool")

	redisClient := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	cache := redisadapter.NewCache(redisClient)

	store := postgres.NewStore(pool)

	exchangeClient := exchange.NewClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateAPIKey)
	currencySvc := service.NewCurrencyService(exchangeClient, cache, appLogger)
	estimator := service.NewEstimator(currencySvc)
	countrySvc := service.NewCountryService(countries.NewClient(), cache, appLogger)
	placesSvc := service.NewPlacesService(geocode.NewClient())
	assistantSvc := service.NewAssistantService(
		assistant.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		appLogger,
	)
	authSvc := service.NewAuthService(store, cfg.JWTSecret)

	budgetHandler := handler.NewBudgetHandler(estimator, store, appLogger)
	currencyHandler := handler.NewCurrencyHandler(currencySvc)
	countryHandler := handler.NewCountryHandler(countrySvc)
	placesHandler := handler.NewPlacesHandler(placesSvc)
	chatHandler := handler.NewChatHandler(assistantSvc, appLogger)
	authHandler := handler.NewAuthHandler(authSvc)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "UP", "env": cfg.Env})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.POST("/budget/estimate", handler.OptionalAuthMiddleware(authSvc), budgetHandler.Estimate)
		api.GET("/history", handler.AuthMiddleware(authSvc), budgetHandler.History)

		api.GET("/currencies", currencyHandler.ListCurrencies)
		api.POST("/currency/convert", currencyHandler.Convert)

		api.GET("/countries", countryHandler.List)

		api.GET("/places/geocode", placesHandler.Geocode)
		api.GET("/places/attractions", placesHandler.Attractions)

		api.POST("/chat", chatHandler.Send)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		appLogger.Info("starting server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("listen: %s\n", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("server forced to shutdown:", zap.Error(err))
	}

	appLogger.Info("server exiting")
}
