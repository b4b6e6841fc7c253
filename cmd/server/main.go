package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dodo-statistics/internal/config"
	"dodo-statistics/internal/database"
	"dodo-statistics/internal/dodoapi"
	"dodo-statistics/internal/handlers"
	"dodo-statistics/internal/kafka"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/redis"
	"dodo-statistics/internal/services"

	"github.com/joho/godotenv"
)

// Фабричные функции для подключения внешних сервисов (подменяемые в тестах).
var (
	dbConnect        = database.Connect
	redisConnect     = redis.Connect
	newKafkaProducer = kafka.NewProducer
	loadConfig       = config.Load
	newLogger        = logger.New
)

// application агрегирует собранные зависимости.
type application struct {
	cfg      *config.Config
	log      *logger.Logger
	db       *database.DB
	redis    *redis.Client
	producer *kafka.Producer
	mux      *http.ServeMux
	server   *http.Server
}

func main() {
	_ = godotenv.Load()

	app, err := buildApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build app: %v\n", err)
		os.Exit(1)
	}
	app.log.Info("Starting dodo statistics server...")

	go func() {
		app.log.WithField("address", app.server.Addr).Info("HTTP server starting")
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	app.log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.server.Shutdown(ctx); err != nil {
		app.log.WithError(err).Error("Server forced to shutdown")
	}
	_ = app.producer.Close()
	_ = app.redis.Close()
	_ = app.db.Close()
	app.log.Info("Server exited")
}

// buildApplication создает все зависимости (подменяемые в тестах).
func buildApplication() (*application, error) {
	cfg := loadConfig()
	log := newLogger(&cfg.Logger)

	db, err := dbConnect(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	redisClient, err := redisConnect(&cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("redis connect: %w", err)
	}

	// Kafka не критична для отдачи статистики: без продюсера события
	// стоп-продаж просто не публикуются.
	producer, err := newKafkaProducer(&cfg.Kafka, log)
	if err != nil {
		log.WithError(err).Warn("Kafka producer unavailable, stop sale events will not be published")
		producer = nil
	}

	officeManager := dodoapi.NewOfficeManagerClient(&cfg.DodoAPI, log)
	shiftManager := dodoapi.NewShiftManagerClient(&cfg.DodoAPI, log)
	publicAPI := dodoapi.NewPublicAPIClient(&cfg.DodoAPI, log)
	privateAPI := dodoapi.NewPrivateAPIClient(&cfg.DodoAPI, log)

	unitsService := services.NewUnitsService(db, log)
	revenueService := services.NewRevenueService(publicAPI, log)
	partialsService := services.NewPartialStatisticsService(officeManager, log, &cfg.DodoAPI)
	ordersService := services.NewOrdersService(officeManager, shiftManager, redisClient, log, &cfg.Cache)
	certificatesService := services.NewCertificatesService(officeManager, redisClient, log, &cfg.Cache)
	deliveryService := services.NewDeliveryService(privateAPI, log)
	stopSalesService := services.NewStopSalesService(privateAPI, officeManager, producer, log)
	stocksService := services.NewStocksService(officeManager, redisClient, log, &cfg.Cache)
	rateLimiter := services.NewRateLimiter(redisClient, log, &cfg.RateLimit)

	statisticsHandler := handlers.NewStatisticsHandler(unitsService, revenueService, partialsService, ordersService, certificatesService, deliveryService, log)
	stopSalesHandler := handlers.NewStopSalesHandler(stopSalesService, unitsService, log)
	stocksHandler := handlers.NewStocksHandler(stocksService, log)
	unitsHandler := handlers.NewUnitsHandler(unitsService, log)
	cacheHandler := handlers.NewCacheHandler(redisClient, log)
	healthHandler := handlers.NewHealthHandler(db, redisClient, cfg.Kafka.Brokers)
	rateLimitHandler := handlers.NewRateLimitHandler(rateLimiter, log, &cfg.RateLimit)

	mux := setupRoutes(statisticsHandler, stopSalesHandler, stocksHandler, unitsHandler, cacheHandler, healthHandler, rateLimitHandler, rateLimiter, log)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	return &application{
		cfg:      cfg,
		log:      log,
		db:       db,
		redis:    redisClient,
		producer: producer,
		mux:      mux,
		server:   server,
	}, nil
}

// setupRoutes настраивает маршруты HTTP сервера
func setupRoutes(statisticsHandler *handlers.StatisticsHandler, stopSalesHandler *handlers.StopSalesHandler, stocksHandler *handlers.StocksHandler, unitsHandler *handlers.UnitsHandler, cacheHandler *handlers.CacheHandler, healthHandler *handlers.HealthHandler, rateLimitHandler *handlers.RateLimitHandler, rateLimiter *services.RateLimiter, log *logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	applyAPI := func(h http.HandlerFunc) http.HandlerFunc {
		return corsMiddleware(handlers.RateLimitMiddleware(rateLimiter, log, h))
	}

	// Health check endpoints
	mux.HandleFunc("/health", corsMiddleware(healthHandler.Health))
	mux.HandleFunc("/health/readiness", corsMiddleware(healthHandler.Readiness))
	mux.HandleFunc("/health/liveness", corsMiddleware(healthHandler.Liveness))

	// Units directory
	mux.HandleFunc("/api/units", applyAPI(unitsHandler.GetUnits))

	// Statistics endpoints
	mux.HandleFunc("/api/statistics/revenue", applyAPI(statisticsHandler.RevenueStatistics))
	mux.HandleFunc("/api/statistics/kitchen", applyAPI(statisticsHandler.KitchenStatistics))
	mux.HandleFunc("/api/statistics/delivery-partial", applyAPI(statisticsHandler.DeliveryPartialStatistics))
	mux.HandleFunc("/api/statistics/delivery", applyAPI(statisticsHandler.DeliveryStatistics))
	mux.HandleFunc("/api/statistics/orders-handover-time", applyAPI(statisticsHandler.OrdersHandoverTime))
	mux.HandleFunc("/api/statistics/restaurant-orders", applyAPI(statisticsHandler.RestaurantOrders))
	mux.HandleFunc("/api/statistics/canceled-orders", applyAPI(statisticsHandler.CanceledOrders))
	mux.HandleFunc("/api/statistics/being-late-certificates", applyAPI(statisticsHandler.BeingLateCertificates))

	// Stop sales endpoints
	mux.HandleFunc("/api/v2/stop-sales/ingredients", applyAPI(stopSalesHandler.IngredientStopSales))
	mux.HandleFunc("/api/v2/stop-sales/products", applyAPI(stopSalesHandler.ProductStopSales))
	mux.HandleFunc("/api/v2/stop-sales/sales-channels", applyAPI(stopSalesHandler.SalesChannelStopSales))
	mux.HandleFunc("/api/v1/stop-sales/sectors", applyAPI(stopSalesHandler.SectorStopSales))
	mux.HandleFunc("/api/v1/stop-sales/streets", applyAPI(stopSalesHandler.StreetStopSales))

	// Stocks endpoint
	mux.HandleFunc("/api/stocks/balance", applyAPI(stocksHandler.StockBalances))

	// Cache invalidation
	mux.HandleFunc("/api/cache", applyAPI(cacheHandler.InvalidateCache))

	// Rate limit status
	mux.HandleFunc("/api/rate-limit/status", applyAPI(rateLimitHandler.Status))

	return mux
}

// corsMiddleware добавляет CORS заголовки
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}
