package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/orderfood/storefront-api/internal/config"
	"github.com/orderfood/storefront-api/internal/handlers"
	"github.com/orderfood/storefront-api/internal/middleware"
	"github.com/orderfood/storefront-api/internal/repository"
	"github.com/orderfood/storefront-api/internal/service"
	"github.com/orderfood/storefront-api/internal/validation"
	"github.com/orderfood/storefront-api/pkg/logger"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"database", cfg.Mongo.Database,
		"log_level", cfg.LogLevel,
	)

	// Connect to MongoDB
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connectCancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		log.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Error("failed to ping mongodb", "error", err)
		os.Exit(1)
	}
	db := client.Database(cfg.Mongo.Database)
	log.Info("connected to mongodb", "database", cfg.Mongo.Database)

	// Initialize repositories
	limit := int64(cfg.Mongo.ResultLimit)
	productRepo := repository.NewMongoProductRepository(db, limit)
	orderRepo := repository.NewMongoOrderRepository(db, limit)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo)
	orderService := service.NewOrderService(orderRepo)

	// Initialize handlers
	policy := validation.NewRequiredFields()
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(catalogService, policy, log)
	orderHandler := handlers.NewOrderHandler(orderService, policy, log)
	searchHandler := handlers.NewSearchHandler(catalogService, log)
	seedHandler := handlers.NewSeedHandler(catalogService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration: the storefront frontend may be served from any origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Product endpoints
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/category/{category}", productHandler.ListProductsByCategory)
		r.Get("/products/{productID}", productHandler.GetProduct)
		r.Post("/products", productHandler.CreateProduct)

		// Order endpoints
		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders", orderHandler.ListOrders)
		r.Get("/orders/{orderID}", orderHandler.GetOrder)

		// Search and bootstrap endpoints
		r.Get("/search", searchHandler.SearchProducts)
		r.Post("/init-data", seedHandler.InitData)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Close the store connection last
	if err := client.Disconnect(ctx); err != nil {
		log.Error("failed to disconnect mongodb client", "error", err)
	}

	log.Info("server stopped gracefully")
}
