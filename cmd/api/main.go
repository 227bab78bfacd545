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

	"bazario-backend/internal/config"
	"bazario-backend/internal/database"
	"bazario-backend/internal/metrics"
	"bazario-backend/internal/payments"
	"bazario-backend/internal/repository"
	"bazario-backend/internal/routes"
	"bazario-backend/internal/services"
	"bazario-backend/internal/token"
)

func main() {
	cfg := config.LoadConfig()
	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("mongo connect:", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(shutdownCtx); err != nil {
			log.Println("mongo disconnect:", err)
		}
	}()

	db := client.Database(cfg.MongoDB)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("ensure indexes:", err)
	}

	appMetrics, meterProvider, err := metrics.Init(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		log.Fatal("metrics init:", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			log.Println("meter provider shutdown:", err)
		}
	}()

	userRepo := repository.NewUserRepository(db.Collection("users"))
	productRepo := repository.NewProductRepository(db.Collection("products"))
	categoryRepo := repository.NewCategoryRepository(db.Collection("categories"))
	sliderRepo := repository.NewSliderRepository(db.Collection("sliders"))
	cartRepo := repository.NewCartRepository(db.Collection("carts"))
	orderRepo := repository.NewOrderRepository(db.Collection("orders"))
	paymentRepo := repository.NewPaymentRepository(db.Collection("payments"))
	reviewRepo := repository.NewReviewRepository(db.Collection("reviews"))

	gateway := payments.NewStripeGateway(cfg.StripeKey)
	checkout := services.NewCheckoutService(orderRepo, paymentRepo, productRepo, cartRepo, gateway, appMetrics)
	dashboard := services.NewDashboardService(productRepo, orderRepo, paymentRepo)

	r := gin.Default()
	routes.Register(r, routes.Deps{
		Tokens:       token.NewService(cfg.JWTSecret),
		Users:        userRepo,
		Products:     productRepo,
		Categories:   categoryRepo,
		Sliders:      sliderRepo,
		Carts:        cartRepo,
		Orders:       orderRepo,
		Payments:     paymentRepo,
		Reviews:      reviewRepo,
		Checkout:     checkout,
		Dashboard:    dashboard,
		Metrics:      appMetrics,
		AllowOrigins: cfg.AllowOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Println("server running on port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("server shutdown:", err)
	}
}
