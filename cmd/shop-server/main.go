package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/BrianMwendwa180/Ecomerce-project/internal/auth"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/cart"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/catalog"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/checkout"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/payment"
	"github.com/BrianMwendwa180/Ecomerce-project/internal/web"
	"github.com/BrianMwendwa180/Ecomerce-project/pkg/logging"
	"github.com/BrianMwendwa180/Ecomerce-project/pkg/metrics"
)

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MpesaRate       float64
	MpesaDelay      time.Duration
	PayPalDelay     time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MpesaRate:       getEnvFloat("MPESA_KES_RATE", 110),
		MpesaDelay:      getEnvDuration("MPESA_CONFIRM_DELAY", 3*time.Second),
		PayPalDelay:     getEnvDuration("PAYPAL_APPROVAL_DELAY", time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	logger, err := logging.New("shop-server")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	shopCatalog := catalog.NewMemoryCatalog(catalog.SeedProducts())
	cartStore := cart.NewStore()
	identity := auth.NewMockIdentity()

	mpesaCfg := payment.DefaultMpesaConfig()
	mpesaCfg.Rate = cfg.MpesaRate
	mpesaCfg.ConfirmDelay = cfg.MpesaDelay
	mpesa := payment.NewMpesaProvider(mpesaCfg, payment.RandomStatus{})
	paypal := payment.NewPayPalProvider(payment.SandboxFlow{Delay: cfg.PayPalDelay})

	providers := map[checkout.Method]payment.Provider{
		checkout.MethodPayPal: payment.NewBreakerProvider("paypal", paypal),
		checkout.MethodMpesa:  payment.NewBreakerProvider("mpesa", mpesa),
	}

	checkoutMetrics := metrics.NewCheckout(prometheus.DefaultRegisterer)
	cartMetrics := metrics.NewCart(prometheus.DefaultRegisterer)
	cartStore.Subscribe(func() {
		cartMetrics.Observe(cartStore.ItemCount(), cartStore.Total())
	})

	notifier := checkout.LogNotifier{Logger: logger}
	manager := checkout.NewManager(cartStore, identity, providers, notifier, logger, checkoutMetrics)

	router := web.NewRouter(web.Handlers{
		Catalog:  web.NewCatalogHandler(shopCatalog),
		Cart:     web.NewCartHandler(cartStore, shopCatalog),
		Auth:     web.NewAuthHandler(identity),
		Checkout: web.NewCheckoutHandler(manager, mpesa),
	}, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("shop server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
