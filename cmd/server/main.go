package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/globalmarket/backend/docs"
	"github.com/globalmarket/backend/internal/catalog"
	"github.com/globalmarket/backend/internal/config"
	"github.com/globalmarket/backend/internal/database"
	"github.com/globalmarket/backend/internal/handlers"
	"github.com/globalmarket/backend/internal/logging"
	mW "github.com/globalmarket/backend/internal/middleware"
	"github.com/globalmarket/backend/internal/notify"
	"github.com/globalmarket/backend/internal/services"
	"github.com/globalmarket/backend/internal/store"
	"github.com/globalmarket/backend/internal/syncsim"
	"github.com/globalmarket/backend/internal/terminal"
)

// @title Global Marketplace API
// @version 1.0
// @description Single-page storefront simulator backend
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg := config.Load()

	logger := logging.Setup(cfg.Logger)
	defer logger.Sync()

	docs.SwaggerInfo.Title = "Global Marketplace API"
	docs.SwaggerInfo.Description = "Single-page storefront simulator backend"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	redisClient := database.InitRedis(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// a fresh catalog every process start, like a page reload
	products := catalog.NewGenerator(time.Now().UnixNano()).Generate(cfg.Market.CatalogSize)

	term := terminal.NewLog(0)
	session := services.NewSessionService(
		store.New(redisClient, cfg.Market.StorageKey),
		notify.NewLogNotifier(),
		term,
		products,
		services.Options{
			CommissionRate: cfg.Market.CommissionRate,
			PlatformName:   cfg.Market.PlatformName,
			OwnerName:      cfg.Market.OwnerName,
			ReferralName:   cfg.Market.ReferralName,
			BankName:       cfg.Market.BankName,
		},
	)
	session.Hydrate(context.Background())

	term.Append(fmt.Sprintf("%s system initialized", cfg.Market.PlatformName), notify.SeverityInfo)
	term.Append(fmt.Sprintf("Owner: %s", cfg.Market.OwnerName), notify.SeverityInfo)
	term.Append(fmt.Sprintf("Referral: %s", cfg.Market.ReferralName), notify.SeverityInfo)
	term.Append(fmt.Sprintf("Loaded %d products from %d global sources", len(products), len(catalog.Sources)), notify.SeveritySuccess)

	sim := syncsim.New(term, catalog.Sources, cfg.Sync.Stagger)
	sched := syncsim.NewCronScheduler()
	if err := sim.Attach(sched, cfg.Sync.Interval); err != nil {
		zap.S().Fatalf("[SYNC] failed to schedule sync job: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	marketplaceService := services.NewMarketplaceService()
	storefrontHandler := handlers.NewStorefrontHandler(session)
	dashboardHandler := handlers.NewDashboardHandler(session, term, sim)

	r := chi.NewRouter()

	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Access-Control-Allow-Origin"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%s/swagger/doc.json", cfg.Server.Port)),
	))

	r.Handle("/static/*", http.StripPrefix("/static/",
		mW.StaticFileServer(cfg.Server.StaticDir)))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", storefrontHandler.ListProducts)
		r.Get("/marketplaces", marketplaceService.GetMarketplaces)
		r.Get("/cart", storefrontHandler.GetCart)
		r.Post("/cart/items", storefrontHandler.AddToCart)
		r.Post("/checkout", storefrontHandler.Checkout)

		r.Get("/dashboard", dashboardHandler.GetDashboard)
		r.Get("/transactions", dashboardHandler.ListTransactions)
		r.Get("/transactions/{txId}/receipt", dashboardHandler.GetReceipt)
		r.Post("/wallet/withdraw", dashboardHandler.Withdraw)
		r.Get("/activity", dashboardHandler.GetActivity)
		r.Post("/data/clear", dashboardHandler.ClearAll)
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zap.S().Infof("[SERVER] listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("[SERVER] failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.S().Info("[SERVER] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.S().Fatalf("[SERVER] forced to shutdown: %v", err)
	}

	zap.S().Info("[SERVER] stopped")
}
