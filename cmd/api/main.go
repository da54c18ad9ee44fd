package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/config"
	"github.com/georgemunganga/marketplace-backend/internal/modules/admin"
	"github.com/georgemunganga/marketplace-backend/internal/modules/auth"
	"github.com/georgemunganga/marketplace-backend/internal/modules/category"
	"github.com/georgemunganga/marketplace-backend/internal/modules/order"
	"github.com/georgemunganga/marketplace-backend/internal/modules/product"
	"github.com/georgemunganga/marketplace-backend/internal/modules/supplier"
	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
	"github.com/georgemunganga/marketplace-backend/internal/platform/database"
	"github.com/georgemunganga/marketplace-backend/internal/platform/discovery"
	"github.com/georgemunganga/marketplace-backend/internal/platform/logging"
	"github.com/georgemunganga/marketplace-backend/internal/platform/metrics"
	"github.com/georgemunganga/marketplace-backend/internal/platform/password"
	"github.com/georgemunganga/marketplace-backend/internal/platform/token"
	"github.com/georgemunganga/marketplace-backend/internal/platform/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.ServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatal(err)
		}
	}
	logger.Info("connected to database", logging.Fields{})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	serverMetrics := metrics.NewServerMetrics(reg, "api")

	hasher := password.NewHasher(cfg.BcryptCost)
	issuer := token.NewIssuer(cfg.JWTSecret)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(serverMetrics.Middleware)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		web.Respond(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", metrics.Handler(reg))

	imageStore, err := product.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}
	router.Handle(product.UploadsPath+"*",
		http.StripPrefix(product.UploadsPath, http.FileServer(http.Dir(cfg.UploadDir))))

	router.Route(cfg.APIPrefix, func(r chi.Router) {
		// ── Catalog ─────────────────────────────────────────
		categoryRepo := category.NewPostgresRepository(db)
		category.NewHandler(category.NewService(categoryRepo), logger).RegisterRoutes(r)

		productService := product.NewService(product.NewPostgresRepository(db), categoryRepo, imageStore)
		product.NewHandler(productService, logger).RegisterRoutes(r)

		// ── Accounts ────────────────────────────────────────
		userRepo := user.NewPostgresRepository(db)
		authService := auth.NewService(userRepo, hasher, issuer, cfg.UserTokenTTL)
		user.NewHandler(user.NewService(userRepo, hasher), authService, logger).RegisterRoutes(r)

		supplierRepo := supplier.NewPostgresRepository(db)
		supplierService := supplier.NewService(supplierRepo, supplier.NewNotePostgresRepository(db), hasher, issuer, cfg.StaffTokenTTL)
		supplier.NewHandler(supplierService, logger).RegisterRoutes(r)

		adminService := admin.NewService(admin.NewPostgresRepository(db), userRepo, supplierRepo, hasher, issuer, cfg.StaffTokenTTL)
		admin.NewHandler(adminService, logger).RegisterRoutes(r)

		// ── Orders ──────────────────────────────────────────
		order.NewHandler(order.NewService(order.NewPostgresRepository(db)), logger).RegisterRoutes(r)
	})

	if cfg.ConsulAddr != "" {
		registrar, err := discovery.NewConsulRegistrar(cfg.ConsulAddr, cfg.ServiceName, cfg.Port)
		if err != nil {
			log.Fatal(err)
		}
		if err := registrar.Register(); err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := registrar.Deregister(); err != nil {
				logger.Error("consul deregister failed", logging.Fields{Error: err.Error()})
			}
		}()
	}

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("api server starting on :"+cfg.Port, logging.Fields{})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", logging.Fields{Error: err.Error()})
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", logging.Fields{Error: err.Error()})
	}
	logger.Info("api server stopped", logging.Fields{})
}
