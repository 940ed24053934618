package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"paybill/internal/domain/auth"
	"paybill/internal/domain/paybill"
	"paybill/internal/domain/payslip"
	"paybill/internal/domain/report"
	"paybill/internal/domain/statement"
	"paybill/internal/domain/teacher"
	"paybill/internal/platform/config"
	"paybill/internal/platform/crypto"
	"paybill/internal/platform/db"
	"paybill/internal/platform/metrics"
	authhandler "paybill/internal/transport/http/handlers/auth"
	paybillhandler "paybill/internal/transport/http/handlers/paybill"
	paysliphandler "paybill/internal/transport/http/handlers/payslip"
	reporthandler "paybill/internal/transport/http/handlers/report"
	statementhandler "paybill/internal/transport/http/handlers/statement"
	teacherhandler "paybill/internal/transport/http/handlers/teacher"
	"paybill/internal/transport/http/middleware"
)

func Run() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			slog.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			slog.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}

	sealer, err := crypto.NewSealer(cfg.DataEncryptionKey)
	if err != nil {
		slog.Error("invalid DATA_ENCRYPTION_KEY", "err", err)
		os.Exit(1)
	}

	teacherStore := teacher.NewStore(pool)
	paybillStore := paybill.NewStore(pool)
	authService := auth.NewService(auth.NewStore(pool), sealer, cfg.JWTSecret, cfg.TokenTTL)
	paybillService := paybill.NewService(paybillStore)
	payslipService := payslip.NewService(teacherStore, paybillStore, cfg.AdminContactMobile)
	reportService := report.NewService(paybillStore, teacherStore)
	statementService := statement.NewService(teacherStore, paybillStore, cfg.AdminContactMobile)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		loginLimit := max(cfg.RateLimitPerMinute/4, 1)
		authhandler.NewHandler(authService, teacherStore).
			RegisterRoutes(r, middleware.LoginRateLimit(loginLimit, time.Minute))

		teacherhandler.NewHandler(teacherStore).RegisterRoutes(r)
		paybillhandler.NewHandler(paybillService, collector).RegisterRoutes(r)
		paysliphandler.NewHandler(payslipService).RegisterRoutes(r)
		reporthandler.NewHandler(reportService).RegisterRoutes(r)
		statementhandler.NewHandler(statementService).RegisterRoutes(r)
	})

	router.With(middleware.RequireAdmin).Get("/metricsz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(collector.Snapshot())
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	slog.Info("paybill server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

// spaHandler serves the built frontend, falling back to index.html so
// client-side routes deep-link correctly.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
