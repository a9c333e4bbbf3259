package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/kestrelpm/trustbooks/internal/auth"
	"github.com/kestrelpm/trustbooks/internal/bankfeed"
	bankfeedStore "github.com/kestrelpm/trustbooks/internal/bankfeed/store"
	"github.com/kestrelpm/trustbooks/internal/config"
	"github.com/kestrelpm/trustbooks/internal/database"
	"github.com/kestrelpm/trustbooks/internal/extraction"
	trustbooksHttp "github.com/kestrelpm/trustbooks/internal/http"
	bankfeedHandler "github.com/kestrelpm/trustbooks/internal/http/bankfeed"
	txHandler "github.com/kestrelpm/trustbooks/internal/http/ledger"
	propertyHandler "github.com/kestrelpm/trustbooks/internal/http/property"
	reconcileHandler "github.com/kestrelpm/trustbooks/internal/http/reconcile"
	reportHandler "github.com/kestrelpm/trustbooks/internal/http/report"
	"github.com/kestrelpm/trustbooks/internal/ledger"
	ledgerStore "github.com/kestrelpm/trustbooks/internal/ledger/store"
	"github.com/kestrelpm/trustbooks/internal/property"
	propertyStore "github.com/kestrelpm/trustbooks/internal/property/store"
	"github.com/kestrelpm/trustbooks/internal/reconcile"
	reconcileStore "github.com/kestrelpm/trustbooks/internal/reconcile/store"
	"github.com/kestrelpm/trustbooks/internal/report"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	extractor, err := extraction.NewGemini(ctx, cfg.Gemini.Model)
	if err != nil {
		slog.Error("failed to create statement extractor", "error", err)
		os.Exit(1)
	}

	var (
		ledgerService   = ledger.NewService(ledgerStore.New(db))
		propertyService = property.NewService(propertyStore.New(db))
		bankfeedService = bankfeed.NewService(
			bankfeedStore.New(db), ledgerService, propertyService, extractor)
		reconcileService = reconcile.NewService(
			ledgerService,
			propertyService,
			reconcileStore.New(db),
			auth.NewBcryptVerifier(cfg.Auth.PasswordHash),
			auth.NewJWTIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL),
		)
		reportService = report.NewService(reconcileService, ledgerService, propertyService)
	)

	var (
		transactionsH = txHandler.NewHandler(ledgerService)
		propertiesH   = propertyHandler.NewHandler(propertyService)
		bankfeedH     = bankfeedHandler.NewHandler(bankfeedService)
		reconcileH    = reconcileHandler.NewHandler(reconcileService)
		reportsH      = reportHandler.NewHandler(reportService)
	)

	router := trustbooksHttp.New(transactionsH, propertiesH, bankfeedH, reconcileH, reportsH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
