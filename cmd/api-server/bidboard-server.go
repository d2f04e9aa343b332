package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"bidboard/db"
	"bidboard/db/migrations"
	"bidboard/internal/config"
	"bidboard/internal/handlers"
	"bidboard/internal/logger"
	"bidboard/internal/store"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("cannot init logger: %v", err)
	}
	defer zlog.Sync()

	mem := store.NewMemory(zlog)

	// Workspaces are always in-memory working state. The bid registry can be
	// backed by Postgres when a connection string is configured.
	var bids handlers.BidStore = mem
	if cfg.PostgresConn != "" {
		dbConn, err := sqlx.Connect("postgres", cfg.PostgresConn)
		if err != nil {
			zlog.Fatal("cannot connect to db", zap.Error(err))
		}
		defer dbConn.Close()

		if err := migrations.Run(dbConn.DB); err != nil {
			zlog.Fatal("migrations failed", zap.Error(err))
		}
		bids = db.NewStorage(dbConn)
		zlog.Info("bid registry backed by postgres")
	}

	h := handlers.NewHandler(bids, mem, zlog)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)
		r.Get("/library", h.LibraryHandler)

		r.Get("/bids", h.ListBidsHandler)
		r.Post("/bids/new", h.CreateBidHandler)
		r.Get("/bids/{bidId}", h.SelectBidHandler)

		r.Put("/bids/{bidId}/checklist/{itemId}", h.ToggleGlobalChecklistHandler)

		r.Route("/bids/{bidId}/nodes/{nodeId}", func(r chi.Router) {
			r.Put("/status", h.ChangeNodeStatusHandler)
			r.Post("/license", h.MapLicenseHandler)
			r.Post("/evidence", h.UploadEvidenceHandler)
			r.Post("/documents/{slotId}/link", h.LinkDocumentHandler)
			r.Delete("/documents/{slotId}/link", h.UnlinkDocumentHandler)
			r.Put("/checklist/{itemId}", h.ToggleNodeChecklistHandler)
			r.Put("/reference", h.EditReferenceHandler)
		})
	})

	zlog.Info("starting server", zap.String("address", cfg.ServerAddress))
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
