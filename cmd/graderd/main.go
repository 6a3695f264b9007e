package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/scriptmark/scriptmark/internal/api/http"
	"github.com/scriptmark/scriptmark/internal/auth"
	"github.com/scriptmark/scriptmark/internal/bank"
	"github.com/scriptmark/scriptmark/internal/config"
	"github.com/scriptmark/scriptmark/internal/db"
	"github.com/scriptmark/scriptmark/internal/extract"
	"github.com/scriptmark/scriptmark/internal/grade"
	"github.com/scriptmark/scriptmark/internal/nlp"
	"github.com/scriptmark/scriptmark/internal/storage"
	"github.com/scriptmark/scriptmark/internal/training"
)

func main() {
	cfg := config.FromEnv()

	// --- Store ---
	var store bank.Store
	if cfg.DBDriver == "memory" {
		store = bank.NewMemStore()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = bank.NewSQLStore(dbh, cfg.DBDriver)
	}

	// --- Embedding provider (lazy: first grading call pays the init) ---
	holder := nlp.NewHolder(func() (nlp.Provider, error) {
		return nlp.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.EmbedModel, cfg.VocabPath)
	})

	engine := grade.NewEngine(holder)
	extractor := extract.NewService(extract.NewTesseract(cfg.OCRLang))
	sheets := grade.NewSheetGrader(engine, extractor,
		grade.WithMinConfidence(cfg.OCRMinConfidence))

	blobs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	trainStore := training.NewFileStore(cfg.TrainingDataPath)
	authSvc := auth.NewAuthService(cfg.AuthSecret, cfg.AdminUser, cfg.AdminPassHash)
	if cfg.EnableLocalAuth && cfg.AdminPassHash == "" {
		log.Printf("ADMIN_PASS_HASH not set; local login will reject all credentials")
	}

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}

	router := api.NewRouter(api.Deps{
		Engine:          engine,
		Sheets:          sheets,
		NLP:             holder,
		Store:           store,
		Blobs:           blobs,
		Training:        trainStore,
		Auth:            authSvc,
		EnableLocalAuth: cfg.EnableLocalAuth,
		CORSOrigins:     origins,
	})

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, router))
}
