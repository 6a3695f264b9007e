package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/scriptmark/scriptmark/internal/auth"
	"github.com/scriptmark/scriptmark/internal/bank"
	"github.com/scriptmark/scriptmark/internal/grade"
	"github.com/scriptmark/scriptmark/internal/nlp"
	"github.com/scriptmark/scriptmark/internal/storage"
	"github.com/scriptmark/scriptmark/internal/training"
)

// Deps is everything the API surface needs.
type Deps struct {
	Engine   *grade.Engine
	Sheets   *grade.SheetGrader
	NLP      *nlp.Holder
	Store    bank.Store
	Blobs    storage.BlobStore
	Training *training.FileStore
	Auth     *auth.AuthService

	EnableLocalAuth bool
	CORSOrigins     []string
}

// NewRouter assembles the full API. Read-style analysis endpoints are
// public; anything that stores or mutates sits behind JWT auth.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) })

	if d.EnableLocalAuth {
		r.Post("/api/auth/login", auth.LoginHandler(d.Auth))
	}

	policy := d.Engine.Policy()

	// Grading and analysis.
	r.Post("/api/grade-essay", GradeEssayHandler(d.Engine))
	r.Post("/api/check-plagiarism", CheckPlagiarismHandler(d.NLP, policy))
	r.Post("/api/analyze-text", AnalyzeTextHandler(policy))
	r.Post("/api/fix-spacing", FixSpacingHandler(d.NLP))
	r.Post("/api/grade-ocr", GradeSheetHandler(d.Sheets, d.Store, d.Blobs))

	// Exams and stored reports.
	r.Get("/api/exams", ListExamsHandler(d.Store))
	r.Get("/api/exams/{examID}", GetExamHandler(d.Store))

	// Teacher-only surface.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(d.Auth))
		pr.Post("/api/exams", UploadExamHandler(d.Store))
		pr.Get("/api/exams/{examID}/full", GetExamFullHandler(d.Store))
		pr.Delete("/api/exams/{examID}", DeleteExamHandler(d.Store))
		pr.Get("/api/reports", ListReportsHandler(d.Store))
		pr.Get("/api/reports/{reportID}", GetReportHandler(d.Store))
		pr.Post("/api/save-grading-example", SaveExampleHandler(d.Training))
		pr.Get("/api/training-data", GetTrainingDataHandler(d.Training))
		pr.Get("/api/grading-patterns", GradingPatternsHandler(d.Training))
	})

	return r
}
