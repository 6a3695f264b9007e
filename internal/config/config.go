package config

import (
	"os"
	"strconv"
	"strings"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver string // sqlite|postgres|memory
	DBDSN    string

	BlobBasePath string

	// Embedding provider.
	GeminiAPIKey string
	EmbedModel   string
	VocabPath    string // WordPiece vocab for spacing repair; optional

	// OCR.
	OCRLang          string
	OCRMinConfidence float64

	TrainingDataPath string

	EnableLocalAuth bool
	AdminUser       string
	AdminPassHash   string // bcrypt
	AuthSecret      string // JWT signing key

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Mode:     mode,
		HTTPAddr: addr,

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		BlobBasePath: envOr("BLOB_BASE_PATH", "./data/uploads"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		EmbedModel:   envOr("EMBED_MODEL", "text-embedding-004"),
		VocabPath:    os.Getenv("VOCAB_PATH"),

		OCRLang:          envOr("OCR_LANG", "eng"),
		OCRMinConfidence: envFloat("OCR_MIN_CONFIDENCE", 30),

		TrainingDataPath: envOr("TRAINING_DATA_PATH", "./data/grading_training_data.json"),

		EnableLocalAuth: envBool("ENABLE_LOCAL_AUTH", true),
		AdminUser:       envOr("ADMIN_USER", "admin"),
		AdminPassHash:   os.Getenv("ADMIN_PASS_HASH"), // no default: login stays disabled until set
		AuthSecret:      envOr("AUTH_SECRET", "dev-secret-change-me"),

		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", ""),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:3010"),
	}
}
func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
