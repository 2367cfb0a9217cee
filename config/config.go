package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	DBPath    string
	AuthToken string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string

	ChunkSize    int
	ChunkOverlap int
	TopK         int

	// AnswerMode selects the model response contract: "plain" returns the
	// model output verbatim with no sources, "structured" asks the model for
	// JSON carrying the answer plus its source clauses.
	AnswerMode string

	MaxDownloadBytes int64
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Printf("[cfg] bad int for %s, using %d", k, def)
		}
		return def
	}

	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", "docqa.db"),
		AuthToken: get("AUTH_TOKEN", ""),

		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),

		EmbEndpoint: get("EMB_ENDPOINT", ""),
		EmbAPIKey:   get("EMB_API_KEY", ""),
		EmbModel:    get("EMB_MODEL", "text-embedding-3-small"),

		ChunkSize:    getInt("CHUNK_SIZE", 1000),
		ChunkOverlap: getInt("CHUNK_OVERLAP", 200),
		TopK:         getInt("TOP_K", 4),

		AnswerMode: get("ANSWER_MODE", "plain"),

		MaxDownloadBytes: int64(getInt("MAX_DOWNLOAD_BYTES", 25_000_000)),
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		log.Printf("[cfg] chunk overlap %d out of range for size %d, using 1000/200", cfg.ChunkOverlap, cfg.ChunkSize)
		cfg.ChunkSize, cfg.ChunkOverlap = 1000, 200
	}
	if cfg.AnswerMode != "plain" && cfg.AnswerMode != "structured" {
		log.Printf("[cfg] unknown ANSWER_MODE %q, using plain", cfg.AnswerMode)
		cfg.AnswerMode = "plain"
	}
	log.Printf("[cfg] port=%s db=%s chunk=%d/%d top_k=%d mode=%s", cfg.Port, cfg.DBPath, cfg.ChunkSize, cfg.ChunkOverlap, cfg.TopK, cfg.AnswerMode)
	return cfg
}
