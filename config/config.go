package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DBPath       string
	UploadDir    string
	LLMEndpoint  string
	LLMAPIKey    string
	LLMModel     string
	EmbEndpoint  string
	EmbAPIKey    string
	EmbModel     string
	ChunkSize    int
	ChunkOverlap int
	// Comma-separated hosts allowed for URL note ingestion.
	NotesAllowedDomains string
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
		}
		return def
	}
	cfg := AppConfig{
		Port:                get("PORT", "8080"),
		DBPath:              get("DB_PATH", "bookstudy.db"),
		UploadDir:           get("UPLOAD_DIR", "./data/uploads"),
		LLMEndpoint:         get("LLM_ENDPOINT", ""),
		LLMAPIKey:           get("LLM_API_KEY", ""),
		LLMModel:            get("LLM_MODEL", "gpt-4o-mini"),
		EmbEndpoint:         get("EMB_ENDPOINT", ""),
		EmbAPIKey:           get("EMB_API_KEY", ""),
		EmbModel:            get("EMB_MODEL", "text-embedding-3-small"),
		ChunkSize:           getInt("CHUNK_SIZE", 1000),
		ChunkOverlap:        getInt("CHUNK_OVERLAP", 200),
		NotesAllowedDomains: get("NOTES_ALLOWED_DOMAINS", ""),
	}
	log.Printf("[cfg] port=%s db=%s chunk=%d/%d", cfg.Port, cfg.DBPath, cfg.ChunkSize, cfg.ChunkOverlap)
	return cfg
}
