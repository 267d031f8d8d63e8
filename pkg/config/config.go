package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
)

// Config is built once at startup and passed into each component. Credentials
// are carried through unchanged; bad or missing values surface as auth errors
// at the first remote call, not here.
type Config struct {
	StorageAccessKey string
	StorageSecretKey string
	StorageRegion    string
	StorageBucket    string

	TranslationAPIKey string
	TranslationAPIURL string

	TranscriptionModel      string
	TranslationModel        string
	TranslationProvider     string
	BedrockTranslationModel string

	HTTPPort        string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// Load reads configuration from the environment, first overlaying a local
// .env file when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		StorageRegion:    getEnv("STORAGE_REGION", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET_NAME", ""),

		TranslationAPIKey: getEnv("TRANSLATION_API_KEY", ""),
		TranslationAPIURL: getEnv("TRANSLATION_API_URL", ""),

		TranscriptionModel:      getEnv("TRANSCRIPTION_MODEL", "whisper-1"),
		TranslationModel:        getEnv("TRANSLATION_MODEL", "gpt-3.5-turbo"),
		TranslationProvider:     strings.ToLower(getEnv("TRANSLATION_PROVIDER", ProviderOpenAI)),
		BedrockTranslationModel: getEnv("BEDROCK_TRANSLATION_MODEL", "us.anthropic.claude-3-5-sonnet-20241022-v2:0"),

		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ShutdownTimeout: getDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
