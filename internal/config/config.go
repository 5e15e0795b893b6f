package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port          string
	PostgresDSN   string
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	RedisPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	SerperAPIKey string
	SerperURL    string
	GoogleAPIKey string

	OpenAIAPIKey     string
	OpenAIURL        string
	OpenAIModel      string
	OpenRouterAPIKey string
	OpenRouterURL    string
	OpenRouterModel  string

	AdminUsername string
	AdminPassword string

	CorpusFile string

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8080"),
		PostgresDSN:   getenv("POSTGRES_DSN", ""),
		MongoURI:      getenv("MONGO_URI", ""),
		MongoDB:       getenv("MONGO_DB", "bakery_assistant"),
		RedisAddr:     getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "minio:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getenv("MINIO_BUCKET", "bakery-corpus"),
		MinioUseSSL:    getenv("MINIO_USE_SSL", "false") == "true",

		SerperAPIKey: getenv("SERPER_API_KEY", ""),
		SerperURL:    getenv("SERPER_URL", "https://google.serper.dev/search"),
		GoogleAPIKey: getenv("GOOGLE_API_KEY", ""),

		OpenAIAPIKey:     getenv("OPENAI_API_KEY", ""),
		OpenAIURL:        getenv("OPENAI_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAIModel:      getenv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenRouterAPIKey: getenv("OPENROUTER_API_KEY", ""),
		OpenRouterURL:    getenv("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions"),
		OpenRouterModel:  getenv("OPENROUTER_MODEL", "meta-llama/llama-3.1-8b-instruct"),

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", ""),

		CorpusFile: getenv("CORPUS_FILE", "data/ingested_docs.json"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
