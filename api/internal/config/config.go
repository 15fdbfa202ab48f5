package config

import "os"

type Config struct {
	Port string

	// GeminiAPIKey may be empty: the service then runs degraded (the API
	// reports missing credentials per request) or on the mock engine.
	GeminiAPIKey string
	GeminiModel  string

	// Engine forces the assessment strategy: "gemini" or "mock". Empty
	// selects gemini when a key is configured, mock otherwise.
	Engine string

	TelegramBotToken string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		Engine:       getEnv("ANALYZE_ENGINE", ""),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
	}
}
