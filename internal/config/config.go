package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config is read once at startup and handed to every service constructor.
type Config struct {
	Port        string
	StaticDir   string
	CORSOrigins []string
	LogLevel    string

	LLMProvider   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string
	LLMTimeout    time.Duration

	MaxUploadBytes int64
	MaxBodyBytes   int64
	MaxQuestions   int
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		Logger.WithError(err).Warn("Failed to load .env file")
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Port:           envOr("PORT", "4000"),
		StaticDir:      envOr("STATIC_DIR", "public"),
		CORSOrigins:    csvOr("CORS_ORIGINS", "*"),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		LLMProvider:    strings.ToLower(envOr("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIBaseURL:  envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:    envOr("OPENAI_MODEL", "gpt-4"),
		GeminiModel:    envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMTimeout:     envDuration("LLM_TIMEOUT", 120*time.Second),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 5<<20),
		MaxBodyBytes:   envInt64("MAX_BODY_BYTES", 1<<20),
		MaxQuestions:   int(envInt64("MAX_QUESTIONS", 50)),
	}

	switch cfg.LLMProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return Config{}, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}

	var err error
	if cfg.OpenAIAPIKey, err = secret("OPENAI_API_KEY"); err != nil {
		return Config{}, err
	}
	if cfg.GeminiAPIKey, err = secret("GEMINI_API_KEY"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// secret reads k and, when the value is sealed, decrypts it with CRYPTO_KEY.
func secret(k string) (string, error) {
	v := os.Getenv(k)
	if !strings.HasPrefix(v, SealedPrefix) {
		return v, nil
	}
	sealer, err := NewSealer(os.Getenv("CRYPTO_KEY"))
	if err != nil {
		return "", fmt.Errorf("%s is sealed: %w", k, err)
	}
	plain, err := sealer.Open(v)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt %s: %w", k, err)
	}
	return plain, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt64(k string, def int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(k), 10, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(k))
	if err != nil || v <= 0 {
		return def
	}
	return v
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
