package config_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "STATIC_DIR", "CORS_ORIGINS", "LOG_LEVEL", "LLM_PROVIDER",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "GEMINI_API_KEY", "GEMINI_MODEL",
		"LLM_TIMEOUT", "MAX_UPLOAD_BYTES", "MAX_BODY_BYTES", "MAX_QUESTIONS", "CRYPTO_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, ":4000", cfg.Addr())
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, config.ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "gpt-4", cfg.OpenAIModel)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 120*time.Second, cfg.LLMTimeout)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 50, cfg.MaxQuestions)
	assert.Empty(t, cfg.OpenAIAPIKey)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("OPENAI_API_KEY", "sk-plain")
	t.Setenv("OPENAI_BASE_URL", "https://api.deepseek.com")
	t.Setenv("LLM_TIMEOUT", "15s")
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	t.Setenv("MAX_QUESTIONS", "5")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, config.ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "sk-plain", cfg.OpenAIAPIKey)
	assert.Equal(t, "https://api.deepseek.com", cfg.OpenAIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.LLMTimeout)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 5, cfg.MaxQuestions)
}

func TestFromEnvUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "mystery")

	_, err := config.FromEnv()
	assert.Error(t, err)
}

func TestFromEnvSealedSecret(t *testing.T) {
	clearEnv(t)
	sealer, err := config.NewSealer(testKey)
	require.NoError(t, err)
	sealed, err := sealer.Seal("sk-sealed")
	require.NoError(t, err)

	t.Run("Decrypted", func(t *testing.T) {
		t.Setenv("CRYPTO_KEY", testKey)
		t.Setenv("OPENAI_API_KEY", sealed)

		cfg, err := config.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "sk-sealed", cfg.OpenAIAPIKey)
	})

	t.Run("MissingCryptoKey", func(t *testing.T) {
		t.Setenv("CRYPTO_KEY", "")
		t.Setenv("OPENAI_API_KEY", sealed)

		_, err := config.FromEnv()
		assert.ErrorIs(t, err, config.ErrInvalidCryptoKey)
	})
}
