package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "nursematch", cfg.Database.Database)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.False(t, cfg.Nurses.StoreEnabled)
	assert.Equal(t, "postgres", cfg.Nurses.StoreKind)
}

func TestLoad_NursesConfig(t *testing.T) {
	t.Setenv("NURSE_STORE_ENABLED", "true")
	t.Setenv("NURSE_STORE_KIND", "typesense")
	t.Setenv("NURSES_FILE", "/data/nurses.json")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.True(t, cfg.Nurses.StoreEnabled)
	assert.Equal(t, "typesense", cfg.Nurses.StoreKind)
	assert.Equal(t, "/data/nurses.json", cfg.Nurses.StaticFile)
}

func TestOpenAIConfig_Configured(t *testing.T) {
	cfg := OpenAIConfig{}
	assert.False(t, cfg.Configured())

	cfg.APIKey = "sk-test"
	cfg.Model = "gpt-4o-mini"
	assert.True(t, cfg.Configured())

	// A custom endpoint needs a deployment or model identifier.
	cfg = OpenAIConfig{APIKey: "sk-test", BaseURL: "https://example.openai.azure.com"}
	assert.False(t, cfg.Configured())

	cfg.Deployment = "ranker-prod"
	assert.True(t, cfg.Configured())
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "secret",
		Database: "nursematch", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=nursematch sslmode=disable",
		cfg.DatabaseDSN(),
	)
}
