package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "APP_ENV", "PORT", "MONGO_DB_URI", "MONGO_DB_NAME", "JWT_KEY", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "4000", cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Empty(t, cfg.CORSOrigins())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MONGO_DB_URI", "mongodb://db.internal:27017")
	t.Setenv("JWT_KEY", "prod-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()
	require.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	require.Equal(t, "prod-secret", cfg.JWTKey)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())
}
