package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("DISCOVERY_NEUTRAL_SCORE", "")

	cfg := New()

	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "@tcp(localhost:3306)/roommatch")
	assert.Equal(t, 50.0, cfg.Match.NeutralScore)
	assert.Equal(t, 16, cfg.Match.RealtimeBuffer)
	assert.Equal(t, 6*time.Hour, cfg.Redis.ScoreTTL)
}

func TestNew_PostgresDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_HOST", "pg")

	cfg := New()

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "host=pg port=5432")
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("DISCOVERY_NEUTRAL_SCORE", "40")
	t.Setenv("SCORE_CACHE_TTL", "15m")
	t.Setenv("LOG_SOURCE", "yes")

	cfg := New()

	assert.Equal(t, "/tmp/x.db", cfg.DB.DSN)
	assert.Equal(t, 40.0, cfg.Match.NeutralScore)
	assert.Equal(t, 15*time.Minute, cfg.Redis.ScoreTTL)
	assert.True(t, cfg.Log.Source)
}
