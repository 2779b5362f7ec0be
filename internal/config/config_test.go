package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "DB_DSN", "MYSQL_DSN", "JWT_SECRET", "JWT_TTL", "RESET_DB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Contains(t, cfg.DBDSN, "marketplace")
	assert.Equal(t, "change-me", cfg.JWTSecret)
	assert.Equal(t, time.Duration(0), cfg.JWTTTL)
	assert.False(t, cfg.ResetDB)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file:test.db")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RESET_DB", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file:test.db", cfg.DBDSN)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.ResetDB)
}

func TestLoad_MySQLDSNFallback(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("MYSQL_DSN", "root@tcp(db:3306)/app")

	cfg := Load()

	assert.Equal(t, "root@tcp(db:3306)/app", cfg.DBDSN)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "abc")
	t.Setenv("JWT_TTL", "forever")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, time.Duration(0), cfg.JWTTTL)
}
