package logging

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name    string
		handler echo.HandlerFunc
		status  int
		level   zapcore.Level
		body    string
	}{
		{
			name:    "success",
			handler: func(c echo.Context) error { return c.String(http.StatusOK, "ok") },
			status:  http.StatusOK,
			level:   zap.InfoLevel,
			body:    `"ok"`,
		},
		{
			name: "client error",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, "Usuário não encontrado")
			},
			status: http.StatusNotFound,
			level:  zap.WarnLevel,
			body:   `{"message":"Usuário não encontrado"}`,
		},
		{
			name:    "server error",
			handler: func(c echo.Context) error { return errors.New("boom") },
			status:  http.StatusInternalServerError,
			level:   zap.ErrorLevel,
			body:    `{"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			e := echo.New()
			e.Use(RequestLogger(zap.New(core)))
			e.GET("/user/:id", tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/7", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, jsonOrString(rec.Body.String()))

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, "/user/:id", fields["path"])
			assert.Equal(t, http.MethodGet, fields["method"])
		})
	}
}

// jsonOrString quotes plain-text bodies so JSONEq can compare every case.
func jsonOrString(body string) string {
	if len(body) > 0 && body[0] == '{' {
		return body
	}
	return `"` + body + `"`
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = NewLogger("loud")
	assert.Error(t, err)
}

func TestGormWriter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	GormWriter{Logger: zap.New(core)}.Printf("%s rows=%d", "SELECT 1", 1)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "SELECT 1 rows=1", logs.All()[0].Message)
}
