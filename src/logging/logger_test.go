package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, LogLevelError, ParseLogLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("nonsense"))
	assert.Equal(t, "WARN", LogLevelWarn.String())
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Level: LogLevelWarn, Writer: &buf})
	require.NoError(t, err)

	logger.Info("hidden %d", 1)
	logger.Warn("visible %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "visible 2", record["msg"])
	assert.Equal(t, "WARN", record["level"])
}

func TestSanitizeLogMessage(t *testing.T) {
	assert.Equal(t, "barcode X fake line", SanitizeLogMessage("barcode X\nfake line"))
	assert.Equal(t, "a b", SanitizeLogMessage("a\r\nb"))
}

func TestLoggerMiddleware_LogsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger, err := NewLogger(Config{Level: LogLevelDebug, Writer: &buf})
	require.NoError(t, err)
	previous := globalLogger
	globalLogger = logger
	t.Cleanup(func() { globalLogger = previous })

	router := gin.New()
	router.Use(LoggerMiddleware(), Recoverer())
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, buf.String(), "Request completed with client error")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "Panic recovered")
}
