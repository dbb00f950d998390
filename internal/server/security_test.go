package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		headers        map[string]string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", map[string]string{HeaderAPIKey: apiKey}, "/api/v1/state", http.StatusOK},
		{"Valid bearer token", map[string]string{HeaderAuthorization: "Bearer " + apiKey}, "/api/v1/state", http.StatusOK},
		{"Invalid API Key", map[string]string{HeaderAPIKey: "wrong-key"}, "/api/v1/state", http.StatusUnauthorized},
		{"Wrong auth scheme", map[string]string{HeaderAuthorization: "Basic " + apiKey}, "/api/v1/state", http.StatusUnauthorized},
		{"Missing API Key", nil, "/api/v1/state", http.StatusUnauthorized},
		{"Public Path - Healthz", nil, "/healthz", http.StatusOK},
		{"Public Path - Metrics", nil, "/metrics", http.StatusOK},
		{"Public Path - Version", nil, "/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware("key", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/v1/state", nil)
		req.RemoteAddr = "10.1.1.1:5000"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.1.1.1"])
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler())

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/api/v1/state", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < RateLimitMaxRequests; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	t.Run("window rolls over", func(t *testing.T) {
		detector.mu.Lock()
		later := detector.windowStart.Add(RateLimitWindow + time.Second)
		detector.now = func() time.Time { return later }
		detector.mu.Unlock()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "1.2.3.4:80", "", nil, "1.2.3.4"},
		{"untrusted forwarder ignored", "1.2.3.4:80", "9.9.9.9", nil, "1.2.3.4"},
		{"trusted proxy last hop", "10.0.0.1:80", "5.5.5.5, 6.6.6.6", []string{"10.0.0.1"}, "6.6.6.6"},
		{"trusted proxy garbage header", "10.0.0.1:80", "not-an-ip", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote", "weird", "", nil, "weird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	req := httptest.NewRequest("GET", "/api/v1/state", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	assert.Contains(t, logOutput, LogMsgRequestHeaders)
	assert.Contains(t, logOutput, "request_id=")
	assert.NotContains(t, logOutput, "secret-key-123")
	assert.NotContains(t, logOutput, "Bearer mytoken")
	assert.Contains(t, logOutput, "TestAgent")
}

func TestLoggingMiddleware_QuietPaths(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/healthz", nil))

	assert.Empty(t, buf.String())
}
