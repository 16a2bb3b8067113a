package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCorsMiddleware Проверяет заголовки CORS и обработку preflight.
func TestCorsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
		wantNext   bool
		wantStatus int
	}{
		{name: "локальный фронтенд", method: http.MethodGet, origin: "http://localhost:3000",
			wantOrigin: "http://localhost:3000", wantNext: true, wantStatus: http.StatusTeapot},
		{name: "локальная сеть", method: http.MethodGet, origin: "http://192.168.1.10:8080",
			wantOrigin: "http://192.168.1.10:8080", wantNext: true, wantStatus: http.StatusTeapot},
		{name: "чужой origin", method: http.MethodGet, origin: "https://evil.example.com",
			wantOrigin: "", wantNext: true, wantStatus: http.StatusTeapot},
		{name: "preflight", method: http.MethodOptions, origin: "http://127.0.0.1:3000",
			wantOrigin: "http://127.0.0.1:3000", wantNext: false, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(tt.method, "/api/stats", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()

			CorsMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, called)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			assert.Equal(t, "GET, POST, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}
