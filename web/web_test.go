package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHandler Проверяет раздачу встроенного дашборда.
func TestHandler(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantContains string
	}{
		{name: "корень", path: "/", wantStatus: http.StatusOK, wantContains: `id="overview"`},
		{name: "страница входа", path: "/login.html", wantStatus: http.StatusOK, wantContains: `id="login-form"`},
		{name: "клиентский путь", path: "/users", wantStatus: http.StatusOK, wantContains: `id="overview"`},
		{name: "скрипт", path: "/app.js", wantStatus: http.StatusOK, wantContains: "EventSource"},
		{name: "несуществующий файл", path: "/missing.css", wantStatus: http.StatusNotFound},
	}

	h := Handler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantContains != "" {
				assert.Contains(t, rr.Body.String(), tt.wantContains)
			}
		})
	}
}
