package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorJSON Проверяет формат ответа с ошибкой.
func TestErrorJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorJSON(rr, http.StatusBadRequest, "необходимо указать email")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":400,"error":"необходимо указать email"}`, rr.Body.String())
}

// TestSuccessJSON Проверяет формат простого успешного ответа.
func TestSuccessJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	SuccessJSON(rr, http.StatusOK, "Выход выполнен")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Выход выполнен"}`, rr.Body.String())
}
