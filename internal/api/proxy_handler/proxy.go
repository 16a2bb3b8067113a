package proxy_handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/trsv-dev/vps-dashboard/internal/api/response"
	"github.com/trsv-dev/vps-dashboard/internal/errs"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	"github.com/trsv-dev/vps-dashboard/internal/provisioning"
)

// ProxyHandler Обработчик пользователей прокси (VMESS/VLESS/TROJAN).
type ProxyHandler struct {
	provisioner provisioning.Provisioner
}

// NewProxyHandler Конструктор ProxyHandler.
func NewProxyHandler(provisioner provisioning.Provisioner) *ProxyHandler {
	return &ProxyHandler{provisioner: provisioner}
}

// CreatedResponse Ответ на создание пользователя прокси.
type CreatedResponse struct {
	Success bool                 `json:"success"`
	User    *models.ProxyAccount `json:"user"`
	Config  models.ProxyConfig   `json:"config"`
	Link    string               `json:"link"`
	Message string               `json:"message"`
}

// CreateProxyUser Создание пользователя прокси с клиентской конфигурацией.
func (h *ProxyHandler) CreateProxyUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	creds := models.GetContextCreds(ctx)

	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log.Error("Ошибка чтения тела запроса", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Ошибка чтения тела запроса")
		return
	}

	var req models.CreateProxyAccountRequest
	if err = json.Unmarshal(body, &req); err != nil {
		logger.Log.Debug("Неверный формат запроса на создание пользователя прокси", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	provisioned, err := h.provisioner.CreateProxyAccount(ctx, req)

	var ErrValidation *errs.ErrValidation
	switch {
	case errors.As(err, &ErrValidation):
		response.ErrorJSON(w, http.StatusBadRequest, ErrValidation.Message)
		return
	case err != nil:
		logger.Log.Error("Ошибка при создании пользователя прокси",
			logger.String("login", creds.Login), logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Не удалось создать пользователя прокси")
		return
	}

	protocol := strings.ToUpper(string(provisioned.Account.Protocol))

	response.JSON(w, http.StatusCreated, CreatedResponse{
		Success: true,
		User:    provisioned.Account,
		Config:  provisioned.Config,
		Link:    provisioned.Link,
		Message: fmt.Sprintf("Пользователь %s создан", protocol),
	})
}

// ListProxyUsers Список пользователей прокси со сводкой. Фильтр по ?protocol=.
func (h *ProxyHandler) ListProxyUsers(w http.ResponseWriter, r *http.Request) {
	protocol := models.Protocol(strings.ToLower(r.URL.Query().Get("protocol")))

	list, err := h.provisioner.ListProxyAccounts(r.Context(), protocol)

	var ErrValidation *errs.ErrValidation
	switch {
	case errors.As(err, &ErrValidation):
		response.ErrorJSON(w, http.StatusBadRequest, ErrValidation.Message)
		return
	case err != nil:
		logger.Log.Error("Ошибка получения списка пользователей прокси", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Не удалось получить список пользователей прокси")
		return
	}

	response.JSON(w, http.StatusOK, list)
}
