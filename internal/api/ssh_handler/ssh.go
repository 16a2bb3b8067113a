package ssh_handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/trsv-dev/vps-dashboard/internal/api/response"
	"github.com/trsv-dev/vps-dashboard/internal/errs"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	"github.com/trsv-dev/vps-dashboard/internal/provisioning"
)

// SSHHandler Обработчик SSH-пользователей.
type SSHHandler struct {
	provisioner provisioning.Provisioner
}

// NewSSHHandler Конструктор SSHHandler.
func NewSSHHandler(provisioner provisioning.Provisioner) *SSHHandler {
	return &SSHHandler{provisioner: provisioner}
}

// CreatedResponse Ответ на создание SSH-пользователя.
type CreatedResponse struct {
	Success bool               `json:"success"`
	User    *models.SSHAccount `json:"user"`
	Message string             `json:"message"`
}

// ListResponse Список SSH-пользователей.
type ListResponse struct {
	Users []*models.SSHAccount `json:"users"`
}

// CreateSSHUser Создание SSH-пользователя.
func (h *SSHHandler) CreateSSHUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	creds := models.GetContextCreds(ctx)

	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log.Error("Ошибка чтения тела запроса", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Ошибка чтения тела запроса")
		return
	}

	var req models.CreateSSHAccountRequest
	if err = json.Unmarshal(body, &req); err != nil {
		logger.Log.Debug("Неверный формат запроса на создание SSH-пользователя", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	account, err := h.provisioner.CreateSSHAccount(ctx, req)

	var (
		ErrValidation      *errs.ErrValidation
		ErrUsernameIsTaken *errs.ErrUsernameIsTaken
	)

	switch {
	case errors.As(err, &ErrValidation):
		response.ErrorJSON(w, http.StatusBadRequest, ErrValidation.Message)
		return
	case errors.As(err, &ErrUsernameIsTaken):
		logger.Log.Info("SSH-пользователь уже существует",
			logger.String("login", creds.Login),
			logger.String("username", ErrUsernameIsTaken.Username))
		response.ErrorJSON(w, http.StatusBadRequest, "Пользователь с таким именем уже существует")
		return
	case err != nil:
		logger.Log.Error("Ошибка при создании SSH-пользователя",
			logger.String("login", creds.Login), logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Не удалось создать SSH-пользователя")
		return
	}

	response.JSON(w, http.StatusCreated, CreatedResponse{
		Success: true,
		User:    account,
		Message: "SSH-пользователь создан",
	})
}

// ListSSHUsers Список SSH-пользователей, новые первыми.
func (h *SSHHandler) ListSSHUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.provisioner.ListSSHAccounts(r.Context())
	if err != nil {
		logger.Log.Error("Ошибка получения списка SSH-пользователей", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Не удалось получить список SSH-пользователей")
		return
	}

	response.JSON(w, http.StatusOK, ListResponse{Users: accounts})
}
