package stats_handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/trsv-dev/vps-dashboard/internal/api/response"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	"github.com/trsv-dev/vps-dashboard/internal/stats"
)

// StatsHandler Обработчик сводки дашборда и снимков состояния сервера.
type StatsHandler struct {
	aggregator stats.Aggregator
}

// NewStatsHandler Конструктор StatsHandler.
func NewStatsHandler(aggregator stats.Aggregator) *StatsHandler {
	return &StatsHandler{aggregator: aggregator}
}

// RecordedResponse Ответ на сохранение снимка.
type RecordedResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Stats   *models.ServerSnapshot `json:"stats"`
}

// GetOverview Сводка: ресурсы сервера, пользователи, службы.
func (h *StatsHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.aggregator.GetOverview(r.Context())
	if err != nil {
		logger.Log.Error("Ошибка получения сводки", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Не удалось получить статистику сервера")
		return
	}

	response.JSON(w, http.StatusOK, overview)
}

// RecordSnapshot Прием снимка состояния сервера от агента сбора статистики.
func (h *StatsHandler) RecordSnapshot(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log.Error("Ошибка чтения тела запроса", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Ошибка чтения тела запроса")
		return
	}

	var req models.RecordSnapshotRequest
	if err = json.Unmarshal(body, &req); err != nil {
		logger.Log.Debug("Неверный формат снимка сервера", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	snapshot, err := h.aggregator.RecordSnapshot(r.Context(), req.ToSnapshot())
	if err != nil {
		logger.Log.Error("Ошибка сохранения снимка сервера", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Не удалось обновить статистику сервера")
		return
	}

	response.JSON(w, http.StatusCreated, RecordedResponse{
		Success: true,
		Message: "Статистика сервера обновлена",
		Stats:   snapshot,
	})
}
