package stats_handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	statsMocks "github.com/trsv-dev/vps-dashboard/internal/stats/mocks"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// TestGetOverview Проверяет выдачу сводки.
func TestGetOverview(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(m *statsMocks.MockAggregator)
		wantStatus int
	}{
		{
			name: "успешно",
			setupMock: func(m *statsMocks.MockAggregator) {
				m.EXPECT().GetOverview(gomock.Any()).Return(&models.Overview{
					Server:   models.ServerOverview{RAM: models.ResourceUsage{Total: 1024}, Uptime: "0 days"},
					Services: map[string]models.Status{"ssh": models.StatusRunning},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "ошибка агрегатора",
			setupMock: func(m *statsMocks.MockAggregator) {
				m.EXPECT().GetOverview(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			agg := statsMocks.NewMockAggregator(ctrl)
			tt.setupMock(agg)

			rr := httptest.NewRecorder()
			NewStatsHandler(agg).GetOverview(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var got models.Overview
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, int64(1024), got.Server.RAM.Total)
				assert.Equal(t, models.StatusRunning, got.Services["ssh"])
			}
		})
	}
}

// TestRecordSnapshot Проверяет прием снимка с числами в виде строк.
func TestRecordSnapshot(t *testing.T) {
	recordedAt := time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *statsMocks.MockAggregator)
		wantStatus int
	}{
		{
			name: "числа строками",
			body: `{"cpu_usage":"12.5","ram_used":"512","ram_total":1024,"disk_used":"2048","disk_total":"10240","uptime":"3 days"}`,
			setupMock: func(m *statsMocks.MockAggregator) {
				want := models.ServerSnapshot{CPUUsage: 12.5, RAMUsed: 512, RAMTotal: 1024, DiskUsed: 2048, DiskTotal: 10240, Uptime: "3 days"}
				stored := want
				stored.ID = 3
				stored.RecordedAt = recordedAt
				m.EXPECT().RecordSnapshot(gomock.Any(), want).Return(&stored, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "нечисловое значение",
			body:       `{"cpu_usage":"high"}`,
			setupMock:  func(m *statsMocks.MockAggregator) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "ошибка хранилища",
			body: `{"cpu_usage":1}`,
			setupMock: func(m *statsMocks.MockAggregator) {
				m.EXPECT().RecordSnapshot(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			agg := statsMocks.NewMockAggregator(ctrl)
			tt.setupMock(agg)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/stats", bytes.NewBufferString(tt.body))
			NewStatsHandler(agg).RecordSnapshot(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				var got map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, true, got["success"])
				assert.Equal(t, "Статистика сервера обновлена", got["message"])
				snapshot := got["stats"].(map[string]any)
				assert.Equal(t, float64(3), snapshot["id"])
				assert.Equal(t, 12.5, snapshot["cpu_usage"])
			}
		})
	}
}
