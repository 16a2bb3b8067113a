package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/vps-dashboard/internal/errs"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/metrics"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	storageMocks "github.com/trsv-dev/vps-dashboard/internal/storage/mocks"
)

var fixedNow = time.Date(2026, time.October, 18, 23, 30, 0, 0, time.UTC)

func init() {
	logger.InitLogger("error", "stdout")
}

type staticStatuses map[string]models.Status

func (s staticStatuses) Statuses() map[string]models.Status {
	return s
}

// TestPercentage Проверяет расчет процентов.
func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		used  int64
		total int64
		want  int64
	}{
		{name: "половина", used: 512, total: 1024, want: 50},
		{name: "округление вверх с половины", used: 1, total: 8, want: 13},
		{name: "округление вниз", used: 1, total: 3, want: 33},
		{name: "две трети", used: 2, total: 3, want: 67},
		{name: "ноль использовано", used: 0, total: 10240, want: 0},
		{name: "нулевой total", used: 100, total: 0, want: 0},
		{name: "отрицательный total", used: 100, total: -5, want: 0},
		{name: "заполнено полностью", used: 10240, total: 10240, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.used, tt.total))
		})
	}
}

// TestGetOverview Проверяет сборку сводки.
func TestGetOverview(t *testing.T) {
	today := models.NewDate(2026, time.October, 18)
	recordedAt := time.Date(2026, time.October, 18, 23, 0, 0, 0, time.UTC)
	sshStats := &models.SSHAccountStats{Total: 3, Active: 2, Expired: 1}
	proxyStats := &models.ProxyAccountStats{Total: 2, Active: 1, Protocols: models.ProtocolCounts{VLESS: 2}}

	tests := []struct {
		name      string
		statuses  ServiceStatusReader
		setupMock func(m *storageMocks.MockStorage)
		wantErr   bool
		check     func(t *testing.T, o *models.Overview)
	}{
		{
			name:     "есть снимок и статусы служб",
			statuses: staticStatuses{"ssh": models.StatusRunning, "xray": models.StatusStopped},
			setupMock: func(m *storageMocks.MockStorage) {
				m.EXPECT().LatestSnapshot(gomock.Any()).Return(&models.ServerSnapshot{
					ID: 7, CPUUsage: 12.5, RAMUsed: 512, RAMTotal: 1024, DiskUsed: 2560, DiskTotal: 10240,
					Uptime: "3 days", RecordedAt: recordedAt,
				}, nil)
				m.EXPECT().SSHAccountStats(gomock.Any(), today).Return(sshStats, nil)
				m.EXPECT().ProxyAccountStats(gomock.Any(), today).Return(proxyStats, nil)
			},
			check: func(t *testing.T, o *models.Overview) {
				assert.Equal(t, 12.5, o.Server.CPU)
				assert.Equal(t, models.ResourceUsage{Used: 512, Total: 1024, Percentage: 50}, o.Server.RAM)
				assert.Equal(t, models.ResourceUsage{Used: 2560, Total: 10240, Percentage: 25}, o.Server.Disk)
				assert.Equal(t, "3 days", o.Server.Uptime)
				require.NotNil(t, o.Server.RecordedAt)
				assert.Equal(t, recordedAt, *o.Server.RecordedAt)
				assert.Equal(t, *sshStats, o.Users.SSH)
				assert.Equal(t, *proxyStats, o.Users.Proxy)
				assert.Equal(t, map[string]models.Status{"ssh": models.StatusRunning, "xray": models.StatusStopped}, o.Services)
			},
		},
		{
			name: "снимков еще нет",
			setupMock: func(m *storageMocks.MockStorage) {
				m.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, errs.ErrSnapshotNotFound)
				m.EXPECT().SSHAccountStats(gomock.Any(), today).Return(&models.SSHAccountStats{}, nil)
				m.EXPECT().ProxyAccountStats(gomock.Any(), today).Return(&models.ProxyAccountStats{}, nil)
			},
			check: func(t *testing.T, o *models.Overview) {
				assert.Equal(t, models.ServerOverview{
					CPU:    0,
					RAM:    models.ResourceUsage{Used: 0, Total: 1024, Percentage: 0},
					Disk:   models.ResourceUsage{Used: 0, Total: 10240, Percentage: 0},
					Uptime: "0 days",
				}, o.Server)
				assert.NotNil(t, o.Services)
				assert.Empty(t, o.Services)
			},
		},
		{
			name: "ошибка чтения снимка",
			setupMock: func(m *storageMocks.MockStorage) {
				m.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "ошибка статистики SSH",
			setupMock: func(m *storageMocks.MockStorage) {
				m.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, errs.ErrSnapshotNotFound)
				m.EXPECT().SSHAccountStats(gomock.Any(), today).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
		{
			name: "ошибка статистики прокси",
			setupMock: func(m *storageMocks.MockStorage) {
				m.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, errs.ErrSnapshotNotFound)
				m.EXPECT().SSHAccountStats(gomock.Any(), today).Return(&models.SSHAccountStats{}, nil)
				m.EXPECT().ProxyAccountStats(gomock.Any(), today).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			st := storageMocks.NewMockStorage(ctrl)
			tt.setupMock(st)

			svc := NewService(st, tt.statuses, time.UTC, func() time.Time { return fixedNow })
			overview, err := svc.GetOverview(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, overview)
				return
			}

			require.NoError(t, err)
			tt.check(t, overview)
		})
	}
}

// TestGetOverviewUsesConfiguredTimeZone Дата "сегодня" берется в настроенном часовом поясе.
func TestGetOverviewUsesConfiguredTimeZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 23:30 UTC 18 октября - это уже 19 октября во Владивостоке
	vladivostok := time.FixedZone("UTC+10", 10*60*60)
	tomorrow := models.NewDate(2026, time.October, 19)

	st := storageMocks.NewMockStorage(ctrl)
	st.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, errs.ErrSnapshotNotFound)
	st.EXPECT().SSHAccountStats(gomock.Any(), tomorrow).Return(&models.SSHAccountStats{}, nil)
	st.EXPECT().ProxyAccountStats(gomock.Any(), tomorrow).Return(&models.ProxyAccountStats{}, nil)

	svc := NewService(st, nil, vladivostok, func() time.Time { return fixedNow })
	_, err := svc.GetOverview(context.Background())
	assert.NoError(t, err)
}

// TestRecordSnapshot Проверяет сохранение снимка и обновление метрик.
func TestRecordSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshot := models.ServerSnapshot{CPUUsage: 42.5, RAMUsed: 700, RAMTotal: 1000, DiskUsed: 1, DiskTotal: 4, Uptime: "5 days"}
	stored := snapshot
	stored.ID = 11
	stored.RecordedAt = fixedNow

	st := storageMocks.NewMockStorage(ctrl)
	st.EXPECT().AddSnapshot(gomock.Any(), snapshot).Return(&stored, nil)

	before := testutil.ToFloat64(metrics.SnapshotsRecordedTotal)

	svc := NewService(st, nil, time.UTC, nil)
	got, err := svc.RecordSnapshot(context.Background(), snapshot)

	require.NoError(t, err)
	assert.Equal(t, &stored, got)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SnapshotsRecordedTotal))
	assert.Equal(t, 42.5, testutil.ToFloat64(metrics.ServerCPUUsage))
}

// TestRecordSnapshotStorageError Ошибка хранилища не обновляет метрики.
func TestRecordSnapshotStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := storageMocks.NewMockStorage(ctrl)
	st.EXPECT().AddSnapshot(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

	before := testutil.ToFloat64(metrics.SnapshotsRecordedTotal)

	svc := NewService(st, nil, time.UTC, nil)
	got, err := svc.RecordSnapshot(context.Background(), models.ServerSnapshot{})

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, before, testutil.ToFloat64(metrics.SnapshotsRecordedTotal))
}
