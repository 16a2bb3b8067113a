// Package stats Сводка для дашборда: состояние сервера по последнему снимку,
// статистика учетных записей и статусы служб.
package stats

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/trsv-dev/vps-dashboard/internal/errs"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/metrics"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	"github.com/trsv-dev/vps-dashboard/internal/storage"
)

//go:generate mockgen -destination=mocks/aggregator_mock.go -package=mocks . Aggregator

// Aggregator Операции агрегатора статистики.
type Aggregator interface {
	GetOverview(ctx context.Context) (*models.Overview, error)
	RecordSnapshot(ctx context.Context, snapshot models.ServerSnapshot) (*models.ServerSnapshot, error)
}

// ServiceStatusReader Источник последних статусов служб VPS.
type ServiceStatusReader interface {
	Statuses() map[string]models.Status
}

// Service Реализация Aggregator поверх хранилища.
type Service struct {
	storage  storage.StatsStorage
	statuses ServiceStatusReader
	location *time.Location
	now      func() time.Time
}

// NewService Конструктор Service. statuses может быть nil, тогда блок служб пустой.
func NewService(storage storage.StatsStorage, statuses ServiceStatusReader, location *time.Location, now func() time.Time) *Service {
	if location == nil {
		location = time.Local
	}
	if now == nil {
		now = time.Now
	}

	return &Service{
		storage:  storage,
		statuses: statuses,
		location: location,
		now:      now,
	}
}

// GetOverview Собирает сводку для дашборда.
func (s *Service) GetOverview(ctx context.Context) (*models.Overview, error) {
	today := models.Today(s.now(), s.location)

	snapshot, err := s.storage.LatestSnapshot(ctx)
	switch {
	case errors.Is(err, errs.ErrSnapshotNotFound):
		def := models.DefaultSnapshot()
		snapshot = &def
	case err != nil:
		return nil, fmt.Errorf("ошибка получения последнего снимка сервера: %w", err)
	}

	sshStats, err := s.storage.SSHAccountStats(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения статистики SSH-пользователей: %w", err)
	}

	proxyStats, err := s.storage.ProxyAccountStats(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения статистики пользователей прокси: %w", err)
	}

	return &models.Overview{
		Server: serverOverview(snapshot),
		Users: models.UsersOverview{
			SSH:   *sshStats,
			Proxy: *proxyStats,
		},
		Services: s.serviceStatuses(),
	}, nil
}

// RecordSnapshot Сохраняет снимок, присланный агентом, и обновляет метрики сервера.
func (s *Service) RecordSnapshot(ctx context.Context, snapshot models.ServerSnapshot) (*models.ServerSnapshot, error) {
	created, err := s.storage.AddSnapshot(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("ошибка сохранения снимка сервера: %w", err)
	}

	metrics.SnapshotsRecordedTotal.Inc()
	metrics.SetServerUsage(created.CPUUsage, created.RAMUsed, created.RAMTotal, created.DiskUsed, created.DiskTotal)

	logger.Log.Debug("Сохранен снимок состояния сервера", logger.Int64("id", created.ID))

	return created, nil
}

func (s *Service) serviceStatuses() map[string]models.Status {
	result := make(map[string]models.Status)
	if s.statuses == nil {
		return result
	}

	for name, status := range s.statuses.Statuses() {
		result[name] = status
	}

	return result
}

func serverOverview(snapshot *models.ServerSnapshot) models.ServerOverview {
	overview := models.ServerOverview{
		CPU: snapshot.CPUUsage,
		RAM: models.ResourceUsage{
			Used:       snapshot.RAMUsed,
			Total:      snapshot.RAMTotal,
			Percentage: Percentage(snapshot.RAMUsed, snapshot.RAMTotal),
		},
		Disk: models.ResourceUsage{
			Used:       snapshot.DiskUsed,
			Total:      snapshot.DiskTotal,
			Percentage: Percentage(snapshot.DiskUsed, snapshot.DiskTotal),
		},
		Uptime: snapshot.Uptime,
	}

	if !snapshot.RecordedAt.IsZero() {
		recordedAt := snapshot.RecordedAt
		overview.RecordedAt = &recordedAt
	}

	return overview
}

// Percentage Доля used от total в процентах с округлением половины вверх.
// При total <= 0 возвращает 0.
func Percentage(used, total int64) int64 {
	if total <= 0 {
		return 0
	}

	return int64(math.Floor(float64(used)*100/float64(total) + 0.5))
}
