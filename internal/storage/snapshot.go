package storage

import (
	"context"

	"github.com/trsv-dev/vps-dashboard/internal/models"
)

// SnapshotStorage Интерфейс для снимков состояния сервера (только добавление и чтение).
type SnapshotStorage interface {
	AddSnapshot(ctx context.Context, snapshot models.ServerSnapshot) (*models.ServerSnapshot, error)
	// LatestSnapshot Возвращает errs.ErrSnapshotNotFound, если снимков еще нет.
	LatestSnapshot(ctx context.Context) (*models.ServerSnapshot, error)
}

// StatsStorage Минимальный контракт хранилища для агрегатора статистики.
type StatsStorage interface {
	SnapshotStorage
	SSHAccountStats(ctx context.Context, today models.Date) (*models.SSHAccountStats, error)
	ProxyAccountStats(ctx context.Context, today models.Date) (*models.ProxyAccountStats, error)
}
