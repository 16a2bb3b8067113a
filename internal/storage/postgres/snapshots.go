package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trsv-dev/vps-dashboard/internal/errs"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/models"
)

const (
	addSnapshotQuery = `INSERT INTO server_snapshots (cpu_usage, ram_used, ram_total, disk_used, disk_total, uptime)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, recorded_at`

	latestSnapshotQuery = `SELECT id, cpu_usage, ram_used, ram_total, disk_used, disk_total, uptime, recorded_at
			  FROM server_snapshots
			  ORDER BY recorded_at DESC
			  LIMIT 1`
)

// AddSnapshot Добавление снимка состояния сервера.
func (pg *PgStorage) AddSnapshot(ctx context.Context, snapshot models.ServerSnapshot) (*models.ServerSnapshot, error) {
	err := pg.DB.QueryRowContext(ctx, addSnapshotQuery,
		snapshot.CPUUsage, snapshot.RAMUsed, snapshot.RAMTotal, snapshot.DiskUsed, snapshot.DiskTotal, snapshot.Uptime).
		Scan(&snapshot.ID, &snapshot.RecordedAt)
	if err != nil {
		logger.Log.Error("Ошибка при сохранении снимка состояния сервера", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при сохранении снимка: %w", err)
	}

	return &snapshot, nil
}

// LatestSnapshot Последний по времени снимок.
func (pg *PgStorage) LatestSnapshot(ctx context.Context) (*models.ServerSnapshot, error) {
	var s models.ServerSnapshot

	err := pg.DB.QueryRowContext(ctx, latestSnapshotQuery).
		Scan(&s.ID, &s.CPUUsage, &s.RAMUsed, &s.RAMTotal, &s.DiskUsed, &s.DiskTotal, &s.Uptime, &s.RecordedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrSnapshotNotFound
		}

		logger.Log.Error("Ошибка при получении последнего снимка", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при получении последнего снимка: %w", err)
	}

	return &s, nil
}
