package health_storage

import "github.com/trsv-dev/vps-dashboard/internal/models"

//go:generate mockgen -destination=mocks/status_cache_storage_mock.go -package=mocks . StatusCacheStorage

// StatusCacheStorage In-memory хранилище статусов служб.
type StatusCacheStorage interface {
	Set(s models.ServiceStatus) bool
	Get(name string) (models.ServiceStatus, bool)
	Delete(name string)
	All() []models.ServiceStatus
	Statuses() map[string]models.Status
}
