package health_storage

import (
	"github.com/trsv-dev/vps-dashboard/internal/models"
)

// WarmUpStatusCache "Прогрев" in-memory хранилища: до первой проверки все службы
// из конфигурации считаются в статусе unknown. Службы, которых нет в конфигурации, удаляются.
func WarmUpStatusCache(probes []models.ServiceProbe, statusCache StatusCacheStorage) {
	known := make(map[string]struct{}, len(probes))

	for _, probe := range probes {
		known[probe.Name] = struct{}{}

		statusCache.Set(models.ServiceStatus{
			Name:    probe.Name,
			Address: probe.Target(),
			Status:  models.StatusUnknown,
		})
	}

	for _, s := range statusCache.All() {
		if _, ok := known[s.Name]; !ok {
			statusCache.Delete(s.Name)
		}
	}
}
