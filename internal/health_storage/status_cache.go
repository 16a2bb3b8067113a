package health_storage

import (
	"sort"
	"sync"

	"github.com/trsv-dev/vps-dashboard/internal/models"
)

// StatusCache Структура для хранения последних статусов служб VPS.
type StatusCache struct {
	mu    sync.RWMutex
	cache map[string]models.ServiceStatus
}

// NewStatusCache Конструктор StatusCache.
func NewStatusCache() *StatusCache {
	return &StatusCache{
		cache: make(map[string]models.ServiceStatus),
	}
}

// Set Сохраняет статус службы. Возвращает true, если статус изменился.
func (sc *StatusCache) Set(s models.ServiceStatus) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	old, ok := sc.cache[s.Name]
	sc.cache[s.Name] = s

	return !ok || old.Status != s.Status
}

// Get Метод для извлечения статуса службы из in-memory хранилища.
func (sc *StatusCache) Get(name string) (models.ServiceStatus, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	v, ok := sc.cache[name]

	return v, ok
}

// Delete Метод для удаления статуса службы из in-memory хранилища.
func (sc *StatusCache) Delete(name string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	delete(sc.cache, name)
}

// All Все статусы, отсортированные по имени службы.
func (sc *StatusCache) All() []models.ServiceStatus {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	res := make([]models.ServiceStatus, 0, len(sc.cache))
	for _, s := range sc.cache {
		res = append(res, s)
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})

	return res
}

// Statuses Копия статусов в виде имя -> статус.
func (sc *StatusCache) Statuses() map[string]models.Status {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	res := make(map[string]models.Status, len(sc.cache))
	for name, s := range sc.cache {
		res[name] = s.Status
	}

	return res
}
