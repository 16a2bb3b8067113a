package worker

import (
	"context"
	"time"

	"github.com/trsv-dev/vps-dashboard/internal/health_storage"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/metrics"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	"github.com/trsv-dev/vps-dashboard/internal/netutils"
	"github.com/trsv-dev/vps-dashboard/internal/storage"
)

// DefaultProbeTimeout Таймаут одной проверки службы.
const DefaultProbeTimeout = 3 * time.Second

// ServiceProber Проверяет службы VPS и сохраняет их статусы в кэш.
type ServiceProber struct {
	checker     netutils.Checker
	storage     storage.WorkerStorage
	statusCache health_storage.StatusCacheStorage
	timeout     time.Duration
	now         func() time.Time
}

// NewServiceProber Конструктор ServiceProber.
func NewServiceProber(checker netutils.Checker, storage storage.WorkerStorage, statusCache health_storage.StatusCacheStorage, timeout time.Duration) *ServiceProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	return &ServiceProber{
		checker:     checker,
		storage:     storage,
		statusCache: statusCache,
		timeout:     timeout,
		now:         time.Now,
	}
}

// Probe Проверка одной службы. Подходит как workerFunc для StatusWorkerPool.
func (p *ServiceProber) Probe(ctx context.Context, probe *models.ServiceProbe) {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	status := models.StatusStopped
	if p.isUp(probeCtx, probe) {
		status = models.StatusRunning
	}

	// при остановке приложения результат проверки недостоверен
	if ctx.Err() != nil {
		return
	}

	changed := p.statusCache.Set(models.ServiceStatus{
		Name:      probe.Name,
		Address:   probe.Target(),
		Status:    status,
		CheckedAt: p.now(),
	})

	metrics.SetServiceUp(probe.Name, status == models.StatusRunning)

	if changed {
		logger.Log.Info("Изменился статус службы",
			logger.String("service", probe.Name),
			logger.String("target", probe.Target()),
			logger.String("status", status.String()))
	}
}

func (p *ServiceProber) isUp(ctx context.Context, probe *models.ServiceProbe) bool {
	switch probe.Kind {
	case models.ProbeTCP:
		return p.checker.CheckTCP(ctx, probe.Address, probe.Port, p.timeout)
	case models.ProbeICMP:
		return p.checker.CheckICMP(ctx, probe.Address, p.timeout)
	case models.ProbeDB:
		if err := p.storage.Ping(ctx); err != nil {
			logger.Log.Warn("База данных PostgreSQL не отвечает", logger.String("err", err.Error()))
			return false
		}
		return true
	default:
		logger.Log.Error("Неизвестный способ проверки службы",
			logger.String("service", probe.Name), logger.String("kind", string(probe.Kind)))
		return false
	}
}

// ServiceStatusWorker Периодически ставит проверки всех служб в очередь пула.
// Первая проверка выполняется сразу после запуска.
func ServiceStatusWorker(ctx context.Context, pool WorkerPool, probes []models.ServiceProbe, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		for i := range probes {
			if !pool.Submit(&probes[i]) {
				logger.Log.Warn("Очередь проверок переполнена, проверка пропущена",
					logger.String("service", probes[i].Name))
			}
		}

		select {
		case <-ctx.Done():
			logger.Log.Info("Завершение работы воркера ServiceStatusWorker по контексту", logger.String("info", ctx.Err().Error()))
			return
		case <-ticker.C: // следующий цикл по таймеру
		}
	}
}
