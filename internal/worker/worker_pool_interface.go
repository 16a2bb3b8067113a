package worker

import (
	"context"
	"sync"

	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/models"
)

//go:generate mockgen -destination=mocks/worker_pool_mock.go -package=mocks . WorkerPool

// WorkerPool Пул воркеров для проверок служб.
type WorkerPool interface {
	Start(ctx context.Context)
	Stop()
	Submit(probe *models.ServiceProbe) bool
}

// StatusWorkerPool Пул фиксированного размера с ограниченной очередью задач.
type StatusWorkerPool struct {
	tasks      chan *models.ServiceProbe
	workerFunc func(ctx context.Context, probe *models.ServiceProbe)
	poolSize   int
	wg         sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewStatusWorkerPool Конструктор StatusWorkerPool.
func NewStatusWorkerPool(poolSize int, workerFunc func(ctx context.Context, probe *models.ServiceProbe)) *StatusWorkerPool {
	if poolSize < 1 {
		poolSize = 1
	}

	return &StatusWorkerPool{
		tasks:      make(chan *models.ServiceProbe, poolSize*20),
		poolSize:   poolSize,
		workerFunc: workerFunc,
	}
}

func (wp *StatusWorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.poolSize; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
}

// Stop Закрывает очередь и ждет завершения воркеров. Повторный вызов ничего не делает.
func (wp *StatusWorkerPool) Stop() {
	wp.mu.Lock()
	if wp.stopped {
		wp.mu.Unlock()
		return
	}
	wp.stopped = true
	close(wp.tasks)
	wp.mu.Unlock()

	wp.wg.Wait()
}

// Submit Ставит проверку в очередь. false - очередь переполнена или пул остановлен.
func (wp *StatusWorkerPool) Submit(probe *models.ServiceProbe) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.stopped {
		return false
	}

	select {
	case wp.tasks <- probe:
		return true
	default:
		// очередь переполнена, пропускаем задачу
		return false
	}
}

func (wp *StatusWorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("Завершение работы воркера по контексту", logger.Int("status_worker id", id))
			return
		case probe, ok := <-wp.tasks:
			if !ok {
				logger.Log.Debug("Канал tasks для StatusWorkerPool закрыт. Завершение работы воркера", logger.Int("status_worker id", id))
				return
			}

			wp.workerFunc(ctx, probe)
		}
	}
}
