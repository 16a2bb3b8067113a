package storage

import "context"

// WorkerStorage Описывает минимальный контракт хранилища,
// необходимый фоновым воркерам.
//
// Используется в ServiceStatusWorker: доступность БД проверяется
// наравне с остальными службами VPS.
type WorkerStorage interface {
	Ping(ctx context.Context) error
}
