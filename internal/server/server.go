package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/trsv-dev/vps-dashboard/internal/di_containers"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/router"
)

// NewServer Создание нового сервера.
func NewServer(runAddress string, handlers *di_containers.HandlersContainer) *http.Server {
	mux := router.Router(handlers)

	// WriteTimeout не задаем: SSE-соединения живут долго
	server := &http.Server{
		Addr:              runAddress,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	return server
}

// RunServer Запускает сервер в горутине и возвращает сам сервер и канал ошибок.
func RunServer(runAddress string, handlers *di_containers.HandlersContainer) (*http.Server, chan error) {
	server := NewServer(runAddress, handlers)

	// канал ошибок сервера
	serverErrorCh := make(chan error, 1)

	go func() {
		defer close(serverErrorCh)

		logger.Log.Info("Сервер запущен", logger.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Ошибка сервера", logger.String("err", err.Error()))
			// отправляем ошибку в канал ошибок сервера
			serverErrorCh <- err
		}
	}()

	return server, serverErrorCh
}
