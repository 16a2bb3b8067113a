package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/trsv-dev/vps-dashboard/internal/auth"
	"github.com/trsv-dev/vps-dashboard/internal/broadcast"
	"github.com/trsv-dev/vps-dashboard/internal/config"
	"github.com/trsv-dev/vps-dashboard/internal/di_containers"
	"github.com/trsv-dev/vps-dashboard/internal/health_storage"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/netutils"
	"github.com/trsv-dev/vps-dashboard/internal/provisioning"
	"github.com/trsv-dev/vps-dashboard/internal/server"
	"github.com/trsv-dev/vps-dashboard/internal/stats"
	"github.com/trsv-dev/vps-dashboard/internal/storage"
	"github.com/trsv-dev/vps-dashboard/internal/storage/postgres"
	"github.com/trsv-dev/vps-dashboard/internal/worker"
)

// "Сборка" и запуск проекта.
func main() {
	// recover для логирования паник в main
	defer func() {
		if r := recover(); r != nil {
			log.Println("Паника в main:", fmt.Sprintf("%v", r))
		}
	}()

	// загружаем переменные окружения из .env для локальной разработки
	errEnv := godotenv.Load("../../.env.development")
	if errEnv != nil {
		log.Println("Не удалось загрузить .env:", errEnv)
	}

	// инициализация конфигурации сервера
	srvConfig, err := config.InitConfig()
	if err != nil {
		log.Fatalln("Ошибка конфигурации:", err)
	}

	// инициализация логгера с уровнем логирования из конфигурации
	logger.InitLogger(srvConfig.LogLevel, srvConfig.LogOutput)
	// отложенное закрытие ресурса (актуально если используется файл для логирования)
	defer logger.Log.Close()

	// декодируем AES-ключ, используемый для шифрования паролей SSH-пользователей в БД
	AESKeyBytes, err := srvConfig.AESKeyBytes()
	if err != nil {
		logger.Log.Error("Не удалось декодировать AES-ключ из конфигурации", logger.String("err", err.Error()))
		os.Exit(1)
	}

	location, err := srvConfig.Location()
	if err != nil {
		logger.Log.Error("Не удалось загрузить часовой пояс", logger.String("err", err.Error()))
		os.Exit(1)
	}

	probes, err := srvConfig.Probes()
	if err != nil {
		logger.Log.Error("Неверный список проверяемых служб", logger.String("err", err.Error()))
		os.Exit(1)
	}

	// инициализация хранилища (PostgreSQL) с переданным AES-ключом
	pgStorage, err := postgres.InitStorage(srvConfig.DatabaseURI, AESKeyBytes)
	if err != nil {
		logger.Log.Error("Не удалось инициировать хранилище (БД)", logger.String("err", err.Error()))
		os.Exit(1)
	}

	var handlersStorage storage.Storage = pgStorage
	var workersStorage storage.WorkerStorage = pgStorage

	tokenBuilder := auth.NewJWTTokenBuilder()
	var broadcaster broadcast.Broadcaster

	if srvConfig.WebInterface {
		// SSE через r3labs/sse: сводка дашборда публикуется в топик overview,
		// сессия EventSource проверяется по JWT-cookie
		broadcaster = broadcast.NewR3labsSSEAdapter(
			broadcast.MakeJWTTopicResolver(srvConfig.JWTSecretKey, tokenBuilder),
		)
	} else {
		broadcaster = broadcast.NewNoopAdapter()
	}

	// in-memory хранилище статусов служб VPS, "прогрев" списком из конфигурации
	statusCache := health_storage.NewStatusCache()
	health_storage.WarmUpStatusCache(probes, statusCache)

	provisioner := provisioning.NewService(handlersStorage, provisioning.Settings{
		Address:  srvConfig.VPNDomain,
		Port:     srvConfig.ProxyPort,
		Location: location,
	})
	aggregator := stats.NewService(handlersStorage, statusCache, location, time.Now)

	// создаём handlersContainer — контейнер зависимостей для всех хендлеров
	handlersContainer := di_containers.NewHandlersContainer(handlersStorage, statusCache, srvConfig, broadcaster,
		tokenBuilder, provisioner, aggregator)

	// создаем сервер и запускаем его
	srv, serverErrorCh := server.RunServer(srvConfig.RunAddress, handlersContainer)

	// запускаем воркеры в отдельных горутинах:
	// - пул StatusWorkerPool выполняет проверки служб и пишет статусы в in-memory хранилище,
	// - воркер worker.ServiceStatusWorker периодически ставит проверки в очередь пула,
	// - воркер worker.OverviewBroadcastWorker периодически публикует сводку дашборда через SSE
	workersCtx, workersCtxCancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	prober := worker.NewServiceProber(netutils.NewNetworkChecker(srvConfig.ICMPPrivileged), workersStorage, statusCache, worker.DefaultProbeTimeout)
	pool := worker.NewStatusWorkerPool(srvConfig.WorkerPoolSize, prober.Probe)
	pool.Start(workersCtx)

	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.ServiceStatusWorker(workersCtx, pool, probes, srvConfig.ProbeInterval)
	}()

	// без web-интерфейса сводку некому отправлять
	if srvConfig.WebInterface {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.OverviewBroadcastWorker(workersCtx, aggregator, broadcaster, srvConfig.BroadcastInterval)
		}()
	}

	// канал системных сигналов
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop) // гарантированно перестанем слушать сигнал при выходе

	// блокируемся тут в ожидании одного из вариантов завершения работы сервера
	select {
	case err, ok := <-serverErrorCh:
		if !ok {
			logger.Log.Info("Канал ошибок сервера закрыт")
			return
		}
		logger.Log.Error("Ошибка сервера", logger.String("err", err.Error()))
	case sig := <-stop:
		logger.Log.Info("Получен сигнал остановки приложения", logger.String("sig", sig.String()))
	}

	logger.Log.Info("Начало процедуры остановки приложения...")

	// останавливаем воркеры
	workersCtxCancel()

	// ждём завершения всех воркеров с таймаутом
	workersDone := make(chan struct{})
	go func() {
		wg.Wait()
		pool.Stop()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		logger.Log.Info("Воркеры остановлены")
	case <-time.After(5 * time.Second):
		logger.Log.Warn("Таймаут ожидания воркеров")
	}

	// закрываем broadcaster до остановки сервера, иначе Shutdown ждет открытые SSE-соединения
	logger.Log.Info("Закрытие broadcaster...")
	if err = broadcaster.Close(); err != nil {
		logger.Log.Warn("Ошибка закрытия SSE адаптера", logger.String("err", err.Error()))
	}

	logger.Log.Info("Успешное закрытие broadcaster")

	// контекст для завершения работы сервера
	serverShutdownCtx, serverShutdownCancel := context.WithTimeout(context.Background(), 7*time.Second)
	defer serverShutdownCancel()

	// остановка сервера
	if err = srv.Shutdown(serverShutdownCtx); err != nil {
		logger.Log.Error("Ошибка остановки сервера", logger.String("err", err.Error()))
	} else {
		logger.Log.Info("Сервер остановлен")
	}

	// закрытие соединения с БД
	logger.Log.Info("Закрытие соединения с БД...")
	if err = handlersStorage.Close(); err != nil {
		logger.Log.Error("Ошибка закрытия соединения с БД", logger.String("err", err.Error()))
	}
	logger.Log.Info("Успешное закрытие соединения с БД")

	logger.Log.Info("Приложение завершено")
}
