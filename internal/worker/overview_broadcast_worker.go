package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trsv-dev/vps-dashboard/internal/broadcast"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/stats"
)

// OverviewBroadcastWorker Периодически собирает сводку дашборда и публикует ее через Publisher.
func OverviewBroadcastWorker(ctx context.Context, aggregator stats.Aggregator, publisher broadcast.Broadcaster, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := publishOverview(ctx, aggregator, publisher); err != nil {
			logger.Log.Error("ошибка воркера OverviewBroadcastWorker", logger.String("err", err.Error()))
		}

		select {
		case <-ctx.Done():
			logger.Log.Info("Завершение работы воркера OverviewBroadcastWorker по контексту", logger.String("info", ctx.Err().Error()))
			return
		case <-ticker.C: // следующий цикл по таймеру
		}
	}
}

// publishOverview Получает сводку и публикует ее в топик overview.
func publishOverview(ctx context.Context, aggregator stats.Aggregator, publisher broadcast.Broadcaster) error {
	fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	overview, err := aggregator.GetOverview(fetchCtx)
	if err != nil {
		return fmt.Errorf("ошибка получения сводки: %w", err)
	}

	b, err := json.Marshal(overview)
	if err != nil {
		return err
	}

	return publisher.Publish(broadcast.OverviewTopic, b)
}
