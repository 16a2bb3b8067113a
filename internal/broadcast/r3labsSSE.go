package broadcast

import (
	"net/http"

	"github.com/r3labs/sse/v2"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
)

// R3labsSSEAdapter — адаптер для библиотеки r3labs/sse.
// Обёртка предоставляет Publish/Close и http.Handler для монтирования.
type R3labsSSEAdapter struct {
	srv     *sse.Server
	resolve TopicResolver
}

// NewR3labsSSEAdapter создаёт новый экземпляр адаптера (и internal sse.Server).
// История событий не хранится: сводка каждый раз публикуется целиком.
func NewR3labsSSEAdapter(resolve TopicResolver) *R3labsSSEAdapter {
	srv := sse.New()
	srv.AutoReplay = false

	srv.CreateStream(OverviewTopic)

	return &R3labsSSEAdapter{srv: srv, resolve: resolve}
}

// Publish Публикует событие в указанный топик (stream). Данные передаются в поле Event.Data.
func (a *R3labsSSEAdapter) Publish(topic string, data []byte) error {
	a.srv.Publish(topic, &sse.Event{Data: data})
	return nil
}

// Close Закрывает все EventSource соединения.
func (a *R3labsSSEAdapter) Close() error {
	a.srv.Close()
	return nil
}

// HTTPHandler возвращает http.Handler для EventSource-подключений.
// Топик определяется resolver-ом, клиент не может подписаться на произвольный stream.
func (a *R3labsSSEAdapter) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		topic, err := a.resolve(r)
		if err != nil {
			logger.Log.Debug("Отказ в подписке на поток событий", logger.String("err", err.Error()))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if !a.srv.StreamExists(topic) {
			a.srv.CreateStream(topic)
		}

		// r3labs берет имя потока из query-параметра stream
		r2 := r.Clone(r.Context())
		q := r2.URL.Query()
		q.Set("stream", topic)
		r2.URL.RawQuery = q.Encode()
		r2.URL.Path = "/"

		a.srv.ServeHTTP(w, r2)
	})
}
