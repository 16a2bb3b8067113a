package broadcast

import (
	"net/http"
)

// NoopAdapter — заглушка для режима без web-интерфейса.
// Реализует интерфейс Broadcaster, но ничего не делает.
type NoopAdapter struct{}

// NewNoopAdapter создаёт новый экземпляр "пустого" адаптера.
func NewNoopAdapter() *NoopAdapter {
	return &NoopAdapter{}
}

// Publish ничего не делает и всегда возвращает nil.
func (n *NoopAdapter) Publish(topic string, data []byte) error {
	return nil
}

// Close ничего не делает и всегда возвращает nil.
func (n *NoopAdapter) Close() error {
	return nil
}

// HTTPHandler отвечает 404 Not Found на подключение к /api/events.
func (n *NoopAdapter) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
}
