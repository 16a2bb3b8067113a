package broadcast

import (
	"net/http"
)

//go:generate mockgen -destination=mocks/broadcast_mock.go -package=mocks . Broadcaster

// Broadcaster Рассылка событий дашборду.
type Broadcaster interface {
	HTTPHandler() http.Handler
	Publish(topic string, data []byte) error
	Close() error
}
