package broadcast

import (
	"errors"
	"net/http"

	"github.com/trsv-dev/vps-dashboard/internal/auth"
)

// OverviewTopic Поток со сводкой дашборда.
const OverviewTopic = "overview"

// TopicResolver Определяет по запросу, на какой топик подписывается клиент.
// Ошибка означает, что подписка запрещена.
type TopicResolver func(r *http.Request) (string, error)

// MakeJWTTopicResolver возвращает resolver, проверяющий сессию администратора
// (cookie "JWT" или заголовок Authorization) и параметр stream.
func MakeJWTTopicResolver(JWTSecretKey string, tokenBuilder auth.TokenBuilder) TopicResolver {
	return func(r *http.Request) (string, error) {
		token, err := auth.TokenFromRequest(r)
		if err != nil {
			return "", err
		}

		claims, err := tokenBuilder.GetClaims(token, JWTSecretKey)
		if err != nil {
			return "", err
		}
		if claims.ID <= 0 {
			return "", errors.New("неверный id пользователя")
		}

		stream := r.URL.Query().Get("stream")
		if stream == "" {
			return "", errors.New("параметр запроса stream обязателен")
		}

		// дашборд однопользовательский, поток общий для всех администраторов
		if stream != OverviewTopic {
			return "", errors.New("неизвестный тип потока")
		}

		return OverviewTopic, nil
	}
}
