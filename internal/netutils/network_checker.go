package netutils

import (
	"context"
	"net"
	"time"

	"github.com/prometheus-community/pro-bing"
)

const DefaultHostTimeout = 2 * time.Second

const defaultPingCount = 3

// NetworkChecker Реализация проверки доступности.
type NetworkChecker struct {
	privileged bool
	count      int
}

// NewNetworkChecker Конструктор. privileged включает raw ICMP-сокеты.
func NewNetworkChecker(privileged bool) *NetworkChecker {
	return &NetworkChecker{privileged: privileged, count: defaultPingCount}
}

// CheckTCP Метод пытается установить TCP-соединение с адресом и портом в пределах
// заданного таймаута. Если соединение успешно установлено — хост считается
// доступным. Если timeout <= 0 - используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckTCP(ctx context.Context, address string, port string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}

	dialer := net.Dialer{
		Timeout: timeout,
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, port))
	if err != nil {
		return false
	}

	_ = conn.Close()

	return true
}

// CheckICMP Метод отправляет ICMP-запросы на указанный адрес и ожидает ответ
// в пределах заданного таймаута. Успешный ответ означает, что хост
// доступен на сетевом уровне. Если timeout <= 0 - используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckICMP(ctx context.Context, address string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}

	pinger, err := probing.NewPinger(address)
	if err != nil {
		return false
	}

	// raw-сокет требует CAP_NET_RAW, без него pro-bing работает через udp-сокет
	pinger.SetPrivileged(nc.privileged)

	pinger.Count = nc.count
	pinger.Timeout = timeout

	pingerDone := make(chan bool, 1)

	go func() {
		defer close(pingerDone)

		pingerErr := pinger.Run()
		if pingerErr != nil {
			pingerDone <- false
			return
		}

		pingerDone <- pinger.Statistics().PacketsRecv > 0
	}()

	select {
	case <-ctx.Done():
		pinger.Stop()
		return false
	case ok := <-pingerDone:
		return ok
	}
}
