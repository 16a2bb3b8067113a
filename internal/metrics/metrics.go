// Package metrics Метрики Prometheus для дашборда.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vps_dashboard"

var (
	// Учетные записи.
	AccountsProvisionedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "accounts",
		Name:      "provisioned_total",
		Help:      "Количество созданных учетных записей.",
	}, []string{"kind", "protocol"}) // kind: "ssh" или "proxy"
	AccountsRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "accounts",
		Name:      "rejected_total",
		Help:      "Количество отклоненных запросов на создание учетной записи.",
	}, []string{"kind", "reason"}) // reason: "validation", "conflict", "store"

	// Состояние сервера по последнему снимку.
	ServerCPUUsage = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "server",
		Name:      "cpu_usage_percent",
		Help:      "Загрузка CPU из последнего снимка.",
	})
	ServerResourceMegabytes = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "server",
		Name:      "resource_megabytes",
		Help:      "Использование RAM и диска из последнего снимка, МБ.",
	}, []string{"resource", "kind"}) // resource: "ram"/"disk", kind: "used"/"total"
	SnapshotsRecordedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "server",
		Name:      "snapshots_recorded_total",
		Help:      "Количество принятых снимков состояния сервера.",
	})

	// Службы VPS.
	ServiceUp = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "up",
		Help:      "Доступна ли служба (1) или нет (0).",
	}, []string{"service"})

	// HTTP.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Количество обработанных HTTP-запросов.",
	}, []string{"method", "route", "code"})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Время обработки HTTP-запросов.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(
		AccountsProvisionedTotal,
		AccountsRejectedTotal,

		ServerCPUUsage,
		ServerResourceMegabytes,
		SnapshotsRecordedTotal,

		ServiceUp,

		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}

// Handler Обработчик для /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SetServerUsage Обновляет метрики состояния сервера.
func SetServerUsage(cpu float64, ramUsed, ramTotal, diskUsed, diskTotal int64) {
	ServerCPUUsage.Set(cpu)
	ServerResourceMegabytes.WithLabelValues("ram", "used").Set(float64(ramUsed))
	ServerResourceMegabytes.WithLabelValues("ram", "total").Set(float64(ramTotal))
	ServerResourceMegabytes.WithLabelValues("disk", "used").Set(float64(diskUsed))
	ServerResourceMegabytes.WithLabelValues("disk", "total").Set(float64(diskTotal))
}

// SetServiceUp Обновляет метрику доступности службы.
func SetServiceUp(service string, up bool) {
	value := 0.0
	if up {
		value = 1
	}
	ServiceUp.WithLabelValues(service).Set(value)
}

// ObserveHTTPRequest Учитывает обработанный HTTP-запрос.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
