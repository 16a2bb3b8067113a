package models

import "time"

// значения, которые отдаются, пока агент не прислал ни одного снимка
const (
	defaultRAMTotalMB  = 1024
	defaultDiskTotalMB = 10240
	defaultUptime      = "0 days"
)

// ServerSnapshot Снимок использования ресурсов сервера. RAM и диск в мегабайтах.
type ServerSnapshot struct {
	ID         int64     `json:"id,omitempty"`
	CPUUsage   float64   `json:"cpu_usage"`
	RAMUsed    int64     `json:"ram_used"`
	RAMTotal   int64     `json:"ram_total"`
	DiskUsed   int64     `json:"disk_used"`
	DiskTotal  int64     `json:"disk_total"`
	Uptime     string    `json:"uptime"`
	RecordedAt time.Time `json:"recorded_at,omitempty"`
}

// DefaultSnapshot Снимок по умолчанию.
func DefaultSnapshot() ServerSnapshot {
	return ServerSnapshot{
		RAMTotal:  defaultRAMTotalMB,
		DiskTotal: defaultDiskTotalMB,
		Uptime:    defaultUptime,
	}
}

// RecordSnapshotRequest Модель тела запроса от агента сбора статистики.
// Числа принимаются как числами, так и строками.
type RecordSnapshotRequest struct {
	CPUUsage  FlexFloat `json:"cpu_usage"`
	RAMUsed   FlexInt   `json:"ram_used"`
	RAMTotal  FlexInt   `json:"ram_total"`
	DiskUsed  FlexInt   `json:"disk_used"`
	DiskTotal FlexInt   `json:"disk_total"`
	Uptime    string    `json:"uptime"`
}

// ToSnapshot Преобразование запроса в снимок.
func (r RecordSnapshotRequest) ToSnapshot() ServerSnapshot {
	return ServerSnapshot{
		CPUUsage:  float64(r.CPUUsage),
		RAMUsed:   int64(r.RAMUsed),
		RAMTotal:  int64(r.RAMTotal),
		DiskUsed:  int64(r.DiskUsed),
		DiskTotal: int64(r.DiskTotal),
		Uptime:    r.Uptime,
	}
}

// ResourceUsage Использование ресурса с процентом заполнения.
type ResourceUsage struct {
	Used       int64 `json:"used"`
	Total      int64 `json:"total"`
	Percentage int64 `json:"percentage"`
}

// ServerOverview Состояние сервера по последнему снимку.
type ServerOverview struct {
	CPU        float64       `json:"cpu"`
	RAM        ResourceUsage `json:"ram"`
	Disk       ResourceUsage `json:"disk"`
	Uptime     string        `json:"uptime"`
	RecordedAt *time.Time    `json:"recorded_at,omitempty"`
}

// UsersOverview Сводка по учетным записям.
type UsersOverview struct {
	SSH   SSHAccountStats   `json:"ssh"`
	Proxy ProxyAccountStats `json:"proxy"`
}

// Overview Общая картина для дашборда.
type Overview struct {
	Server   ServerOverview    `json:"server"`
	Users    UsersOverview     `json:"users"`
	Services map[string]Status `json:"services"`
}
