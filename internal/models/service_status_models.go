package models

import (
	"net"
	"time"
)

type Status string

const (
	StatusRunning Status = "running"
	StatusStopped Status = "stopped"
	StatusUnknown Status = "unknown"
)

// IsValid Валидация статуса.
func (s Status) IsValid() bool {
	switch s {
	case StatusRunning, StatusStopped, StatusUnknown:
		return true
	default:
		return false
	}
}

// String Стрингер для Status.
func (s Status) String() string {
	return string(s)
}

// ServiceStatus Модель статуса службы VPS (ssh, nginx, xray, database).
type ServiceStatus struct {
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Status    Status    `json:"status"`
	CheckedAt time.Time `json:"checked_at,omitempty"`
}

// ProbeKind Способ проверки службы.
type ProbeKind string

const (
	ProbeTCP  ProbeKind = "tcp"
	ProbeICMP ProbeKind = "icmp"
	ProbeDB   ProbeKind = "db"
)

// IsValid Валидация способа проверки.
func (k ProbeKind) IsValid() bool {
	switch k {
	case ProbeTCP, ProbeICMP, ProbeDB:
		return true
	default:
		return false
	}
}

// ServiceProbe Описание проверяемой службы VPS.
// Для db адрес и порт не используются, проверяется пул соединений хранилища.
type ServiceProbe struct {
	Name    string    `json:"name" yaml:"name"`
	Kind    ProbeKind `json:"kind" yaml:"kind"`
	Address string    `json:"address,omitempty" yaml:"address"`
	Port    string    `json:"port,omitempty" yaml:"port"`
}

// Target Адрес цели проверки для логов и ответа API.
func (p ServiceProbe) Target() string {
	switch p.Kind {
	case ProbeTCP:
		return net.JoinHostPort(p.Address, p.Port)
	case ProbeICMP:
		return p.Address
	default:
		return ""
	}
}
