package storage

import (
	"context"

	"github.com/trsv-dev/vps-dashboard/internal/models"
)

// SSHAccountStorage Интерфейс для SSH-пользователей.
type SSHAccountStorage interface {
	// AddSSHAccount Вставляет пользователя. Дубликат имени возвращается как *errs.ErrUsernameIsTaken.
	AddSSHAccount(ctx context.Context, account models.SSHAccount) (*models.SSHAccount, error)
	ListSSHAccounts(ctx context.Context, today models.Date) ([]*models.SSHAccount, error)
	SSHAccountStats(ctx context.Context, today models.Date) (*models.SSHAccountStats, error)
}

// ProxyAccountStorage Интерфейс для пользователей прокси.
type ProxyAccountStorage interface {
	AddProxyAccount(ctx context.Context, account models.ProxyAccount) (*models.ProxyAccount, error)
	// ListProxyAccounts Пустой protocol - все протоколы.
	ListProxyAccounts(ctx context.Context, protocol models.Protocol, today models.Date) ([]*models.ProxyAccount, error)
	ProxyAccountStats(ctx context.Context, today models.Date) (*models.ProxyAccountStats, error)
}

// AccountStorage Минимальный контракт хранилища для сервиса выдачи учетных записей.
type AccountStorage interface {
	SSHAccountStorage
	ProxyAccountStorage
}
