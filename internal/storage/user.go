package storage

import (
	"context"

	"github.com/trsv-dev/vps-dashboard/internal/models"
)

// UserStorage Интерфейс для администраторов дашборда.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, user *models.User) (*models.User, error)
}
