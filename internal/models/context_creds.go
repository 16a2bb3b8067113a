package models

import (
	"context"

	"github.com/trsv-dev/vps-dashboard/internal/contextkeys"
)

// ContextCredentials Данные администратора из r.Context().
type ContextCredentials struct {
	Login  string
	UserID int64
}

// GetContextCreds Вытаскивает данные из контекста и возвращает структуру.
func GetContextCreds(ctx context.Context) *ContextCredentials {
	creds := &ContextCredentials{}

	if v := ctx.Value(contextkeys.Login); v != nil {
		if login, ok := v.(string); ok {
			creds.Login = login
		}
	}

	if v := ctx.Value(contextkeys.ID); v != nil {
		if userID, ok := v.(int64); ok {
			creds.UserID = userID
		}
	}

	return creds
}
