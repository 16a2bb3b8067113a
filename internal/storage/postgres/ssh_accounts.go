package postgres

import (
	"context"
	"fmt"

	"github.com/trsv-dev/vps-dashboard/internal/errs"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	"github.com/trsv-dev/vps-dashboard/internal/storage/postgres/utils"
)

const (
	addSSHAccountQuery = `INSERT INTO ssh_accounts (username, password, expires_on)
			  VALUES ($1, $2, $3)
			  RETURNING id, is_active, created_at`

	listSSHAccountsQuery = `SELECT id, username, expires_on, is_active,
			  (is_active AND expires_on >= $1) AS active_status, created_at
			  FROM ssh_accounts
			  ORDER BY created_at DESC, id DESC`

	sshAccountStatsQuery = `SELECT COUNT(*),
			  COUNT(*) FILTER (WHERE is_active AND expires_on >= $1),
			  COUNT(*) FILTER (WHERE expires_on < $1)
			  FROM ssh_accounts`
)

// AddSSHAccount Добавление SSH-пользователя. Пароль сохраняется зашифрованным.
// Дубликат имени определяется ограничением уникальности в БД.
func (pg *PgStorage) AddSSHAccount(ctx context.Context, account models.SSHAccount) (*models.SSHAccount, error) {
	encrypted, err := utils.EncryptAES([]byte(account.Password), pg.AESKey)
	if err != nil {
		logger.Log.Error("Не удалось зашифровать пароль SSH-пользователя", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка шифрования пароля: %w", err)
	}

	err = pg.DB.QueryRowContext(ctx, addSSHAccountQuery, account.Username, encrypted, account.ExpiresOn).
		Scan(&account.ID, &account.IsActive, &account.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errs.NewErrUsernameIsTaken(account.Username, err)
		}

		logger.Log.Error("Ошибка при добавлении SSH-пользователя", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при добавлении SSH-пользователя: %w", err)
	}

	account.Password = ""

	return &account, nil
}

// ListSSHAccounts Все SSH-пользователи, новые первыми.
func (pg *PgStorage) ListSSHAccounts(ctx context.Context, today models.Date) ([]*models.SSHAccount, error) {
	rows, err := pg.DB.QueryContext(ctx, listSSHAccountsQuery, today)
	if err != nil {
		logger.Log.Error("Ошибка при получении списка SSH-пользователей", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при получении списка SSH-пользователей: %w", err)
	}
	defer rows.Close()

	accounts := make([]*models.SSHAccount, 0)

	for rows.Next() {
		var a models.SSHAccount
		if err = rows.Scan(&a.ID, &a.Username, &a.ExpiresOn, &a.IsActive, &a.ActiveStatus, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка чтения SSH-пользователя: %w", err)
		}
		accounts = append(accounts, &a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка перебора SSH-пользователей: %w", err)
	}

	return accounts, nil
}

// SSHAccountStats Количество SSH-пользователей: всего, активных и истекших на дату today.
func (pg *PgStorage) SSHAccountStats(ctx context.Context, today models.Date) (*models.SSHAccountStats, error) {
	var stats models.SSHAccountStats

	err := pg.DB.QueryRowContext(ctx, sshAccountStatsQuery, today).
		Scan(&stats.Total, &stats.Active, &stats.Expired)
	if err != nil {
		logger.Log.Error("Ошибка при подсчете SSH-пользователей", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при подсчете SSH-пользователей: %w", err)
	}

	return &stats, nil
}
