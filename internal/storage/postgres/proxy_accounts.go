package postgres

import (
	"context"
	"fmt"

	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/models"
)

const (
	addProxyAccountQuery = `INSERT INTO proxy_accounts (identifier, email, protocol, expires_on)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, is_active, upload_bytes, download_bytes, created_at`

	listProxyAccountsQuery = `SELECT id, identifier, email, protocol, expires_on, is_active,
			  (is_active AND expires_on >= $2) AS active_status,
			  upload_bytes, download_bytes, created_at
			  FROM proxy_accounts
			  WHERE ($1::text = '' OR protocol = $1)
			  ORDER BY created_at DESC, id DESC`

	proxyAccountStatsQuery = `SELECT COUNT(*),
			  COUNT(*) FILTER (WHERE is_active AND expires_on >= $1),
			  COUNT(*) FILTER (WHERE protocol = 'vmess'),
			  COUNT(*) FILTER (WHERE protocol = 'vless'),
			  COUNT(*) FILTER (WHERE protocol = 'trojan'),
			  COALESCE(SUM(upload_bytes), 0)::BIGINT,
			  COALESCE(SUM(download_bytes), 0)::BIGINT
			  FROM proxy_accounts`
)

// AddProxyAccount Добавление пользователя прокси.
func (pg *PgStorage) AddProxyAccount(ctx context.Context, account models.ProxyAccount) (*models.ProxyAccount, error) {
	err := pg.DB.QueryRowContext(ctx, addProxyAccountQuery,
		account.Identifier, account.Email, string(account.Protocol), account.ExpiresOn).
		Scan(&account.ID, &account.IsActive, &account.UploadBytes, &account.DownloadBytes, &account.CreatedAt)
	if err != nil {
		logger.Log.Error("Ошибка при добавлении пользователя прокси",
			logger.String("protocol", account.Protocol.String()), logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при добавлении пользователя прокси: %w", err)
	}

	return &account, nil
}

// ListProxyAccounts Пользователи прокси, новые первыми. Пустой protocol - без фильтра.
func (pg *PgStorage) ListProxyAccounts(ctx context.Context, protocol models.Protocol, today models.Date) ([]*models.ProxyAccount, error) {
	rows, err := pg.DB.QueryContext(ctx, listProxyAccountsQuery, string(protocol), today)
	if err != nil {
		logger.Log.Error("Ошибка при получении списка пользователей прокси", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при получении списка пользователей прокси: %w", err)
	}
	defer rows.Close()

	accounts := make([]*models.ProxyAccount, 0)

	for rows.Next() {
		var (
			a        models.ProxyAccount
			protocol string
		)

		err = rows.Scan(&a.ID, &a.Identifier, &a.Email, &protocol, &a.ExpiresOn, &a.IsActive,
			&a.ActiveStatus, &a.UploadBytes, &a.DownloadBytes, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения пользователя прокси: %w", err)
		}

		a.Protocol = models.Protocol(protocol)
		accounts = append(accounts, &a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка перебора пользователей прокси: %w", err)
	}

	return accounts, nil
}

// ProxyAccountStats Сводка по всем пользователям прокси на дату today.
func (pg *PgStorage) ProxyAccountStats(ctx context.Context, today models.Date) (*models.ProxyAccountStats, error) {
	var stats models.ProxyAccountStats

	err := pg.DB.QueryRowContext(ctx, proxyAccountStatsQuery, today).Scan(
		&stats.Total,
		&stats.Active,
		&stats.Protocols.VMess,
		&stats.Protocols.VLESS,
		&stats.Protocols.Trojan,
		&stats.Bandwidth.Upload,
		&stats.Bandwidth.Download,
	)
	if err != nil {
		logger.Log.Error("Ошибка при подсчете пользователей прокси", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при подсчете пользователей прокси: %w", err)
	}

	stats.Bandwidth.Total = stats.Bandwidth.Upload + stats.Bandwidth.Download

	return &stats, nil
}
