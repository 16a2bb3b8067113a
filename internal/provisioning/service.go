// Package provisioning Выдача SSH- и прокси-учетных записей: валидация, срок действия,
// идентификаторы и клиентские конфигурации.
package provisioning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trsv-dev/vps-dashboard/internal/errs"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/metrics"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	"github.com/trsv-dev/vps-dashboard/internal/storage"
)

//go:generate mockgen -destination=mocks/provisioner_mock.go -package=mocks . Provisioner

const (
	// DefaultAddress Адрес VPS в клиентских конфигурациях, если не задан.
	DefaultAddress = "your-vps-domain.com"
	// DefaultPort Порт прокси в клиентских конфигурациях, если не задан.
	DefaultPort = 443
)

// Provisioner Операции над учетными записями, доступные HTTP-обработчикам.
type Provisioner interface {
	CreateSSHAccount(ctx context.Context, req models.CreateSSHAccountRequest) (*models.SSHAccount, error)
	CreateProxyAccount(ctx context.Context, req models.CreateProxyAccountRequest) (*models.ProvisionedProxyAccount, error)
	ListSSHAccounts(ctx context.Context) ([]*models.SSHAccount, error)
	ListProxyAccounts(ctx context.Context, protocol models.Protocol) (*models.ProxyAccountList, error)
}

// Settings Настройки сервиса. Нулевые значения заменяются значениями по умолчанию.
type Settings struct {
	Address       string
	Port          int
	Location      *time.Location
	Now           func() time.Time
	NewIdentifier func() (string, error)
}

// Service Реализация Provisioner поверх хранилища.
type Service struct {
	storage  storage.AccountStorage
	settings Settings
}

// NewService Конструктор Service.
func NewService(storage storage.AccountStorage, settings Settings) *Service {
	if settings.Address == "" {
		settings.Address = DefaultAddress
	}
	if settings.Port == 0 {
		settings.Port = DefaultPort
	}
	if settings.Location == nil {
		settings.Location = time.Local
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}
	if settings.NewIdentifier == nil {
		settings.NewIdentifier = NewIdentifier
	}

	return &Service{
		storage:  storage,
		settings: settings,
	}
}

// NewIdentifier Случайный UUID версии 4 из криптостойкого источника.
func NewIdentifier() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("генерация идентификатора: %w", err)
	}

	return id.String(), nil
}

// today Текущая календарная дата в часовом поясе сервера.
func (s *Service) today() models.Date {
	return models.Today(s.settings.Now(), s.settings.Location)
}

// CreateSSHAccount Создание SSH-пользователя со сроком действия today + days.
func (s *Service) CreateSSHAccount(ctx context.Context, req models.CreateSSHAccountRequest) (*models.SSHAccount, error) {
	days, err := req.Validate()
	if err != nil {
		metrics.AccountsRejectedTotal.WithLabelValues("ssh", "validation").Inc()
		return nil, err
	}

	account := models.SSHAccount{
		Username:  req.Username,
		Password:  req.Password,
		ExpiresOn: s.today().AddDays(days),
	}

	created, err := s.storage.AddSSHAccount(ctx, account)
	if err != nil {
		var taken *errs.ErrUsernameIsTaken
		if errors.As(err, &taken) {
			metrics.AccountsRejectedTotal.WithLabelValues("ssh", "conflict").Inc()
			logger.Log.Warn("SSH-пользователь уже существует", logger.String("username", req.Username))
			return nil, err
		}

		metrics.AccountsRejectedTotal.WithLabelValues("ssh", "store").Inc()
		return nil, fmt.Errorf("создание SSH-пользователя: %w", err)
	}

	metrics.AccountsProvisionedTotal.WithLabelValues("ssh", "").Inc()
	logger.Log.Info("Создан SSH-пользователь",
		logger.String("username", created.Username),
		logger.String("expires_on", created.ExpiresOn.String()),
	)

	return created, nil
}

// CreateProxyAccount Создание пользователя прокси. Возвращает запись, клиентскую конфигурацию и ссылку для импорта.
func (s *Service) CreateProxyAccount(ctx context.Context, req models.CreateProxyAccountRequest) (*models.ProvisionedProxyAccount, error) {
	protocol, days, err := req.Validate()
	if err != nil {
		metrics.AccountsRejectedTotal.WithLabelValues("proxy", "validation").Inc()
		return nil, err
	}

	identifier, err := s.settings.NewIdentifier()
	if err != nil {
		logger.Log.Error("Не удалось сгенерировать идентификатор", logger.String("err", err.Error()))
		return nil, err
	}

	account := models.ProxyAccount{
		Identifier: identifier,
		Email:      req.Email,
		Protocol:   protocol,
		ExpiresOn:  s.today().AddDays(days),
	}

	created, err := s.storage.AddProxyAccount(ctx, account)
	if err != nil {
		metrics.AccountsRejectedTotal.WithLabelValues("proxy", "store").Inc()
		return nil, fmt.Errorf("создание пользователя прокси: %w", err)
	}

	config, err := DeriveProxyConfig(protocol, identifier, s.settings.Address, s.settings.Port)
	if err != nil {
		return nil, err
	}

	metrics.AccountsProvisionedTotal.WithLabelValues("proxy", protocol.String()).Inc()
	logger.Log.Info("Создан пользователь прокси",
		logger.String("protocol", protocol.String()),
		logger.String("email", created.Email),
		logger.String("expires_on", created.ExpiresOn.String()),
	)

	return &models.ProvisionedProxyAccount{
		Account: created,
		Config:  config,
		Link:    ShareLink(config, created.Email),
	}, nil
}

// ListSSHAccounts Все SSH-пользователи, новые первыми.
func (s *Service) ListSSHAccounts(ctx context.Context) ([]*models.SSHAccount, error) {
	accounts, err := s.storage.ListSSHAccounts(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("получение SSH-пользователей: %w", err)
	}

	return accounts, nil
}

// ListProxyAccounts Пользователи прокси (с фильтром по протоколу, если он задан) и сводка по ним.
func (s *Service) ListProxyAccounts(ctx context.Context, protocol models.Protocol) (*models.ProxyAccountList, error) {
	if protocol != "" && !protocol.IsValid() {
		return nil, models.NewErrInvalidProtocol()
	}

	accounts, err := s.storage.ListProxyAccounts(ctx, protocol, s.today())
	if err != nil {
		return nil, fmt.Errorf("получение пользователей прокси: %w", err)
	}

	return &models.ProxyAccountList{
		Users:      accounts,
		Statistics: SummarizeProxyAccounts(accounts),
	}, nil
}
