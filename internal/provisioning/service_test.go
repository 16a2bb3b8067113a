package provisioning

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/vps-dashboard/internal/errs"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/metrics"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	"github.com/trsv-dev/vps-dashboard/internal/storage/mocks"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// фиксированное "сейчас": 18 октября 2026
var fixedNow = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

func init() {
	logger.InitLogger("error", "stdout")
}

func newTestService(st *mocks.MockStorage) *Service {
	return NewService(st, Settings{
		Location:      time.UTC,
		Now:           func() time.Time { return fixedNow },
		NewIdentifier: func() (string, error) { return "8c7b2f7e-4f5d-4a1b-9c3e-2d1f0a9b8c7d", nil },
	})
}

func days(v int64) *models.FlexInt {
	f := models.FlexInt(v)
	return &f
}

// TestNewIdentifier Проверяет формат UUID v4 и уникальность.
func TestNewIdentifier(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id, err := NewIdentifier()
		require.NoError(t, err)
		require.Len(t, id, 36)
		assert.Regexp(t, uuidV4, id)

		_, dup := seen[id]
		assert.False(t, dup, "идентификатор повторился")
		seen[id] = struct{}{}
	}
}

// TestNewServiceDefaults Проверяет значения по умолчанию.
func TestNewServiceDefaults(t *testing.T) {
	s := NewService(nil, Settings{})

	assert.Equal(t, DefaultAddress, s.settings.Address)
	assert.Equal(t, DefaultPort, s.settings.Port)
	assert.NotNil(t, s.settings.Location)
	assert.NotNil(t, s.settings.Now)
	assert.NotNil(t, s.settings.NewIdentifier)
}

// TestCreateSSHAccount Проверяет создание SSH-пользователя.
func TestCreateSSHAccount(t *testing.T) {
	tests := []struct {
		name      string
		req       models.CreateSSHAccountRequest
		mockSetup func(st *mocks.MockStorage)
		wantErr   func(t *testing.T, err error)
		wantDate  string
	}{
		{
			name: "срок по умолчанию 30 дней",
			req:  models.CreateSSHAccountRequest{Username: "alice", Password: "pw123456"},
			mockSetup: func(st *mocks.MockStorage) {
				st.EXPECT().
					AddSSHAccount(gomock.Any(), models.SSHAccount{
						Username:  "alice",
						Password:  "pw123456",
						ExpiresOn: models.NewDate(2026, time.November, 17),
					}).
					DoAndReturn(func(_ context.Context, a models.SSHAccount) (*models.SSHAccount, error) {
						a.ID, a.IsActive, a.Password = 1, true, ""
						return &a, nil
					})
			},
			wantDate: "2026-11-17",
		},
		{
			name: "7 дней",
			req:  models.CreateSSHAccountRequest{Username: "alice", Password: "pw123456", Days: days(7)},
			mockSetup: func(st *mocks.MockStorage) {
				st.EXPECT().AddSSHAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a models.SSHAccount) (*models.SSHAccount, error) {
						a.ID = 2
						return &a, nil
					})
			},
			wantDate: "2026-10-25",
		},
		{
			name:      "пустой пароль",
			req:       models.CreateSSHAccountRequest{Username: "alice"},
			mockSetup: func(st *mocks.MockStorage) {},
			wantErr: func(t *testing.T, err error) {
				var validationErr *errs.ErrValidation
				assert.True(t, errors.As(err, &validationErr))
			},
		},
		{
			name: "имя уже занято",
			req:  models.CreateSSHAccountRequest{Username: "alice", Password: "pw123456"},
			mockSetup: func(st *mocks.MockStorage) {
				st.EXPECT().AddSSHAccount(gomock.Any(), gomock.Any()).
					Return(nil, errs.NewErrUsernameIsTaken("alice", &pgconn.PgError{Code: "23505"}))
			},
			wantErr: func(t *testing.T, err error) {
				var taken *errs.ErrUsernameIsTaken
				assert.True(t, errors.As(err, &taken))
			},
		},
		{
			name: "ошибка хранилища",
			req:  models.CreateSSHAccountRequest{Username: "alice", Password: "pw123456"},
			mockSetup: func(st *mocks.MockStorage) {
				st.EXPECT().AddSSHAccount(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: func(t *testing.T, err error) {
				var taken *errs.ErrUsernameIsTaken
				var validationErr *errs.ErrValidation
				assert.False(t, errors.As(err, &taken))
				assert.False(t, errors.As(err, &validationErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			st := mocks.NewMockStorage(ctrl)
			tt.mockSetup(st)

			account, err := newTestService(st).CreateSSHAccount(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, account)
				tt.wantErr(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, account.ExpiresOn.String())
		})
	}
}

// TestCreateSSHAccountCountsProvisioned Проверяет счетчик созданных учетных записей.
func TestCreateSSHAccountCountsProvisioned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	st.EXPECT().AddSSHAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.SSHAccount) (*models.SSHAccount, error) { return &a, nil })

	before := testutil.ToFloat64(metrics.AccountsProvisionedTotal.WithLabelValues("ssh", ""))

	_, err := newTestService(st).CreateSSHAccount(context.Background(),
		models.CreateSSHAccountRequest{Username: "carol", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.AccountsProvisionedTotal.WithLabelValues("ssh", "")))
}

// TestCreateProxyAccount Проверяет создание пользователя прокси и конфигурацию.
func TestCreateProxyAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	st.EXPECT().
		AddProxyAccount(gomock.Any(), models.ProxyAccount{
			Identifier: "8c7b2f7e-4f5d-4a1b-9c3e-2d1f0a9b8c7d",
			Email:      "alice@example.com",
			Protocol:   models.ProtocolTrojan,
			ExpiresOn:  models.NewDate(2026, time.October, 28),
		}).
		DoAndReturn(func(_ context.Context, a models.ProxyAccount) (*models.ProxyAccount, error) {
			a.ID, a.IsActive = 5, true
			return &a, nil
		})

	result, err := newTestService(st).CreateProxyAccount(context.Background(), models.CreateProxyAccountRequest{
		Email:    "alice@example.com",
		Protocol: models.ProtocolTrojan,
		Days:     days(10),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Account.ID)
	assert.Equal(t, models.ProtocolTrojan, result.Config.Protocol)
	assert.Equal(t, "8c7b2f7e-4f5d-4a1b-9c3e-2d1f0a9b8c7d", result.Config.Password)
	assert.Equal(t, DefaultAddress, result.Config.SNI)
	assert.Equal(t, 443, result.Config.Port)
	assert.Contains(t, result.Link, "trojan://8c7b2f7e-4f5d-4a1b-9c3e-2d1f0a9b8c7d@your-vps-domain.com:443")
}

// TestCreateProxyAccountRealIdentifier Проверяет, что без подмены генерируется UUID v4.
func TestCreateProxyAccountRealIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	st.EXPECT().AddProxyAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.ProxyAccount) (*models.ProxyAccount, error) { return &a, nil })

	s := NewService(st, Settings{Address: "vpn.example.org", Port: 8443})

	result, err := s.CreateProxyAccount(context.Background(), models.CreateProxyAccountRequest{Email: "bob@example.com"})
	require.NoError(t, err)

	assert.Regexp(t, uuidV4, result.Account.Identifier)
	assert.Equal(t, models.ProtocolVLESS, result.Config.Protocol)
	assert.Equal(t, result.Account.Identifier, result.Config.ID)
	assert.Equal(t, "vpn.example.org", result.Config.Address)
	assert.Equal(t, 8443, result.Config.Port)
}

// TestCreateProxyAccountErrors Проверяет ошибки создания пользователя прокси.
func TestCreateProxyAccountErrors(t *testing.T) {
	t.Run("неизвестный протокол не доходит до хранилища", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStorage(ctrl)

		_, err := newTestService(st).CreateProxyAccount(context.Background(),
			models.CreateProxyAccountRequest{Email: "a@example.com", Protocol: "shadowsocks"})

		var validationErr *errs.ErrValidation
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "protocol", validationErr.Field)
	})

	t.Run("ошибка генерации идентификатора", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := NewService(mocks.NewMockStorage(ctrl), Settings{
			NewIdentifier: func() (string, error) { return "", errors.New("entropy") },
		})

		_, err := s.CreateProxyAccount(context.Background(), models.CreateProxyAccountRequest{Email: "a@example.com"})
		assert.Error(t, err)
	})

	t.Run("ошибка хранилища", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStorage(ctrl)
		st.EXPECT().AddProxyAccount(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := newTestService(st).CreateProxyAccount(context.Background(),
			models.CreateProxyAccountRequest{Email: "a@example.com"})
		assert.ErrorContains(t, err, "boom")
	})
}

// TestListProxyAccounts Проверяет список пользователей прокси со сводкой.
func TestListProxyAccounts(t *testing.T) {
	today := models.NewDate(2026, time.October, 18)

	t.Run("фильтр по протоколу", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStorage(ctrl)
		st.EXPECT().ListProxyAccounts(gomock.Any(), models.ProtocolVMess, today).
			Return([]*models.ProxyAccount{
				{ID: 2, Protocol: models.ProtocolVMess, ActiveStatus: true, UploadBytes: 10, DownloadBytes: 20},
				{ID: 1, Protocol: models.ProtocolVMess, UploadBytes: 5},
			}, nil)

		list, err := newTestService(st).ListProxyAccounts(context.Background(), models.ProtocolVMess)
		require.NoError(t, err)

		assert.Len(t, list.Users, 2)
		assert.Equal(t, int64(2), list.Statistics.Total)
		assert.Equal(t, int64(1), list.Statistics.Active)
		assert.Equal(t, int64(2), list.Statistics.Protocols.VMess)
		assert.Equal(t, models.Bandwidth{Upload: 15, Download: 20, Total: 35}, list.Statistics.Bandwidth)
	})

	t.Run("без фильтра", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStorage(ctrl)
		st.EXPECT().ListProxyAccounts(gomock.Any(), models.Protocol(""), today).Return([]*models.ProxyAccount{}, nil)

		list, err := newTestService(st).ListProxyAccounts(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, list.Users)
		assert.Equal(t, models.ProxyAccountStats{}, list.Statistics)
	})

	t.Run("невалидный протокол", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, err := newTestService(mocks.NewMockStorage(ctrl)).ListProxyAccounts(context.Background(), "wireguard")

		var validationErr *errs.ErrValidation
		assert.True(t, errors.As(err, &validationErr))
	})
}

// TestListSSHAccounts Проверяет передачу текущей даты в хранилище.
func TestListSSHAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	st.EXPECT().ListSSHAccounts(gomock.Any(), models.NewDate(2026, time.October, 18)).
		Return([]*models.SSHAccount{{ID: 1, Username: "alice"}}, nil)

	accounts, err := newTestService(st).ListSSHAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "alice", accounts[0].Username)

	st.EXPECT().ListSSHAccounts(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	_, err = newTestService(st).ListSSHAccounts(context.Background())
	assert.Error(t, err)
}

// memoryStorage Хранилище в памяти с уникальностью имени, как у ограничения в БД.
type memoryStorage struct {
	*mocks.MockStorage
	ssh []models.SSHAccount
}

func (m *memoryStorage) AddSSHAccount(_ context.Context, a models.SSHAccount) (*models.SSHAccount, error) {
	for _, existing := range m.ssh {
		if existing.Username == a.Username {
			return nil, errs.NewErrUsernameIsTaken(a.Username, &pgconn.PgError{Code: "23505"})
		}
	}

	a.ID = int64(len(m.ssh) + 1)
	a.IsActive = true
	a.Password = ""
	m.ssh = append(m.ssh, a)

	return &a, nil
}

func (m *memoryStorage) ListSSHAccounts(_ context.Context, today models.Date) ([]*models.SSHAccount, error) {
	result := make([]*models.SSHAccount, 0, len(m.ssh))
	for i := len(m.ssh) - 1; i >= 0; i-- {
		a := m.ssh[i]
		a.ActiveStatus = models.IsAccountActive(a.IsActive, a.ExpiresOn, today)
		result = append(result, &a)
	}

	return result, nil
}

// TestSSHAccountLifecycle Сценарий: создание, повторное создание, список.
func TestSSHAccountLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := &memoryStorage{MockStorage: mocks.NewMockStorage(ctrl)}
	s := NewService(st, Settings{Location: time.UTC, Now: func() time.Time { return fixedNow }})

	first, err := s.CreateSSHAccount(context.Background(),
		models.CreateSSHAccountRequest{Username: "alice", Password: "pw123456", Days: days(7)})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-25", first.ExpiresOn.String())

	_, err = s.CreateSSHAccount(context.Background(),
		models.CreateSSHAccountRequest{Username: "alice", Password: "other"})
	var taken *errs.ErrUsernameIsTaken
	require.True(t, errors.As(err, &taken), "повторное имя должно давать конфликт")

	accounts, err := s.ListSSHAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "alice", accounts[0].Username)
	assert.True(t, accounts[0].ActiveStatus)

	// через 8 дней учетная запись истекла
	later := NewService(st, Settings{Location: time.UTC, Now: func() time.Time { return fixedNow.AddDate(0, 0, 8) }})
	accounts, err = later.ListSSHAccounts(context.Background())
	require.NoError(t, err)
	assert.False(t, accounts[0].ActiveStatus)
}
