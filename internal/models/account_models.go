package models

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/trsv-dev/vps-dashboard/internal/errs"
)

const (
	// DefaultDays Срок действия учетной записи по умолчанию.
	DefaultDays = 30
	// MaxDays Максимальный срок действия (10 лет).
	MaxDays = 3650
	// MaxUsernameLen Длина колонки ssh_accounts.username (VARCHAR(32)).
	MaxUsernameLen = 32
)

// SSHAccount Модель SSH-пользователя.
type SSHAccount struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"-"`
	ExpiresOn    Date      `json:"expires_on"`
	IsActive     bool      `json:"is_active"`
	ActiveStatus bool      `json:"active_status"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateSSHAccountRequest Модель тела запроса на создание SSH-пользователя.
type CreateSSHAccountRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Days     *FlexInt `json:"days,omitempty"`
}

// Validate Валидация запроса. Возвращает итоговый срок действия в днях.
func (r CreateSSHAccountRequest) Validate() (int, error) {
	if len(r.Username) == 0 || len(r.Password) == 0 {
		return 0, errs.NewErrValidation("username", "необходимо указать имя пользователя и пароль")
	}

	if utf8.RuneCountInString(r.Username) > MaxUsernameLen {
		return 0, errs.NewErrValidation("username",
			fmt.Sprintf("имя пользователя не должно быть длиннее %d символов", MaxUsernameLen))
	}

	return resolveDays(r.Days)
}

// ProxyAccount Модель пользователя прокси (VMESS/VLESS/TROJAN).
type ProxyAccount struct {
	ID            int64     `json:"id"`
	Identifier    string    `json:"identifier"`
	Email         string    `json:"email"`
	Protocol      Protocol  `json:"protocol"`
	ExpiresOn     Date      `json:"expires_on"`
	IsActive      bool      `json:"is_active"`
	ActiveStatus  bool      `json:"active_status"`
	UploadBytes   int64     `json:"upload_bytes"`
	DownloadBytes int64     `json:"download_bytes"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateProxyAccountRequest Модель тела запроса на создание пользователя прокси.
type CreateProxyAccountRequest struct {
	Email    string   `json:"email"`
	Protocol Protocol `json:"protocol,omitempty"`
	Days     *FlexInt `json:"days,omitempty"`
}

// Validate Валидация запроса. Пустой протокол заменяется на DefaultProtocol.
// Возвращает итоговые протокол и срок действия в днях.
func (r CreateProxyAccountRequest) Validate() (Protocol, int, error) {
	if len(r.Email) == 0 {
		return "", 0, errs.NewErrValidation("email", "необходимо указать email")
	}

	protocol := r.Protocol
	if protocol == "" {
		protocol = DefaultProtocol
	}

	if !protocol.IsValid() {
		return "", 0, NewErrInvalidProtocol()
	}

	days, err := resolveDays(r.Days)
	if err != nil {
		return "", 0, err
	}

	return protocol, days, nil
}

// NewErrInvalidProtocol Ошибка валидации для неизвестного протокола.
func NewErrInvalidProtocol() *errs.ErrValidation {
	return errs.NewErrValidation("protocol", "недопустимый протокол. Используйте: vmess, vless или trojan")
}

// ProxyConfig Конфигурация для клиента прокси.
// Набор заполненных полей зависит от протокола.
type ProxyConfig struct {
	Protocol Protocol `json:"protocol"`
	ID       string   `json:"id,omitempty"`
	Password string   `json:"password,omitempty"`
	Address  string   `json:"address"`
	Port     int      `json:"port"`
	Network  string   `json:"network,omitempty"`
	Path     string   `json:"path,omitempty"`
	TLS      string   `json:"tls,omitempty"`
	SNI      string   `json:"sni,omitempty"`
}

// ProvisionedProxyAccount Созданный пользователь прокси вместе с клиентской конфигурацией.
type ProvisionedProxyAccount struct {
	Account *ProxyAccount
	Config  ProxyConfig
	Link    string
}

// SSHAccountStats Сводка по SSH-пользователям.
type SSHAccountStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Expired int64 `json:"expired"`
}

// ProtocolCounts Количество пользователей прокси по протоколам.
type ProtocolCounts struct {
	VMess  int64 `json:"vmess"`
	VLESS  int64 `json:"vless"`
	Trojan int64 `json:"trojan"`
}

// Bandwidth Суммарный трафик в байтах.
type Bandwidth struct {
	Upload   int64 `json:"upload"`
	Download int64 `json:"download"`
	Total    int64 `json:"total"`
}

// ProxyAccountStats Сводка по пользователям прокси.
type ProxyAccountStats struct {
	Total     int64          `json:"total"`
	Active    int64          `json:"active"`
	Protocols ProtocolCounts `json:"protocols"`
	Bandwidth Bandwidth      `json:"bandwidth"`
}

// ProxyAccountList Список пользователей прокси со сводкой.
type ProxyAccountList struct {
	Users      []*ProxyAccount   `json:"users"`
	Statistics ProxyAccountStats `json:"statistics"`
}

// resolveDays Срок действия из запроса: по умолчанию DefaultDays, допустимо от 1 до MaxDays.
func resolveDays(days *FlexInt) (int, error) {
	if days == nil {
		return DefaultDays, nil
	}

	if *days < 1 || *days > MaxDays {
		return 0, errs.NewErrValidation("days", fmt.Sprintf("срок действия должен быть от 1 до %d дней", MaxDays))
	}

	return int(*days), nil
}
