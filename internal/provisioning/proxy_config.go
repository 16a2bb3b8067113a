package provisioning

import (
	"encoding/base64"
	"encoding/json"
	"net"
	"net/url"
	"strconv"

	"github.com/trsv-dev/vps-dashboard/internal/models"
)

// protocolProfile Построение конфигурации и ссылки для одного протокола.
type protocolProfile struct {
	config func(identifier, address string, port int) models.ProxyConfig
	link   func(config models.ProxyConfig, label string) string
}

var profiles = map[models.Protocol]protocolProfile{
	models.ProtocolVLESS: {
		config: func(identifier, address string, port int) models.ProxyConfig {
			return models.ProxyConfig{
				Protocol: models.ProtocolVLESS,
				ID:       identifier,
				Address:  address,
				Port:     port,
				Network:  "ws",
				Path:     "/vless",
				TLS:      "tls",
			}
		},
		link: vlessLink,
	},
	models.ProtocolVMess: {
		config: func(identifier, address string, port int) models.ProxyConfig {
			return models.ProxyConfig{
				Protocol: models.ProtocolVMess,
				ID:       identifier,
				Address:  address,
				Port:     port,
				Network:  "ws",
				Path:     "/vmess",
				TLS:      "tls",
			}
		},
		link: vmessLink,
	},
	models.ProtocolTrojan: {
		config: func(identifier, address string, port int) models.ProxyConfig {
			return models.ProxyConfig{
				Protocol: models.ProtocolTrojan,
				Password: identifier,
				Address:  address,
				Port:     port,
				SNI:      address,
			}
		},
		link: trojanLink,
	},
}

// DeriveProxyConfig Клиентская конфигурация для протокола. Чистая функция.
func DeriveProxyConfig(protocol models.Protocol, identifier, address string, port int) (models.ProxyConfig, error) {
	profile, ok := profiles[protocol]
	if !ok {
		return models.ProxyConfig{}, models.NewErrInvalidProtocol()
	}

	return profile.config(identifier, address, port), nil
}

// ShareLink Ссылка для импорта конфигурации в клиент (v2rayN, Nekoray и т.п.).
// Для неизвестного протокола возвращает пустую строку.
func ShareLink(config models.ProxyConfig, label string) string {
	profile, ok := profiles[config.Protocol]
	if !ok {
		return ""
	}

	return profile.link(config, label)
}

func vlessLink(c models.ProxyConfig, label string) string {
	q := url.Values{}
	q.Set("encryption", "none")
	q.Set("security", c.TLS)
	q.Set("type", c.Network)
	q.Set("path", c.Path)
	q.Set("host", c.Address)
	q.Set("sni", c.Address)

	u := url.URL{
		Scheme:   "vless",
		User:     url.User(c.ID),
		Host:     net.JoinHostPort(c.Address, strconv.Itoa(c.Port)),
		RawQuery: q.Encode(),
		Fragment: label,
	}

	return u.String()
}

// vmessShare Формат JSON внутри ссылки vmess:// (версия 2).
type vmessShare struct {
	V    string `json:"v"`
	PS   string `json:"ps"`
	Add  string `json:"add"`
	Port string `json:"port"`
	ID   string `json:"id"`
	Aid  string `json:"aid"`
	Net  string `json:"net"`
	Type string `json:"type"`
	Host string `json:"host"`
	Path string `json:"path"`
	TLS  string `json:"tls"`
}

func vmessLink(c models.ProxyConfig, label string) string {
	payload, err := json.Marshal(vmessShare{
		V:    "2",
		PS:   label,
		Add:  c.Address,
		Port: strconv.Itoa(c.Port),
		ID:   c.ID,
		Aid:  "0",
		Net:  c.Network,
		Type: "none",
		Host: c.Address,
		Path: c.Path,
		TLS:  c.TLS,
	})
	if err != nil {
		return ""
	}

	return "vmess://" + base64.StdEncoding.EncodeToString(payload)
}

func trojanLink(c models.ProxyConfig, label string) string {
	q := url.Values{}
	q.Set("security", "tls")
	q.Set("sni", c.SNI)

	u := url.URL{
		Scheme:   "trojan",
		User:     url.User(c.Password),
		Host:     net.JoinHostPort(c.Address, strconv.Itoa(c.Port)),
		RawQuery: q.Encode(),
		Fragment: label,
	}

	return u.String()
}
