package models

// Protocol Протокол прокси (Xray).
type Protocol string

const (
	ProtocolVMess  Protocol = "vmess"
	ProtocolVLESS  Protocol = "vless"
	ProtocolTrojan Protocol = "trojan"
)

// DefaultProtocol Протокол, если клиент его не указал.
const DefaultProtocol = ProtocolVLESS

// Protocols Все поддерживаемые протоколы.
var Protocols = []Protocol{ProtocolVMess, ProtocolVLESS, ProtocolTrojan}

// IsValid Валидация протокола.
func (p Protocol) IsValid() bool {
	switch p {
	case ProtocolVMess, ProtocolVLESS, ProtocolTrojan:
		return true
	default:
		return false
	}
}

// String Стрингер для Protocol.
func (p Protocol) String() string {
	return string(p)
}
