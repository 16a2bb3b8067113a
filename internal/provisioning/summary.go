package provisioning

import "github.com/trsv-dev/vps-dashboard/internal/models"

// SummarizeProxyAccounts Сводка по переданному списку пользователей прокси.
// Активность берется из вычисленного при чтении ActiveStatus.
func SummarizeProxyAccounts(accounts []*models.ProxyAccount) models.ProxyAccountStats {
	var stats models.ProxyAccountStats

	for _, a := range accounts {
		stats.Total++
		if a.ActiveStatus {
			stats.Active++
		}

		switch a.Protocol {
		case models.ProtocolVMess:
			stats.Protocols.VMess++
		case models.ProtocolVLESS:
			stats.Protocols.VLESS++
		case models.ProtocolTrojan:
			stats.Protocols.Trojan++
		}

		stats.Bandwidth.Upload += a.UploadBytes
		stats.Bandwidth.Download += a.DownloadBytes
	}

	stats.Bandwidth.Total = stats.Bandwidth.Upload + stats.Bandwidth.Download

	return stats
}
