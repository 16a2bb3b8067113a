package middleware

import (
	"os"
	"testing"

	"github.com/trsv-dev/vps-dashboard/internal/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error", "stderr")
	os.Exit(m.Run())
}
