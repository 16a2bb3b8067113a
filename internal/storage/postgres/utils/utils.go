package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/migrations"
)

// AESKeySize Длина ключа AES-256 в байтах.
const AESKeySize = 32

// ApplyMigrations Применяет все миграции из migrations.Files к БД по DatabaseURI.
func ApplyMigrations(DatabaseURI string) error {
	source, err := iofs.New(migrations.Files, ".")
	if err != nil {
		logger.Log.Error("Ошибка чтения встроенных миграций", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка чтения встроенных миграций: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, DatabaseURI)
	if err != nil {
		logger.Log.Error("Ошибка создания мигратора", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка создания мигратора: %w", err)
	}

	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Log.Warn("Ошибка закрытия источника миграций", logger.String("err", srcErr.Error()))
		}
		if dbErr != nil {
			logger.Log.Warn("Ошибка закрытия соединения мигратора", logger.String("err", dbErr.Error()))
		}
	}()

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Log.Info("Нет новых миграций")
			return nil
		}

		logger.Log.Error("Ошибка применения миграций", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}

	logger.Log.Info("Миграции применены")
	return nil
}

// ValidateAESKey Проверяет, что ключ подходит для AES-256.
func ValidateAESKey(key []byte) error {
	if len(key) != AESKeySize {
		return fmt.Errorf("длина AES-ключа %d байт, требуется %d", len(key), AESKeySize)
	}

	return nil
}

// EncryptAES Шифрует данные AES-256-GCM, nonce кладется перед шифртекстом. Результат в base64.
func EncryptAES(plaintext, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("генерация nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptAES Расшифровывает результат EncryptAES.
func DecryptAES(encryptedText string, key []byte) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encryptedText)
	if err != nil {
		return "", fmt.Errorf("декодирование base64: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(data) < gcm.NonceSize() {
		return "", errors.New("шифртекст короче nonce")
	}

	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("расшифровка не удалась: %w", err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("создание AES блока: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("создание GCM режима: %w", err)
	}

	return gcm, nil
}
