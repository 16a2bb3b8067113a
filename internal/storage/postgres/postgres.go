package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/storage/postgres/utils"
)

// uniqueViolation Код ошибки PostgreSQL при нарушении ограничения уникальности.
const uniqueViolation = "23505"

// PgStorage Структура хранилища в PostgreSQL, удовлетворяющая интерфейсу storage.Storage.
type PgStorage struct {
	DB     *sql.DB
	AESKey []byte
}

// InitStorage Инициализация хранилища: подключение, проверка связи и миграции.
func InitStorage(DatabaseURI string, aesKey []byte) (*PgStorage, error) {
	if err := utils.ValidateAESKey(aesKey); err != nil {
		return nil, err
	}

	pg, err := sql.Open("pgx", DatabaseURI)
	if err != nil {
		logger.Log.Error("Ошибка подключения к БД PostgreSQL", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка подключения к БД PostgreSQL: %w", err)
	}

	if err = pg.Ping(); err != nil {
		logger.Log.Error("Нет связи с БД PostgreSQL", logger.String("err", err.Error()))
		_ = pg.Close()
		return nil, fmt.Errorf("нет связи с БД PostgreSQL: %w", err)
	}

	if err = utils.ApplyMigrations(DatabaseURI); err != nil {
		_ = pg.Close()
		return nil, fmt.Errorf("ошибка применения миграций к БД PostgreSQL: %w", err)
	}

	logger.Log.Info("В качестве хранилища используется БД PostgreSQL")
	return &PgStorage{DB: pg, AESKey: aesKey}, nil
}

// Ping Проверка соединения с БД.
func (pg *PgStorage) Ping(ctx context.Context) error {
	return pg.DB.PingContext(ctx)
}

// Close Закрытие пула соединений.
func (pg *PgStorage) Close() error {
	if err := pg.DB.Close(); err != nil {
		logger.Log.Error("Ошибка закрытия соединения с БД PostgreSQL", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка закрытия БД PostgreSQL: %w", err)
	}

	return nil
}

// isUniqueViolation Сообщает, что err - нарушение уникальности.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
