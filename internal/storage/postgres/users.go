package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trsv-dev/vps-dashboard/internal/errs"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	createUserQuery = `INSERT INTO users (login, password) VALUES ($1, $2) RETURNING id, created_at`

	getUserQuery = `SELECT id, login, password, created_at FROM users WHERE login = $1`
)

// CreateUser Создание администратора дашборда. Пароль хранится в виде bcrypt-хэша.
func (pg *PgStorage) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("Не удалось хэшировать пароль", logger.String("err", err.Error()))
		return nil, err
	}

	created := models.User{Login: user.Login}

	err = pg.DB.QueryRowContext(ctx, createUserQuery, user.Login, string(hashedPassword)).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			err = errs.NewErrLoginIsTaken(user.Login, err)
			logger.Log.Warn("Администратор уже существует", logger.String("login", user.Login))
			return nil, err
		}

		logger.Log.Error("Ошибка при создании администратора", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	return &created, nil
}

// GetUser Возвращает администратора, если пара логин/пароль верна. Хэш пароля в ответ не попадает.
func (pg *PgStorage) GetUser(ctx context.Context, user *models.User) (*models.User, error) {
	var fromDB models.User

	err := pg.DB.QueryRowContext(ctx, getUserQuery, user.Login).
		Scan(&fromDB.ID, &fromDB.Login, &fromDB.Password, &fromDB.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewErrWrongLoginOrPassword(err)
		}

		logger.Log.Error("Ошибка запроса", logger.String("err", err.Error()))
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(fromDB.Password), []byte(user.Password)); err != nil {
		return nil, errs.NewErrWrongLoginOrPassword(err)
	}

	fromDB.Password = ""

	return &fromDB, nil
}
