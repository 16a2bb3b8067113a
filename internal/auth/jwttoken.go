package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/trsv-dev/vps-dashboard/internal/models"
)

// CookieName Имя cookie с JWT-токеном сессии.
const CookieName = "JWT"

// TokenExp Время жизни сессии.
const TokenExp = time.Hour * 24

var (
	// ErrNoToken Токен не передан ни в cookie, ни в заголовке Authorization.
	ErrNoToken = errors.New("токен сессии не передан")
	// ErrEmptySecret Токены с пустым ключом не выпускаются и не принимаются.
	ErrEmptySecret = errors.New("не задан секрет JWT")
)

// Claims Данные, записываемые в токен.
type Claims struct {
	jwt.RegisteredClaims
	ID    int64  `json:"user_id"`
	Login string `json:"login"`
}

// JWTTokenBuilder Реализация TokenBuilder на HS256.
type JWTTokenBuilder struct{}

// NewJWTTokenBuilder Конструктор JWTTokenBuilder.
func NewJWTTokenBuilder() *JWTTokenBuilder {
	return &JWTTokenBuilder{}
}

// BuildJWTToken Создание JWT-токена для администратора.
func (j JWTTokenBuilder) BuildJWTToken(user *models.User, JWTSecretKey string) (string, error) {
	if JWTSecretKey == "" {
		return "", ErrEmptySecret
	}

	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExp)),
		},
		ID:    user.ID,
		Login: user.Login,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("не удалось подписать токен: %w", err)
	}

	return tokenString, nil
}

// GetClaims Разбор и проверка JWT-токена (подпись HMAC, срок действия).
func (j JWTTokenBuilder) GetClaims(tokenString, JWTSecretKey string) (*Claims, error) {
	if JWTSecretKey == "" {
		return nil, ErrEmptySecret
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неверный метод подписи: %v", t.Header["alg"])
		}

		return []byte(JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("токен недействителен")
	}

	return claims, nil
}

// TokenFromRequest Токен из cookie JWT, а при ее отсутствии из заголовка `Authorization: Bearer`.
func TokenFromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	header := r.Header.Get("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		if token = strings.TrimSpace(token); token != "" {
			return token, nil
		}
	}

	return "", ErrNoToken
}

// CreateCookie Создание и установка куки с JWT-токеном.
func CreateCookie(w http.ResponseWriter, tokenString string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Expires:  time.Now().Add(TokenExp),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// DeleteCookie Удаление куки с JWT-токеном (выход из дашборда).
func DeleteCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
