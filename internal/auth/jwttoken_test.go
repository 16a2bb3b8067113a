package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/vps-dashboard/internal/models"
)

const secretKey = "test-secret-key"

// TestBuildJWTToken Проверяет содержимое созданного токена.
func TestBuildJWTToken(t *testing.T) {
	builder := NewJWTTokenBuilder()

	tokenString, err := builder.BuildJWTToken(&models.User{ID: 123, Login: "admin"}, secretKey)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	require.NoError(t, err)

	assert.True(t, token.Valid)
	assert.Equal(t, jwt.SigningMethodHS256, token.Method)
	assert.Equal(t, int64(123), claims.ID)
	assert.Equal(t, "admin", claims.Login)
	assert.WithinDuration(t, time.Now().Add(TokenExp), claims.ExpiresAt.Time, 5*time.Second)
}

// TestGetClaims Проверяет разбор токена.
func TestGetClaims(t *testing.T) {
	builder := JWTTokenBuilder{}

	validToken, err := builder.BuildJWTToken(&models.User{ID: 7, Login: "admin"}, secretKey)
	require.NoError(t, err)

	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
		ID:               7,
		Login:            "admin",
	}).SignedString([]byte(secretKey))
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: 7, Login: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secretKey   string
		wantErr     bool
	}{
		{"валидный токен", validToken, secretKey, false},
		{"неверный секретный ключ", validToken, "wrong-secret", true},
		{"истекший токен", expiredToken, secretKey, true},
		{"токен без подписи", noneToken, secretKey, true},
		{"мусор вместо токена", "invalid.token.string", secretKey, true},
		{"пустой токен", "", secretKey, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := builder.GetClaims(tt.tokenString, tt.secretKey)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), claims.ID)
			assert.Equal(t, "admin", claims.Login)
		})
	}
}

// TestEmptySecret Токен, подписанный пустым ключом, не принимается, и такой токен не выпускается.
func TestEmptySecret(t *testing.T) {
	builder := NewJWTTokenBuilder()

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		ID:               1,
		Login:            "admin",
	})
	tokenString, err := forged.SignedString([]byte(""))
	require.NoError(t, err)

	claims, err := builder.GetClaims(tokenString, "")
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Nil(t, claims)

	_, err = builder.BuildJWTToken(&models.User{ID: 1, Login: "admin"}, "")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

// TestTokenFromRequest Проверяет извлечение токена из cookie и заголовка.
func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(r *http.Request)
		want    string
		wantErr bool
	}{
		{
			name:  "cookie",
			setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: CookieName, Value: "from-cookie"}) },
			want:  "from-cookie",
		},
		{
			name:  "bearer",
			setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer from-header") },
			want:  "from-header",
		},
		{
			name:  "bearer в нижнем регистре",
			setup: func(r *http.Request) { r.Header.Set("Authorization", "bearer  from-header ") },
			want:  "from-header",
		},
		{
			name: "cookie важнее заголовка",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: "from-cookie"})
				r.Header.Set("Authorization", "Bearer from-header")
			},
			want: "from-cookie",
		},
		{
			name:    "другая схема авторизации",
			setup:   func(r *http.Request) { r.Header.Set("Authorization", "Basic YWRtaW46YWRtaW4=") },
			wantErr: true,
		},
		{
			name:    "пустой bearer",
			setup:   func(r *http.Request) { r.Header.Set("Authorization", "Bearer ") },
			wantErr: true,
		},
		{
			name:    "ничего нет",
			setup:   func(r *http.Request) {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			tt.setup(r)

			token, err := TokenFromRequest(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoToken)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

// TestCreateCookie Проверяет установку cookie с токеном.
func TestCreateCookie(t *testing.T) {
	w := httptest.NewRecorder()
	CreateCookie(w, "test-jwt-token-string")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1, "должна быть установлена одна cookie")

	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "test-jwt-token-string", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.WithinDuration(t, time.Now().Add(TokenExp), cookie.Expires, 5*time.Second)
}

// TestDeleteCookie Проверяет удаление cookie при выходе.
func TestDeleteCookie(t *testing.T) {
	w := httptest.NewRecorder()
	DeleteCookie(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
