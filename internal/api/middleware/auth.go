package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const tokenKey contextKey = "auth_token"

// BearerToken извлекает bearer токен из заголовка Authorization и кладёт
// его в контекст запроса. Отсутствие токена не является ошибкой: флоу
// бронирования доступен и неавторизованным пользователям, решение
// принимается на шаге подтверждения
func BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		token := ""
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}

		ctx := context.WithValue(r.Context(), tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromContext возвращает bearer токен запроса
// Пустая строка означает неавторизованного пользователя
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
