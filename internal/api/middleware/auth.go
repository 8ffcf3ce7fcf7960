package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const customerIDKey contextKey = "customerID"

// HeaderCustomerID заголовок с идентификатором клиента.
// Заполняется API-шлюзом после проверки токена.
const HeaderCustomerID = "X-Customer-ID"

// Auth проверяет наличие идентификатора клиента в заголовке запроса
// и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := r.Header.Get(HeaderCustomerID)
		if customerID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "missing customer id"})
			return
		}

		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCustomerID извлекает идентификатор клиента из контекста
func GetCustomerID(ctx context.Context) (string, bool) {
	customerID, ok := ctx.Value(customerIDKey).(string)
	return customerID, ok
}
