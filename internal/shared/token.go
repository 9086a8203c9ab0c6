package shared

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Длина токена в байтах до кодирования
const tokenBytes = 21

// NewToken возвращает непредсказуемый URL-безопасный токен.
// Токен не содержит структуры и не выводим из публичных данных.
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
