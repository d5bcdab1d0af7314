// Package shortid генерирует короткие URL-safe идентификаторы.
//
// Идентификатор — случайный токен из base62 алфавита. Пространство в 62^8
// вариантов делает коллизию маловероятной; гарантию уникальности дает
// уникальный индекс хранилища, а обработка конфликта (повторная генерация) —
// обязанность вызывающей стороны.
package shortid

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Generate возвращает случайный идентификатор заданной длины.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("shortid: length must be positive")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "shortid: read random bytes")
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
