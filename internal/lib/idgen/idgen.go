// Package idgen выдаёт новые идентификаторы сущностей.
//
// Идентификаторы имеют формат ULID: они упорядочены по времени создания и
// монотонно растут в пределах одной миллисекунды.
package idgen

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New возвращает новый идентификатор.
func New() string {
	return NewAt(time.Now())
}

// NewAt возвращает идентификатор с временной меткой t.
func NewAt(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Valid сообщает, является ли строка идентификатором, выданным этим пакетом.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
