// Package storage содержит общие для всех хранилищ ошибки.
// Реализации лежат в подпакетах repository (PostgreSQL) и memory.
package storage

import "errors"

var (
	// ErrNotFound: записи с таким ID нет.
	ErrNotFound = errors.New("record not found")
	// ErrConflict: запись с таким ID уже существует.
	ErrConflict = errors.New("record with this id already exists")
)
