// Package sql предоставляет реализацию репозитория URL поверх gorm
// (SQLite и PostgreSQL).
//
// Все методы репозитория преобразуют ошибки драйвера в общие ошибки уровня
// репозитория с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
