// Package memstore предоставляет реализацию репозитория URL в памяти процесса.
//
// Используется как хранилище по умолчанию (когда не задан ни DSN, ни путь к
// SQLite) и в тестах сервисного слоя. Записи хранятся в map в сериализованном
// виде; все операции выполняются под общим мьютексом, поэтому фиксация
// перехода (clicks + счетчик реферера) атомарна относительно конкурентных
// переходов по тому же идентификатору.
package memstore
