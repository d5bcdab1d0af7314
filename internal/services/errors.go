package services

import "errors"

var (
	ErrUnknown        = errors.New("[service]: unknown error")
	ErrRecordNotFound = errors.New("[service]: record not found")
	ErrAliasTaken     = errors.New("[service]: custom alias already taken")
	ErrInvalidURL     = errors.New("[service]: invalid url")
	ErrInvalidInput   = errors.New("[service]: invalid input")
	ErrExpired        = errors.New("[service]: url has expired")
	ErrCacheDisabled  = errors.New("[service]: cache is not configured")
)
