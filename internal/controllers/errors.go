package controllers

// Сообщения ошибок внешнего API. Тело ошибки всегда {"error": "<message>"}.
const (
	errMsgInvalidURL   = "Invalid URL"
	errMsgAliasTaken   = "Custom alias already taken"
	errMsgNotFound     = "URL not found"
	errMsgExpired      = "URL has expired"
	errMsgInvalidInput = "Invalid input"
	errMsgServerError  = "Server error"
	errMsgKeyNotFound  = "Key not found."
	errMsgKeyRequired  = "Key, value, and expiration time are required."
)
