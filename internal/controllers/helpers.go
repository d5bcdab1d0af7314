package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// requestContext возвращает контекст запроса с таймаутом по умолчанию,
// чтобы отказ бэкенда не подвешивал обработчик.
func requestContext(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), DefaultRequestTimeout)
}

// errorResponse пишет тело ошибки в формате {"error": "<message>"}.
func errorResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, gin.H{"error": message})
}
