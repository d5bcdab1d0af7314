package controllers

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/urlzipper/internal/services"

	"github.com/gin-gonic/gin"
)

type ExpirationController struct {
	expirationService ExpirationStore
}

func NewExpirationController(expirationService ExpirationStore) *ExpirationController {
	return &ExpirationController{expirationService: expirationService}
}

type setExpirationRequest struct {
	Key            string `json:"key"`
	Value          string `json:"value"`
	ExpirationTime int64  `json:"expirationTime"`
}

// SetExpiration обрабатывает POST /set-expiration: записывает произвольный
// ключ в кеш с заданным сроком жизни в секундах.
func (e *ExpirationController) SetExpiration(ctx *gin.Context) {
	var req setExpirationRequest
	if bindErr := ctx.ShouldBindJSON(&req); bindErr != nil {
		errorResponse(ctx, http.StatusBadRequest, errMsgKeyRequired)
		return
	}
	if req.Key == "" || req.Value == "" || req.ExpirationTime <= 0 {
		errorResponse(ctx, http.StatusBadRequest, errMsgKeyRequired)
		return
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	if err := e.expirationService.Set(reqCtx, req.Key, req.Value, req.ExpirationTime); err != nil {
		errorResponse(ctx, http.StatusInternalServerError, errMsgServerError)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Key set with expiration time successfully."})
}

// GetExpiration обрабатывает GET /get-expiration/:key.
func (e *ExpirationController) GetExpiration(ctx *gin.Context) {
	key := ctx.Param("key")

	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	value, err := e.expirationService.Get(reqCtx, key)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			errorResponse(ctx, http.StatusNotFound, errMsgKeyNotFound)
			return
		}
		errorResponse(ctx, http.StatusInternalServerError, errMsgServerError)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}
