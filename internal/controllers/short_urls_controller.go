package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fsdevblog/urlzipper/internal/services"

	"github.com/gin-gonic/gin"
)

type ShortURLController struct {
	urlService      URLShortener
	redirectService Redirector
	qrGenerator     QRGenerator
	baseURL         *url.URL
}

func NewShortURLController(
	urlService URLShortener,
	redirectService Redirector,
	qrGenerator QRGenerator,
	baseURL *url.URL,
) *ShortURLController {
	return &ShortURLController{
		urlService:      urlService,
		redirectService: redirectService,
		qrGenerator:     qrGenerator,
		baseURL:         baseURL,
	}
}

type shortenRequest struct {
	LongURL     string  `json:"longUrl"`
	CustomAlias *string `json:"customAlias,omitempty"`
	ExpiresIn   *int64  `json:"expiresIn,omitempty"`
}

type shortenResponse struct {
	ShortURL string `json:"shortUrl"`
	QRCode   string `json:"qrCode"`
}

// CreateShortURL обрабатывает POST /shorten.
func (s *ShortURLController) CreateShortURL(ctx *gin.Context) {
	var req shortenRequest
	if bindErr := ctx.ShouldBindJSON(&req); bindErr != nil {
		errorResponse(ctx, http.StatusBadRequest, errMsgInvalidURL)
		return
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	sURL, createErr := s.urlService.Create(reqCtx, services.CreateParams{
		RawURL:      req.LongURL,
		CustomAlias: req.CustomAlias,
		ExpiresIn:   req.ExpiresIn,
	})
	if createErr != nil {
		switch {
		case errors.Is(createErr, services.ErrInvalidURL):
			errorResponse(ctx, http.StatusBadRequest, errMsgInvalidURL)
		case errors.Is(createErr, services.ErrAliasTaken):
			errorResponse(ctx, http.StatusBadRequest, errMsgAliasTaken)
		default:
			errorResponse(ctx, http.StatusInternalServerError, errMsgServerError)
		}
		return
	}

	shortURL := s.getShortURL(ctx.Request, sURL.ShortIdentifier)

	// Генерация QR намеренно синхронная: ее отказ отдается как 500,
	// хотя запись уже сохранена.
	qrCode, qrErr := s.qrGenerator.DataURL(shortURL)
	if qrErr != nil {
		_ = ctx.Error(qrErr)
		errorResponse(ctx, http.StatusInternalServerError, errMsgServerError)
		return
	}

	ctx.JSON(http.StatusOK, shortenResponse{ShortURL: shortURL, QRCode: qrCode})
}

// Redirect обрабатывает GET /:shortID.
func (s *ShortURLController) Redirect(ctx *gin.Context) {
	sIdentifier := ctx.Param("shortID")

	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	target, err := s.redirectService.Resolve(reqCtx, sIdentifier, ctx.Request.Referer())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecordNotFound):
			errorResponse(ctx, http.StatusNotFound, errMsgNotFound)
		case errors.Is(err, services.ErrExpired):
			errorResponse(ctx, http.StatusGone, errMsgExpired)
		default:
			errorResponse(ctx, http.StatusInternalServerError, errMsgServerError)
		}
		return
	}

	ctx.Redirect(http.StatusFound, target)
}

// getShortURL вспомогательный метод который создает короткую ссылку.
func (s *ShortURLController) getShortURL(r *http.Request, shortID string) string {
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if s.baseURL == nil {
		return fmt.Sprintf("%s://%s/%s", scheme, r.Host, shortID)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, shortID)
}
