package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type bulkShortenRequest struct {
	URLs []string `json:"urls"`
}

type bulkShortenItem struct {
	LongURL  string `json:"longUrl"`
	ShortURL string `json:"shortUrl"`
}

type bulkShortenResponse struct {
	ShortURLs []bulkShortenItem `json:"shortUrls"`
}

// BulkCreateShortURLs обрабатывает POST /bulk-shorten.
// Пакет обрабатывается по принципу все-или-ничего: ошибка любого элемента
// отдается как 500 для всего пакета.
func (s *ShortURLController) BulkCreateShortURLs(ctx *gin.Context) {
	var req bulkShortenRequest
	if bindErr := ctx.ShouldBindJSON(&req); bindErr != nil {
		errorResponse(ctx, http.StatusBadRequest, errMsgInvalidInput)
		return
	}
	if len(req.URLs) == 0 {
		errorResponse(ctx, http.StatusBadRequest, errMsgInvalidInput)
		return
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	results, batchErr := s.urlService.BatchCreate(reqCtx, req.URLs)
	if batchErr != nil {
		errorResponse(ctx, http.StatusInternalServerError, errMsgServerError)
		return
	}

	items := make([]bulkShortenItem, len(results))
	for i, res := range results {
		items[i] = bulkShortenItem{
			LongURL:  res.LongURL,
			ShortURL: s.getShortURL(ctx.Request, res.URL.ShortIdentifier),
		}
	}

	ctx.JSON(http.StatusOK, bulkShortenResponse{ShortURLs: items})
}
