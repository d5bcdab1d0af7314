package controllers

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/urlzipper/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analyticsService AnalyticsProvider
}

func NewAnalyticsController(analyticsService AnalyticsProvider) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetAnalytics обрабатывает GET /analytics/:shortID.
// Статистика читается напрямую из хранилища; истекшие записи тоже отдаются.
func (a *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	sIdentifier := ctx.Param("shortID")

	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	stats, err := a.analyticsService.Stats(reqCtx, sIdentifier)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			errorResponse(ctx, http.StatusNotFound, errMsgNotFound)
			return
		}
		errorResponse(ctx, http.StatusInternalServerError, errMsgServerError)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
