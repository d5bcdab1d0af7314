package controllers

import (
	"net/url"

	"github.com/fsdevblog/urlzipper/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouterParams зависимости маршрутизатора.
type RouterParams struct {
	URLService        URLShortener
	RedirectService   Redirector
	AnalyticsService  AnalyticsProvider
	ExpirationService ExpirationStore
	QRGenerator       QRGenerator
	BaseURL           *url.URL
	Logger            *logrus.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(params.Logger))

	shortURLController := NewShortURLController(
		params.URLService,
		params.RedirectService,
		params.QRGenerator,
		params.BaseURL,
	)
	analyticsController := NewAnalyticsController(params.AnalyticsService)
	expirationController := NewExpirationController(params.ExpirationService)

	r.POST("/shorten", shortURLController.CreateShortURL)
	r.POST("/bulk-shorten", shortURLController.BulkCreateShortURLs)
	r.GET("/analytics/:shortID", analyticsController.GetAnalytics)
	r.POST("/set-expiration", expirationController.SetExpiration)
	r.GET("/get-expiration/:key", expirationController.GetExpiration)
	r.GET("/:shortID", shortURLController.Redirect)

	return r
}
