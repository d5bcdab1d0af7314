package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/fsdevblog/urlzipper/internal/qr"
	"github.com/fsdevblog/urlzipper/internal/services"
	"github.com/fsdevblog/urlzipper/internal/services/smocks"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpirationControllerSuite struct {
	suite.Suite
	expirationMock *smocks.ExpirationMock
	router         *gin.Engine
}

func (s *ExpirationControllerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.expirationMock = new(smocks.ExpirationMock)

	s.router = SetupRouter(RouterParams{
		URLService:        new(smocks.URLMock),
		RedirectService:   new(smocks.RedirectMock),
		AnalyticsService:  new(smocks.AnalyticsMock),
		ExpirationService: s.expirationMock,
		QRGenerator:       qr.NewGenerator(),
		BaseURL:           &url.URL{Scheme: "http", Host: "test.com:8080"},
		Logger:            logrus.New(),
	})
}

func (s *ExpirationControllerSuite) TestSetExpiration() {
	s.expirationMock.On("Set", mock.Anything, "session:42", "payload", int64(3600)).Return(nil)

	res := s.makeRequest(http.MethodPost, "/set-expiration",
		`{"key": "session:42", "value": "payload", "expirationTime": 3600}`)
	defer res.Body.Close()

	s.Equal(http.StatusOK, res.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("Key set with expiration time successfully.", body.Message)
	s.expirationMock.AssertExpectations(s.T())
}

func (s *ExpirationControllerSuite) TestSetExpiration_Invalid() {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing key", body: `{"value": "payload", "expirationTime": 3600}`},
		{name: "missing value", body: `{"key": "session:42", "expirationTime": 3600}`},
		{name: "missing expiration", body: `{"key": "session:42", "value": "payload"}`},
		{name: "negative expiration", body: `{"key": "session:42", "value": "payload", "expirationTime": -1}`},
		{name: "malformed body", body: `not json`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeRequest(http.MethodPost, "/set-expiration", tt.body)
			defer res.Body.Close()

			s.Equal(http.StatusBadRequest, res.StatusCode)
			s.Equal("Key, value, and expiration time are required.", s.errorMessage(res.Body))
		})
	}

	s.expirationMock.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ExpirationControllerSuite) TestSetExpiration_CacheUnavailable() {
	s.expirationMock.On("Set", mock.Anything, "session:42", "payload", int64(60)).
		Return(services.ErrCacheDisabled)

	res := s.makeRequest(http.MethodPost, "/set-expiration",
		`{"key": "session:42", "value": "payload", "expirationTime": 60}`)
	defer res.Body.Close()

	s.Equal(http.StatusInternalServerError, res.StatusCode)
	s.Equal("Server error", s.errorMessage(res.Body))
}

func (s *ExpirationControllerSuite) TestGetExpiration() {
	s.expirationMock.On("Get", mock.Anything, "session:42").Return("payload", nil)
	s.expirationMock.On("Get", mock.Anything, "missing").Return("", services.ErrRecordNotFound)

	s.Run("valid", func() {
		res := s.makeRequest(http.MethodGet, "/get-expiration/session:42", "")
		defer res.Body.Close()

		s.Equal(http.StatusOK, res.StatusCode)

		var body struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		}
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Equal("session:42", body.Key)
		s.Equal("payload", body.Value)
	})

	s.Run("not found", func() {
		res := s.makeRequest(http.MethodGet, "/get-expiration/missing", "")
		defer res.Body.Close()

		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Equal("Key not found.", s.errorMessage(res.Body))
	})
}

func (s *ExpirationControllerSuite) makeRequest(method, target, body string) *http.Response {
	return makeTestRequest(s.router, method, target, body)
}

func (s *ExpirationControllerSuite) errorMessage(body io.Reader) string {
	msg, err := decodeErrorMessage(body)
	s.Require().NoError(err)
	return msg
}

func TestExpirationControllerSuite(t *testing.T) {
	suite.Run(t, new(ExpirationControllerSuite))
}
