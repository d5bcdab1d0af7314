package smocks

import (
	"context"

	"github.com/fsdevblog/urlzipper/internal/models"
	"github.com/fsdevblog/urlzipper/internal/services"
	"github.com/stretchr/testify/mock"
)

type URLMock struct {
	mock.Mock
}

func (u *URLMock) Create(ctx context.Context, params services.CreateParams) (*models.URL, error) {
	args := u.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) BatchCreate(ctx context.Context, rawURLs []string) ([]services.BatchCreateResult, error) {
	args := u.Called(ctx, rawURLs)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]services.BatchCreateResult), args.Error(1) //nolint:wrapcheck,errcheck
}
