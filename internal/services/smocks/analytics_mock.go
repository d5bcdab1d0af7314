package smocks

import (
	"context"

	"github.com/fsdevblog/urlzipper/internal/services"
	"github.com/stretchr/testify/mock"
)

type AnalyticsMock struct {
	mock.Mock
}

func (a *AnalyticsMock) Stats(ctx context.Context, shortID string) (*services.Stats, error) {
	args := a.Called(ctx, shortID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*services.Stats), args.Error(1) //nolint:wrapcheck,errcheck
}
