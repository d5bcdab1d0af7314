package smocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ExpirationMock struct {
	mock.Mock
}

func (e *ExpirationMock) Set(ctx context.Context, key string, value string, ttlSeconds int64) error {
	args := e.Called(ctx, key, value, ttlSeconds)
	return args.Error(0) //nolint:wrapcheck,errcheck
}

func (e *ExpirationMock) Get(ctx context.Context, key string) (string, error) {
	args := e.Called(ctx, key)
	return args.String(0), args.Error(1) //nolint:wrapcheck,errcheck
}
