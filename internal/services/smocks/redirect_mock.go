package smocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type RedirectMock struct {
	mock.Mock
}

func (r *RedirectMock) Resolve(ctx context.Context, shortID string, referrer string) (string, error) {
	args := r.Called(ctx, shortID, referrer)
	return args.String(0), args.Error(1) //nolint:wrapcheck,errcheck
}
