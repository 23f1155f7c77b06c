package mocks

import (
	"context"

	"github.com/absmach/fedavg/aggregator"
	"github.com/absmach/fedavg/pkg/fl"
	"github.com/stretchr/testify/mock"
)

var _ aggregator.Service = (*Service)(nil)

// Service is a mock implementation of the aggregator.Service interface.
type Service struct {
	mock.Mock
}

func (m *Service) Aggregate(ctx context.Context, roundID string, updates []fl.Update) (fl.Model, error) {
	args := m.Called(ctx, roundID, updates)

	return args.Get(0).(fl.Model), args.Error(1)
}
