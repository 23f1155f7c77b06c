package mocks

import (
	"github.com/absmach/fedavg/pkg/fl"
	"github.com/stretchr/testify/mock"
)

var _ fl.Aggregator = (*Aggregator)(nil)

// Aggregator is a mock implementation of the fl.Aggregator interface.
type Aggregator struct {
	mock.Mock
}

func (m *Aggregator) Aggregate(updates []fl.Update) (fl.Model, error) {
	args := m.Called(updates)

	return args.Get(0).(fl.Model), args.Error(1)
}
