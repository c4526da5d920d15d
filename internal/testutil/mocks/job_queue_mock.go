package mocks

import (
	"github.com/agstats/shionweb/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueRecordView(player models.RecentPlayer) error {
	args := m.Called(player)
	return args.Error(0)
}
