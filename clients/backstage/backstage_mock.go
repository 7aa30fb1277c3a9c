package backstage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
)

// MockBackstageClient is a mock implementation of the clients.BackstageClient interface
type MockBackstageClient struct {
	mock.Mock
}

func (m *MockBackstageClient) QueryEntities(ctx context.Context, filter string) ([]models.Entity, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entity), args.Error(1)
}
