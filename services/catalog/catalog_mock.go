package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
)

// MockCatalogService is a mock implementation of the services.CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) FindEntity(ctx context.Context, query string) ([]models.Entity, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entity), args.Error(1)
}

func (m *MockCatalogService) FindEntityBySlackID(ctx context.Context, slackUserID string) ([]models.Entity, error) {
	args := m.Called(ctx, slackUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entity), args.Error(1)
}
