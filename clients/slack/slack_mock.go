package slack

import (
	"github.com/stretchr/testify/mock"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/clients"
)

// MockSlackClient is a mock implementation of the clients.SlackClient interface
type MockSlackClient struct {
	mock.Mock
}

func (m *MockSlackClient) AuthTest() (*clients.SlackAuthTestResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.SlackAuthTestResponse), args.Error(1)
}

func (m *MockSlackClient) PostMessage(
	channelID string,
	params clients.SlackMessageParams,
) (*clients.SlackPostMessageResponse, error) {
	args := m.Called(channelID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.SlackPostMessageResponse), args.Error(1)
}

func (m *MockSlackClient) AddReaction(name string, item clients.SlackItemRef) error {
	args := m.Called(name, item)
	return args.Error(0)
}

func (m *MockSlackClient) RemoveReaction(name string, item clients.SlackItemRef) error {
	args := m.Called(name, item)
	return args.Error(0)
}

func (m *MockSlackClient) GetReactions(
	item clients.SlackItemRef,
	params clients.SlackGetReactionsParameters,
) ([]clients.SlackItemReaction, error) {
	args := m.Called(item, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.SlackItemReaction), args.Error(1)
}
