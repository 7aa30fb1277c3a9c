package slackbot

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/clients"
	slackclient "github.com/marcus-crane/backstage-plugin-slackbot-backend/clients/slack"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/testutils"
)

func expectPendingCleanup(mockSlackClient *slackclient.MockSlackClient, item clients.SlackItemRef) {
	mockSlackClient.On("AuthTest").
		Return(&clients.SlackAuthTestResponse{UserID: testutils.BotUserID}, nil)
	mockSlackClient.On("GetReactions", item, clients.SlackGetReactionsParameters{}).
		Return([]clients.SlackItemReaction{
			{Name: reactionPending, Users: []string{testutils.BotUserID}},
		}, nil)
	mockSlackClient.On("RemoveReaction", reactionPending, item).Return(nil).Once()
}

func TestProcessAppMentionEvent(t *testing.T) {
	t.Run("Success_FindCommand", func(t *testing.T) {
		useCase, mockSlackClient, mockCatalogService := setupSlackbotUseCase(t)

		event := testutils.MentionEvent(testutils.TextElement(" find cool-tuna"))
		item := clients.SlackItemRef{Channel: event.Channel, Timestamp: event.TS}

		mockCatalogService.On("FindEntityBySlackID", mock.Anything, event.User).
			Return([]models.Entity{}, nil).Once()
		mockCatalogService.On("FindEntity", mock.Anything, "cool-tuna").
			Return([]models.Entity{testutils.NewSystemEntity("cool-tuna")}, nil).Once()

		mockSlackClient.On("AddReaction", reactionPending, item).Return(nil).Once()
		mockSlackClient.On("PostMessage", event.Channel, mock.MatchedBy(func(params clients.SlackMessageParams) bool {
			threadTS, _ := params.ThreadTS.Get()
			return threadTS == event.TS && len(params.Blocks) > 0
		})).Return(&clients.SlackPostMessageResponse{Channel: event.Channel, Timestamp: "1700000000.000200"}, nil).Once()
		mockSlackClient.On("AddReaction", reactionSuccess, item).Return(nil).Once()
		expectPendingCleanup(mockSlackClient, item)

		err := useCase.ProcessAppMentionEvent(context.Background(), event)

		require.NoError(t, err)
		mockSlackClient.AssertNumberOfCalls(t, "RemoveReaction", 1)
		mockSlackClient.AssertExpectations(t)
		mockCatalogService.AssertExpectations(t)
	})

	t.Run("Ignored_BotMentionOnly", func(t *testing.T) {
		useCase, mockSlackClient, mockCatalogService := setupSlackbotUseCase(t)

		event := testutils.MentionEvent()
		item := clients.SlackItemRef{Channel: event.Channel, Timestamp: event.TS}

		mockCatalogService.On("FindEntityBySlackID", mock.Anything, event.User).
			Return([]models.Entity{}, nil).Once()
		mockSlackClient.On("AddReaction", reactionPending, item).Return(nil).Once()
		expectPendingCleanup(mockSlackClient, item)

		err := useCase.ProcessAppMentionEvent(context.Background(), event)

		require.NoError(t, err)
		mockSlackClient.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything)
		mockSlackClient.AssertNotCalled(t, "AddReaction", reactionSuccess, item)
		mockSlackClient.AssertNumberOfCalls(t, "RemoveReaction", 1)
	})

	t.Run("Failure_SendThrows_PendingStillClearedOnce", func(t *testing.T) {
		useCase, mockSlackClient, mockCatalogService := setupSlackbotUseCase(t)

		event := testutils.MentionEvent(testutils.TextElement(" find cool-tuna"))
		item := clients.SlackItemRef{Channel: event.Channel, Timestamp: event.TS}

		mockCatalogService.On("FindEntityBySlackID", mock.Anything, event.User).
			Return([]models.Entity{}, nil).Once()
		mockCatalogService.On("FindEntity", mock.Anything, "cool-tuna").
			Return([]models.Entity{testutils.NewSystemEntity("cool-tuna")}, nil).Once()

		mockSlackClient.On("AddReaction", reactionPending, item).Return(nil).Once()
		// Both the result send and the follow-up apology fail
		mockSlackClient.On("PostMessage", event.Channel, mock.Anything).
			Return(nil, fmt.Errorf("send failed")).Twice()
		mockSlackClient.On("AddReaction", reactionFailure, item).Return(nil).Once()
		expectPendingCleanup(mockSlackClient, item)

		err := useCase.ProcessAppMentionEvent(context.Background(), event)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "send failed")
		mockSlackClient.AssertNumberOfCalls(t, "RemoveReaction", 1)
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("Failure_HandlerPanics_PendingStillCleared", func(t *testing.T) {
		useCase, mockSlackClient, mockCatalogService := setupSlackbotUseCase(t)

		event := testutils.MentionEvent(testutils.TextElement(" find cool-tuna"))
		item := clients.SlackItemRef{Channel: event.Channel, Timestamp: event.TS}

		mockCatalogService.On("FindEntityBySlackID", mock.Anything, event.User).
			Return([]models.Entity{}, nil).Once()
		mockCatalogService.On("FindEntity", mock.Anything, "cool-tuna").
			Run(func(mock.Arguments) { panic("boom") }).
			Return([]models.Entity{}, nil).Once()

		mockSlackClient.On("AddReaction", reactionPending, item).Return(nil).Once()
		mockSlackClient.On("AddReaction", reactionFailure, item).Return(nil).Once()
		mockSlackClient.On("PostMessage", event.Channel, mock.MatchedBy(func(params clients.SlackMessageParams) bool {
			return params.Text == genericFailureMessage
		})).Return(&clients.SlackPostMessageResponse{}, nil).Once()
		expectPendingCleanup(mockSlackClient, item)

		err := useCase.ProcessAppMentionEvent(context.Background(), event)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "panic while handling command")
		mockSlackClient.AssertNumberOfCalls(t, "RemoveReaction", 1)
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("Malformed_MentionPayloadMissing_ReportsToUser", func(t *testing.T) {
		useCase, mockSlackClient, mockCatalogService := setupSlackbotUseCase(t)

		event := testutils.MentionEvent()
		event.Blocks[0].Elements[0].Elements = nil
		item := clients.SlackItemRef{Channel: event.Channel, Timestamp: event.TS}

		mockCatalogService.On("FindEntityBySlackID", mock.Anything, event.User).
			Return([]models.Entity{}, nil).Once()
		mockSlackClient.On("AddReaction", reactionPending, item).Return(nil).Once()
		mockSlackClient.On("PostMessage", event.Channel, mock.MatchedBy(func(params clients.SlackMessageParams) bool {
			return len(params.Blocks) == 0 && params.Text != ""
		})).Return(&clients.SlackPostMessageResponse{}, nil).Once()
		mockSlackClient.On("AddReaction", reactionSuccess, item).Return(nil).Once()
		expectPendingCleanup(mockSlackClient, item)

		err := useCase.ProcessAppMentionEvent(context.Background(), event)

		require.NoError(t, err)
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("EnrichmentFailure_NeverBlocksDispatch", func(t *testing.T) {
		useCase, mockSlackClient, mockCatalogService := setupSlackbotUseCase(t)

		event := testutils.MentionEvent(testutils.TextElement(" whoami"))
		item := clients.SlackItemRef{Channel: event.Channel, Timestamp: event.TS}

		mockCatalogService.On("FindEntityBySlackID", mock.Anything, event.User).
			Return(nil, fmt.Errorf("catalog unavailable")).Once()

		mockSlackClient.On("AddReaction", reactionPending, item).Return(nil).Once()
		mockSlackClient.On("PostMessage", event.Channel, mock.MatchedBy(func(params clients.SlackMessageParams) bool {
			return params.Text == missingPersonMessage
		})).Return(&clients.SlackPostMessageResponse{}, nil).Once()
		mockSlackClient.On("AddReaction", reactionSuccess, item).Return(nil).Once()
		expectPendingCleanup(mockSlackClient, item)

		err := useCase.ProcessAppMentionEvent(context.Background(), event)

		require.NoError(t, err)
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("PendingAddFails_DispatchContinues_NoRemovalAttempted", func(t *testing.T) {
		useCase, mockSlackClient, mockCatalogService := setupSlackbotUseCase(t)

		event := testutils.MentionEvent(testutils.TextElement(" help"))
		item := clients.SlackItemRef{Channel: event.Channel, Timestamp: event.TS}

		mockCatalogService.On("FindEntityBySlackID", mock.Anything, event.User).
			Return([]models.Entity{}, nil).Once()

		mockSlackClient.On("AddReaction", reactionPending, item).
			Return(fmt.Errorf("reaction quota exceeded")).Once()
		mockSlackClient.On("PostMessage", event.Channel, mock.Anything).
			Return(&clients.SlackPostMessageResponse{}, nil).Once()
		mockSlackClient.On("AddReaction", reactionSuccess, item).Return(nil).Once()
		// Only reactions the bot actually attached get removed
		mockSlackClient.On("AuthTest").
			Return(&clients.SlackAuthTestResponse{UserID: testutils.BotUserID}, nil)
		mockSlackClient.On("GetReactions", item, clients.SlackGetReactionsParameters{}).
			Return([]clients.SlackItemReaction{}, nil)

		err := useCase.ProcessAppMentionEvent(context.Background(), event)

		require.NoError(t, err)
		mockSlackClient.AssertNotCalled(t, "RemoveReaction", reactionPending, item)
		mockSlackClient.AssertExpectations(t)
	})
}
