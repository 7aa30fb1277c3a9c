package clients

import (
	"context"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
)

// SlackClient defines the interface for the Slack transport operations the
// pipeline depends on
type SlackClient interface {
	AuthTest() (*SlackAuthTestResponse, error)
	PostMessage(channelID string, params SlackMessageParams) (*SlackPostMessageResponse, error)
	AddReaction(name string, item SlackItemRef) error
	RemoveReaction(name string, item SlackItemRef) error
	GetReactions(item SlackItemRef, params SlackGetReactionsParameters) ([]SlackItemReaction, error)
}

// BackstageClient defines the interface for the read-only catalog query API
type BackstageClient interface {
	QueryEntities(ctx context.Context, filter string) ([]models.Entity, error)
}
