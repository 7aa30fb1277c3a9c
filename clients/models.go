package clients

import (
	"github.com/samber/mo"
	"github.com/slack-go/slack"
)

// SlackAuthTestResponse represents the response from Slack's auth.test API
type SlackAuthTestResponse struct {
	UserID string
	TeamID string
}

// SlackPostMessageResponse represents the response from posting a message to Slack
type SlackPostMessageResponse struct {
	Channel   string
	Timestamp string
}

// SlackItemRef represents a reference to a Slack message item
type SlackItemRef struct {
	Channel   string
	Timestamp string
}

// SlackGetReactionsParameters represents parameters for getting reactions
type SlackGetReactionsParameters struct {
	// Add any specific parameters if needed in the future
}

// SlackItemReaction represents a reaction on a Slack message
type SlackItemReaction struct {
	Name  string
	Users []string
}

// SlackMessageParams holds parameters for sending Slack messages. When Blocks
// is non-empty the message is sent as a structured Block Kit payload and Text
// serves as the notification fallback.
type SlackMessageParams struct {
	Text     string
	Blocks   []slack.Block
	ThreadTS mo.Option[string]
}
