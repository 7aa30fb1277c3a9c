package slack

import (
	"github.com/slack-go/slack"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/clients"
)

// SlackClient implements the clients.SlackClient interface using the slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided bot token
func NewSlackClient(botToken string) clients.SlackClient {
	return &SlackClient{
		Client: slack.New(botToken),
	}
}

// AuthTest verifies the bot token and returns information about the bot
func (c *SlackClient) AuthTest() (*clients.SlackAuthTestResponse, error) {
	response, err := c.Client.AuthTest()
	if err != nil {
		return nil, err
	}

	return &clients.SlackAuthTestResponse{
		UserID: response.UserID,
		TeamID: response.TeamID,
	}, nil
}

// PostMessage sends a message to a Slack channel
func (c *SlackClient) PostMessage(
	channelID string,
	params clients.SlackMessageParams,
) (*clients.SlackPostMessageResponse, error) {
	var sdkOptions []slack.MsgOption
	if params.Text != "" {
		sdkOptions = append(sdkOptions, slack.MsgOptionText(params.Text, false))
	}
	if len(params.Blocks) > 0 {
		sdkOptions = append(sdkOptions, slack.MsgOptionBlocks(params.Blocks...))
	}
	if threadTS, ok := params.ThreadTS.Get(); ok {
		sdkOptions = append(sdkOptions, slack.MsgOptionTS(threadTS))
	}

	channel, timestamp, err := c.Client.PostMessage(channelID, sdkOptions...)
	if err != nil {
		return nil, err
	}

	return &clients.SlackPostMessageResponse{
		Channel:   channel,
		Timestamp: timestamp,
	}, nil
}

// AddReaction adds a reaction to a message
func (c *SlackClient) AddReaction(name string, item clients.SlackItemRef) error {
	sdkItem := slack.ItemRef{
		Channel:   item.Channel,
		Timestamp: item.Timestamp,
	}
	return c.Client.AddReaction(name, sdkItem)
}

// RemoveReaction removes a reaction from a message
func (c *SlackClient) RemoveReaction(name string, item clients.SlackItemRef) error {
	sdkItem := slack.ItemRef{
		Channel:   item.Channel,
		Timestamp: item.Timestamp,
	}
	return c.Client.RemoveReaction(name, sdkItem)
}

// GetReactions gets the reactions on a message
func (c *SlackClient) GetReactions(
	item clients.SlackItemRef,
	params clients.SlackGetReactionsParameters,
) ([]clients.SlackItemReaction, error) {
	sdkItem := slack.ItemRef{
		Channel:   item.Channel,
		Timestamp: item.Timestamp,
	}
	sdkParams := slack.GetReactionsParameters{} // Our params struct is empty for now

	reactions, err := c.Client.GetReactions(sdkItem, sdkParams)
	if err != nil {
		return nil, err
	}

	var customReactions []clients.SlackItemReaction
	for _, reaction := range reactions {
		customReactions = append(customReactions, clients.SlackItemReaction{
			Name:  reaction.Name,
			Users: reaction.Users,
		})
	}

	return customReactions, nil
}
