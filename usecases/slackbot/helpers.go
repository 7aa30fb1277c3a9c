package slackbot

import (
	"fmt"
	"log"
	"slices"

	"github.com/samber/mo"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/clients"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/utils"
)

// Status indicator reactions attached to the triggering message. Pending is
// always cleared once dispatch finishes, whatever the outcome.
const (
	reactionPending = "hourglass"
	reactionSuccess = "white_check_mark"
	reactionFailure = "x"
)

// sendDispatchResult delivers the outcome message into the mention's thread
func (u *SlackbotUseCase) sendDispatchResult(
	event models.SlackMentionEvent,
	result *models.DispatchResult,
) error {
	log.Printf("📋 Starting to send dispatch result to channel %s, thread %s", event.Channel, event.ReplyThreadTS())

	params := clients.SlackMessageParams{
		Text:     utils.ConvertMarkdownToSlack(result.Text),
		Blocks:   result.Blocks,
		ThreadTS: mo.Some(event.ReplyThreadTS()),
	}
	if _, err := u.slackClient.PostMessage(event.Channel, params); err != nil {
		return fmt.Errorf("failed to send message to Slack: %w", err)
	}

	log.Printf("📋 Completed successfully - sent dispatch result to channel %s", event.Channel)
	return nil
}

// addStatusReaction attaches a status indicator. Indicator failures are
// logged, never fatal: the indicator is purely observational.
func (u *SlackbotUseCase) addStatusReaction(eventID, name string, item clients.SlackItemRef) {
	if err := u.slackClient.AddReaction(name, item); err != nil {
		log.Printf("⚠️ [%s] Failed to add %s reaction: %v", eventID, name, err)
	}
}

// clearPendingReaction removes the pending indicator. Runs as the final step
// of every event, whatever path dispatch took. Only reactions the bot itself
// attached are removed.
func (u *SlackbotUseCase) clearPendingReaction(eventID string, item clients.SlackItemRef) {
	botReactions, err := u.getBotReactionsOnMessage(item)
	if err != nil {
		log.Printf("⚠️ [%s] Failed to inspect bot reactions: %v - removing pending reaction anyway", eventID, err)
	} else if !slices.Contains(botReactions, reactionPending) {
		log.Printf("⏭️ [%s] Pending reaction was never attached - nothing to clear", eventID)
		return
	}

	if err := u.slackClient.RemoveReaction(reactionPending, item); err != nil {
		log.Printf("⚠️ [%s] Failed to remove pending reaction: %v", eventID, err)
		return
	}
	log.Printf("✅ [%s] Cleared pending reaction", eventID)
}

func (u *SlackbotUseCase) getBotUserID() (string, error) {
	authTest, err := u.slackClient.AuthTest()
	if err != nil {
		return "", fmt.Errorf("failed to get bot user ID: %w", err)
	}
	return authTest.UserID, nil
}

func (u *SlackbotUseCase) getBotReactionsOnMessage(item clients.SlackItemRef) ([]string, error) {
	botUserID, err := u.getBotUserID()
	if err != nil {
		return nil, err
	}

	reactions, err := u.slackClient.GetReactions(item, clients.SlackGetReactionsParameters{})
	if err != nil {
		return nil, fmt.Errorf("failed to get reactions: %w", err)
	}

	var botReactions []string
	for _, reaction := range reactions {
		if slices.Contains(reaction.Users, botUserID) {
			botReactions = append(botReactions, reaction.Name)
		}
	}

	return botReactions, nil
}
