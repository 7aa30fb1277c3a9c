package slackbot

import (
	"context"
	"fmt"
	"log"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/clients"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/core"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/utils"
)

// ProcessAppMentionEvent runs the full pipeline for one mention event:
// identity enrichment, pending indicator, tokenizing, dispatch, delivery and
// the success/failure indicator. The pending indicator is cleared on every
// exit path, including panics inside command handling.
func (u *SlackbotUseCase) ProcessAppMentionEvent(ctx context.Context, event models.SlackMentionEvent) error {
	eventID := core.NewID("evt")
	log.Printf("📋 [%s] Starting to process app mention from %s in %s: %s",
		eventID, event.User, event.Channel, utils.StripMentions(event.Text))

	ctx = u.enrichRequesterContext(ctx, event.User)

	item := clients.SlackItemRef{Channel: event.Channel, Timestamp: event.TS}
	u.addStatusReaction(eventID, reactionPending, item)
	defer u.clearPendingReaction(eventID, item)

	tokens, tokenizeErr := TokenizeMention(event.Blocks)
	if tokenizeErr == nil && len(tokens) == 0 {
		log.Printf("⏭️ [%s] Mention carries no command - ignoring event", eventID)
		return nil
	}

	if err := u.runDispatch(ctx, event, tokens, tokenizeErr, eventID); err != nil {
		log.Printf("❌ [%s] Dispatch failed: %v", eventID, err)
		u.addStatusReaction(eventID, reactionFailure, item)
		if apologyErr := u.sendDispatchResult(event, models.NewTextResult(genericFailureMessage)); apologyErr != nil {
			log.Printf("⚠️ [%s] Failed to send failure apology: %v", eventID, apologyErr)
		}
		return fmt.Errorf("failed to process app mention event: %w", err)
	}

	u.addStatusReaction(eventID, reactionSuccess, item)
	log.Printf("📋 [%s] Completed successfully - processed app mention event", eventID)
	return nil
}

// runDispatch executes the selected command variant and delivers its result.
// A panic inside a handler surfaces as an error here so that the caller can
// mark the event failed without the process going down.
func (u *SlackbotUseCase) runDispatch(
	ctx context.Context,
	event models.SlackMentionEvent,
	tokens []string,
	tokenizeErr error,
	eventID string,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while handling command: %v", r)
		}
	}()

	var result *models.DispatchResult
	if tokenizeErr != nil {
		// Structure was present but the mention payload was missing entirely;
		// tell the user with enough detail to report it.
		log.Printf("⚠️ [%s] Malformed mention event: %v", eventID, tokenizeErr)
		result = models.NewTextResult(malformedEventMessage(eventID))
	} else {
		result, err = u.dispatchCommand(ctx, tokens)
		if err != nil {
			return err
		}
	}

	return u.sendDispatchResult(event, result)
}
