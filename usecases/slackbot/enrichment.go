package slackbot

import (
	"context"
	"log"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/appctx"
)

// enrichRequesterContext resolves the invoking user's catalog identity before
// any command logic runs. Zero matches or an ambiguous match set leave the
// requester unset; ambiguity is never silently resolved to a guess. Failing
// to resolve identity never blocks dispatch.
func (u *SlackbotUseCase) enrichRequesterContext(ctx context.Context, slackUserID string) context.Context {
	entities, err := u.catalogService.FindEntityBySlackID(ctx, slackUserID)
	if err != nil {
		log.Printf("⚠️ Failed to resolve identity for Slack user %s: %v - continuing without requester context", slackUserID, err)
		return ctx
	}

	switch len(entities) {
	case 1:
		entity := entities[0]
		log.Printf("✅ Resolved Slack user %s to catalog entity %s", slackUserID, entity.Ref())
		return appctx.SetRequester(ctx, &entity)
	case 0:
		log.Printf("⚠️ No catalog entity is linked to Slack user %s - commands needing identity will see an unknown user", slackUserID)
		return ctx
	default:
		log.Printf("⚠️ Slack user %s is linked to %d catalog entities - leaving ambiguous identity unresolved", slackUserID, len(entities))
		return ctx
	}
}
