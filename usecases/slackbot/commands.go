package slackbot

import (
	"context"
	"fmt"
	"log"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/appctx"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
)

// Command grammar. Tokens are lowercased by the tokenizer, so the findSlack
// convenience path matches on its lowercase form.
const (
	CommandHelp      = "help"
	CommandWhoami    = "whoami"
	CommandFind      = "find"
	CommandFindSlack = "findslack"
)

// dispatchCommand routes a non-empty token sequence to its command variant.
// Every variant produces a result; unexpected errors bubble up to the
// dispatch boundary in events.go where they become a generic apology.
func (u *SlackbotUseCase) dispatchCommand(
	ctx context.Context,
	tokens []string,
) (*models.DispatchResult, error) {
	switch {
	case len(tokens) == 1 && tokens[0] == CommandWhoami:
		return u.handleWhoami(ctx), nil
	case len(tokens) == 2 && tokens[0] == CommandFind:
		return u.handleFind(ctx, tokens[1])
	case len(tokens) == 2 && tokens[0] == CommandFindSlack:
		return u.handleFindSlack(ctx, tokens[1])
	default:
		// Anything unrecognized, including an explicit "help", renders help
		return u.renderer.RenderHelp(), nil
	}
}

func (u *SlackbotUseCase) handleWhoami(ctx context.Context) *models.DispatchResult {
	requester, ok := appctx.GetRequester(ctx)
	if !ok {
		log.Printf("⏭️ whoami requested but no requester identity was resolved")
		return u.renderer.RenderMissingPerson()
	}
	return u.renderer.RenderEntity(ctx, requester)
}

func (u *SlackbotUseCase) handleFind(ctx context.Context, query string) (*models.DispatchResult, error) {
	entities, err := u.catalogService.FindEntity(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve query %q: %w", query, err)
	}

	switch len(entities) {
	case 0:
		return models.NewTextResult(noMatchMessage(query)), nil
	case 1:
		return u.renderer.RenderEntity(ctx, &entities[0]), nil
	}

	// In a name collision that contains exactly one System, the System wins.
	// Other kinds get no such privilege; any other tie stays ambiguous.
	var systems []models.Entity
	for _, entity := range entities {
		if entity.Kind == models.EntityKindSystem {
			systems = append(systems, entity)
		}
	}
	if len(systems) == 1 {
		log.Printf("🔍 Reduced %d matches for %s to the unique System entity", len(entities), query)
		return u.renderer.RenderEntity(ctx, &systems[0]), nil
	}

	log.Printf("⏭️ Query %s matched %d entities with no unambiguous reduction", query, len(entities))
	return models.NewTextResult(ambiguousMatchMessage(query, len(entities))), nil
}

func (u *SlackbotUseCase) handleFindSlack(ctx context.Context, slackUserID string) (*models.DispatchResult, error) {
	entities, err := u.catalogService.FindEntityBySlackID(ctx, slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve slack user %q: %w", slackUserID, err)
	}

	if len(entities) != 1 {
		log.Printf("⏭️ Slack user %s resolved to %d catalog entities", slackUserID, len(entities))
		return models.NewTextResult(unlinkedSlackUserMessage(slackUserID)), nil
	}
	return u.renderer.RenderEntity(ctx, &entities[0]), nil
}
