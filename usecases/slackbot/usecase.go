package slackbot

import (
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/clients"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/services"
)

// SlackbotUseCase handles the conversational command pipeline: tokenizing
// mention events, enriching them with the requester's catalog identity,
// dispatching commands against the catalog and rendering the reply.
type SlackbotUseCase struct {
	slackClient    clients.SlackClient
	catalogService services.CatalogService
	renderer       *entityRenderer
}

// NewSlackbotUseCase creates a new instance of SlackbotUseCase
func NewSlackbotUseCase(
	slackClient clients.SlackClient,
	catalogService services.CatalogService,
	backstageBaseURL string,
) *SlackbotUseCase {
	return &SlackbotUseCase{
		slackClient:    slackClient,
		catalogService: catalogService,
		renderer:       newEntityRenderer(catalogService, backstageBaseURL),
	}
}
