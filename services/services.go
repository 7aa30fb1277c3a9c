package services

import (
	"context"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
)

// CatalogService defines the interface for resolving catalog entities from
// free-text queries and external identifiers
type CatalogService interface {
	// FindEntity resolves a free-text query through the ordered fallback
	// cascade: entity name, Slack user id annotation, Jira user id
	// annotation, GitHub login annotation. Result ordering is the
	// catalog's own; an empty slice means no stage matched.
	FindEntity(ctx context.Context, query string) ([]models.Entity, error)

	// FindEntityBySlackID resolves a known Slack user id through the
	// identity annotation filter only, bypassing the cascade.
	FindEntityBySlackID(ctx context.Context, slackUserID string) ([]models.Entity, error)
}
