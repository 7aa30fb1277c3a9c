package appctx

import (
	"context"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
)

// Context key for storing the requester's resolved catalog entity
type contextKey string

const RequesterContextKey contextKey = "requester"

// SetRequester adds the requesting user's resolved catalog entity to the event context
func SetRequester(ctx context.Context, entity *models.Entity) context.Context {
	return context.WithValue(ctx, RequesterContextKey, entity)
}

// GetRequester extracts the requester's catalog entity from the event context.
// The second return value is false when identity resolution found zero or
// ambiguous matches for the invoking user.
func GetRequester(ctx context.Context) (*models.Entity, bool) {
	entity, ok := ctx.Value(RequesterContextKey).(*models.Entity)
	return entity, ok
}
