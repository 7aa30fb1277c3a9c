package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/clients"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
)

// CatalogService resolves directory entities through an ordered sequence of
// filtered reads against the Backstage catalog
type CatalogService struct {
	backstageClient clients.BackstageClient
}

func NewCatalogService(backstageClient clients.BackstageClient) *CatalogService {
	return &CatalogService{backstageClient: backstageClient}
}

// cascadeFilters returns the fallback filters evaluated in fixed order for a
// free-text query. No stage is attempted once an earlier stage matches.
func cascadeFilters(query string) []string {
	return []string{
		fmt.Sprintf("metadata.name=%s", query),
		slackIDFilter(query),
		fmt.Sprintf("metadata.annotations.%s=%s", models.AnnotationJiraUserID, query),
		fmt.Sprintf("metadata.annotations.%s=%s", models.AnnotationGithubLogin, query),
	}
}

func slackIDFilter(slackUserID string) string {
	return fmt.Sprintf("metadata.annotations.%s=%s", models.AnnotationSlackUserID, slackUserID)
}

func (s *CatalogService) FindEntity(ctx context.Context, query string) ([]models.Entity, error) {
	log.Printf("📋 Starting to resolve catalog entity for query: %s", query)

	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	for _, filter := range cascadeFilters(query) {
		entities, err := s.backstageClient.QueryEntities(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to query catalog with filter %q: %w", filter, err)
		}
		if len(entities) > 0 {
			log.Printf("📋 Completed successfully - resolved %d entities for query %s via filter %s", len(entities), query, filter)
			return entities, nil
		}
		log.Printf("🔍 No match for query %s via filter %s - trying next stage", query, filter)
	}

	log.Printf("📋 Completed successfully - no catalog entity matched query: %s", query)
	return nil, nil
}

func (s *CatalogService) FindEntityBySlackID(ctx context.Context, slackUserID string) ([]models.Entity, error) {
	log.Printf("📋 Starting to resolve catalog entity for Slack user: %s", slackUserID)

	if slackUserID == "" {
		return nil, fmt.Errorf("slack_user_id cannot be empty")
	}

	entities, err := s.backstageClient.QueryEntities(ctx, slackIDFilter(slackUserID))
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog by slack user id: %w", err)
	}

	log.Printf("📋 Completed successfully - resolved %d entities for Slack user %s", len(entities), slackUserID)
	return entities, nil
}
