package slackbot

import (
	"strings"
	"testing"

	"github.com/slack-go/slack"

	slackclient "github.com/marcus-crane/backstage-plugin-slackbot-backend/clients/slack"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/services/catalog"
)

const testBackstageBaseURL = "https://backstage.example.com"

func setupSlackbotUseCase(t *testing.T) (*SlackbotUseCase, *slackclient.MockSlackClient, *catalog.MockCatalogService) {
	t.Helper()
	mockSlackClient := new(slackclient.MockSlackClient)
	mockCatalogService := new(catalog.MockCatalogService)
	useCase := NewSlackbotUseCase(mockSlackClient, mockCatalogService, testBackstageBaseURL)
	return useCase, mockSlackClient, mockCatalogService
}

// collectBlockText flattens the human-visible text of a block sequence so
// tests can assert on rendered content without mirroring block structure
func collectBlockText(blocks []slack.Block) string {
	var sb strings.Builder
	for _, block := range blocks {
		switch b := block.(type) {
		case *slack.HeaderBlock:
			if b.Text != nil {
				sb.WriteString(b.Text.Text + "\n")
			}
		case *slack.SectionBlock:
			if b.Text != nil {
				sb.WriteString(b.Text.Text + "\n")
			}
			for _, field := range b.Fields {
				sb.WriteString(field.Text + "\n")
			}
		case *slack.ContextBlock:
			for _, element := range b.ContextElements.Elements {
				if text, ok := element.(*slack.TextBlockObject); ok {
					sb.WriteString(text.Text + "\n")
				}
			}
		}
	}
	return sb.String()
}
