package testutils

import (
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
)

// BotUserID is the Slack user id the fixtures use for the bot itself
const BotUserID = "UBOT0001"

// UserElement builds a rich text user-mention element
func UserElement(userID string) models.RichTextElement {
	return models.RichTextElement{Type: models.RichTextElementTypeUser, UserID: userID}
}

// TextElement builds a rich text plain-text element
func TextElement(text string) models.RichTextElement {
	return models.RichTextElement{Type: models.RichTextElementTypeText, Text: text}
}

// MentionEvent builds an app_mention event whose rich text section starts
// with the bot's own mention followed by the given elements
func MentionEvent(elements ...models.RichTextElement) models.SlackMentionEvent {
	sectionElements := append([]models.RichTextElement{UserElement(BotUserID)}, elements...)
	return models.SlackMentionEvent{
		Channel: "C123456",
		User:    "U123456",
		TS:      "1700000000.000100",
		Blocks: []models.RichTextBlock{
			{
				Type: "rich_text",
				Elements: []models.RichTextSection{
					{Type: "rich_text_section", Elements: sectionElements},
				},
			},
		},
	}
}

// NewUserEntity builds a minimal User catalog entity fixture
func NewUserEntity(name string) models.Entity {
	return models.Entity{
		Kind: models.EntityKindUser,
		Metadata: models.EntityMetadata{
			Name:        name,
			Annotations: map[string]string{},
		},
	}
}

// NewGroupEntity builds a minimal Group catalog entity fixture
func NewGroupEntity(name string, members ...string) models.Entity {
	return models.Entity{
		Kind: models.EntityKindGroup,
		Metadata: models.EntityMetadata{
			Name:        name,
			Annotations: map[string]string{},
		},
		Spec: models.EntitySpec{Members: members},
	}
}

// NewSystemEntity builds a minimal System catalog entity fixture
func NewSystemEntity(name string) models.Entity {
	return models.Entity{
		Kind: models.EntityKindSystem,
		Metadata: models.EntityMetadata{
			Name:        name,
			Annotations: map[string]string{},
		},
	}
}

// NewComponentEntity builds a minimal Component catalog entity fixture
func NewComponentEntity(name string) models.Entity {
	return models.Entity{
		Kind: models.EntityKindComponent,
		Metadata: models.EntityMetadata{
			Name:        name,
			Annotations: map[string]string{},
		},
	}
}
