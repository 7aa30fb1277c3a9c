package slackbot

import (
	"errors"
	"strings"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
)

// ErrMalformedMention signals that the event carried a rich text structure
// but the mention payload inside it was entirely missing. Unlike a plain
// missing structure this is worth telling the user about.
var ErrMalformedMention = errors.New("mention payload missing from rich text structure")

// TokenizeMention extracts the normalized command token sequence from a
// mention event's rich text blocks. An empty sequence means the event carries
// no command and should be ignored. Pure function of the block structure.
func TokenizeMention(blocks []models.RichTextBlock) ([]string, error) {
	if len(blocks) == 0 {
		return nil, nil
	}
	sections := blocks[0].Elements
	if len(sections) == 0 {
		return nil, nil
	}
	elements := sections[0].Elements
	if len(elements) == 0 {
		return nil, ErrMalformedMention
	}

	switch {
	case len(elements) == 1:
		// A message that merely references the bot in passing is not a command
		return nil, nil
	case len(elements) == 3 && elements[2].Type == models.RichTextElementTypeUser:
		// Tagging a user right after the mention is shorthand for looking them up
		return []string{CommandFindSlack, elements[2].UserID}, nil
	case len(elements) > 2:
		// Any shape beyond the recognized ones reads as a request for help
		return []string{CommandHelp}, nil
	}

	tokens := strings.Fields(elements[1].Text)
	for i, token := range tokens {
		tokens[i] = strings.ToLower(token)
	}
	return tokens, nil
}
