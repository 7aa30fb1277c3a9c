package models

// SlackMentionEvent is an app_mention event delivered by the Slack Events API
type SlackMentionEvent struct {
	Channel  string          `json:"channel"`
	User     string          `json:"user"`
	Text     string          `json:"text"`
	TS       string          `json:"ts"`
	ThreadTS string          `json:"thread_ts,omitempty"`
	Blocks   []RichTextBlock `json:"blocks,omitempty"`
}

// ReplyThreadTS returns the thread the bot should reply into: the existing
// thread when the mention happened inside one, otherwise the mention itself.
func (e *SlackMentionEvent) ReplyThreadTS() string {
	if e.ThreadTS != "" {
		return e.ThreadTS
	}
	return e.TS
}

// RichTextBlock is the structured text representation of a Slack message.
// An app_mention message carries a single rich_text block whose first section
// holds the bot mention followed by the remaining message elements.
type RichTextBlock struct {
	Type     string            `json:"type"`
	Elements []RichTextSection `json:"elements"`
}

// RichTextSection is one section of a rich text block
type RichTextSection struct {
	Type     string            `json:"type"`
	Elements []RichTextElement `json:"elements"`
}

// Rich text element types the tokenizer cares about
const (
	RichTextElementTypeUser = "user"
	RichTextElementTypeText = "text"
)

// RichTextElement is a leaf element inside a rich text section
type RichTextElement struct {
	Type   string `json:"type"`
	UserID string `json:"user_id,omitempty"`
	Text   string `json:"text,omitempty"`
}
