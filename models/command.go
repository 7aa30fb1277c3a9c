package models

import "github.com/slack-go/slack"

// DispatchResult is the outcome message produced by handling a command.
// Either a plain-text payload, or an ordered sequence of Block Kit blocks
// with Text carried as the notification fallback. A dispatch always
// produces a result, never "no response".
type DispatchResult struct {
	Text   string
	Blocks []slack.Block
}

// NewTextResult builds a plain-text dispatch result
func NewTextResult(text string) *DispatchResult {
	return &DispatchResult{Text: text}
}

// NewBlocksResult builds a structured dispatch result with a plain-text fallback
func NewBlocksResult(fallbackText string, blocks []slack.Block) *DispatchResult {
	return &DispatchResult{Text: fallbackText, Blocks: blocks}
}
