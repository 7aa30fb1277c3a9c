package utils

import (
	"regexp"
	"strings"
)

func AssertInvariant(condition bool, message string) {
	if !condition {
		panic("invariant violated - " + message)
	}
}

// ConvertMarkdownToSlack rewrites common markdown constructs into Slack mrkdwn
func ConvertMarkdownToSlack(message string) string {
	result := message

	// Convert markdown links [text](url) to Slack format <url|text>
	// This must be done first to avoid conflicts with other formatting
	linkRegex := regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	result = linkRegex.ReplaceAllString(result, "<$2|$1>")

	// Headings become Slack bold lines, with any embedded bold collapsed
	headingRegex := regexp.MustCompile(`(?m)^#+\s*(.+)$`)
	result = headingRegex.ReplaceAllStringFunc(result, func(match string) string {
		content := regexp.MustCompile(`^#+\s*(.+)$`).ReplaceAllString(match, "$1")
		boldRegex := regexp.MustCompile(`\*\*(.+?)\*\*`)
		content = boldRegex.ReplaceAllString(content, "$1")
		return "*" + content + "*"
	})

	// Convert remaining **text** (double asterisks) to *text* (single asterisks)
	boldRegex := regexp.MustCompile(`\*\*(.+?)\*\*`)
	result = boldRegex.ReplaceAllString(result, "*$1*")

	return result
}

// StripMentions removes Slack mentions (<@USER_ID> or <@USER_ID|username>) from message text
func StripMentions(text string) string {
	mentionRegex := regexp.MustCompile(`<@[^>|]+(?:\|[^>]+)?>`)
	return strings.TrimSpace(mentionRegex.ReplaceAllString(text, ""))
}
