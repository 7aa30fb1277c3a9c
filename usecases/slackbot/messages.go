package slackbot

import "fmt"

const missingPersonMessage = "Hmm, it seems we've never met. I couldn't find that person in the catalog."

// genericFailureMessage is the dispatch-boundary apology. Command-level
// apologies (no match, ambiguous match, unlinked user) are distinct from it.
const genericFailureMessage = "😕 Something went wrong while I was handling that. Please try again shortly."

func malformedEventMessage(eventID string) string {
	return fmt.Sprintf(
		"I received your mention but its payload was missing, so I'm not sure what you're asking. "+
			"If this keeps happening, quote event %s when reporting it.", eventID)
}

func noMatchMessage(query string) string {
	return fmt.Sprintf("I don't know anything about %s, sorry!", query)
}

func ambiguousMatchMessage(query string, count int) string {
	return fmt.Sprintf(
		"Sorry, I found %d catalog entries matching %s and I'm not sure which one you meant. "+
			"Try a more specific name?", count, query)
}

func unlinkedSlackUserMessage(slackUserID string) string {
	return fmt.Sprintf(
		"Sorry, <@%s> doesn't seem to be linked to anything in the catalog.", slackUserID)
}
