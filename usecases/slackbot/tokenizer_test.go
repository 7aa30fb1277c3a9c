package slackbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/testutils"
)

func TestTokenizeMention(t *testing.T) {
	t.Run("NoBlocks_IgnoresEvent", func(t *testing.T) {
		tokens, err := TokenizeMention(nil)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("NoSections_IgnoresEvent", func(t *testing.T) {
		tokens, err := TokenizeMention([]models.RichTextBlock{{Type: "rich_text"}})
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("EmptyMentionPayload_Malformed", func(t *testing.T) {
		blocks := []models.RichTextBlock{
			{
				Type:     "rich_text",
				Elements: []models.RichTextSection{{Type: "rich_text_section"}},
			},
		}
		tokens, err := TokenizeMention(blocks)
		require.ErrorIs(t, err, ErrMalformedMention)
		assert.Empty(t, tokens)
	})

	t.Run("BotMentionOnly_IgnoresEvent", func(t *testing.T) {
		event := testutils.MentionEvent()
		tokens, err := TokenizeMention(event.Blocks)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("FreeText_SplitsAndLowercases", func(t *testing.T) {
		event := testutils.MentionEvent(testutils.TextElement(" FIND Cool-Tuna "))
		tokens, err := TokenizeMention(event.Blocks)
		require.NoError(t, err)
		assert.Equal(t, []string{"find", "cool-tuna"}, tokens)
	})

	t.Run("WhitespaceOnlyText_IgnoresEvent", func(t *testing.T) {
		event := testutils.MentionEvent(testutils.TextElement("   "))
		tokens, err := TokenizeMention(event.Blocks)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("TaggedUser_YieldsFindSlack", func(t *testing.T) {
		event := testutils.MentionEvent(testutils.TextElement(" "), testutils.UserElement("U987654"))
		tokens, err := TokenizeMention(event.Blocks)
		require.NoError(t, err)
		assert.Equal(t, []string{CommandFindSlack, "U987654"}, tokens)
	})

	t.Run("ThreeElements_ThirdNotUser_YieldsHelp", func(t *testing.T) {
		event := testutils.MentionEvent(testutils.TextElement("find"), testutils.TextElement("extra"))
		tokens, err := TokenizeMention(event.Blocks)
		require.NoError(t, err)
		assert.Equal(t, []string{CommandHelp}, tokens)
	})

	t.Run("MoreElementsThanRecognizedShapes_YieldsHelp", func(t *testing.T) {
		event := testutils.MentionEvent(
			testutils.TextElement("find"),
			testutils.UserElement("U987654"),
			testutils.TextElement("and more"),
		)
		tokens, err := TokenizeMention(event.Blocks)
		require.NoError(t, err)
		assert.Equal(t, []string{CommandHelp}, tokens)
	})
}
