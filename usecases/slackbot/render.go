package slackbot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/slack-go/slack"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/models"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/services"
)

// Placeholder phrases substituted when optional catalog data is absent
const (
	placeholderDescription = "We don't know much about them but we're sure they're lovely!"
	placeholderRole        = "Mystery Role"
	placeholderNotFound    = "Not Found"
)

// entityRenderer builds the chat reply for a resolved catalog entity. It is
// polymorphic over the entity kind with an explicit unknown-kind fallback, so
// rendering never fails merely because a kind has no dedicated layout.
type entityRenderer struct {
	catalogService   services.CatalogService
	backstageBaseURL string
}

func newEntityRenderer(catalogService services.CatalogService, backstageBaseURL string) *entityRenderer {
	return &entityRenderer{
		catalogService:   catalogService,
		backstageBaseURL: backstageBaseURL,
	}
}

func (r *entityRenderer) RenderEntity(ctx context.Context, entity *models.Entity) *models.DispatchResult {
	switch entity.Kind {
	case models.EntityKindUser:
		return r.renderUser(entity)
	case models.EntityKindGroup:
		return r.renderGroup(ctx, entity)
	case models.EntityKindSystem:
		return r.renderSystem(entity)
	default:
		return r.renderUnknownKind(entity)
	}
}

func (r *entityRenderer) renderUser(entity *models.Entity) *models.DispatchResult {
	timezone := entity.Spec.Profile.Timezone
	if timezone == "" {
		timezone = placeholderNotFound
	}
	slackHandle := placeholderNotFound
	if id, ok := entity.Annotation(models.AnnotationSlackUserID).Get(); ok {
		slackHandle = fmt.Sprintf("<@%s>", id)
	}
	jiraHandle := entity.Annotation(models.AnnotationJiraUserID).OrElse(placeholderNotFound)
	githubHandle := entity.Annotation(models.AnnotationGithubLogin).OrElse(placeholderNotFound)

	relationLines := make([]string, 0, len(entity.Relations))
	for _, relation := range entity.Relations {
		relationLines = append(relationLines, fmt.Sprintf("%s %s", relation.Type, relation.TargetRef))
	}
	relationsText := strings.Join(relationLines, "\n")
	if relationsText == "" {
		relationsText = "No relations found"
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(plainText(entity.DisplayName())),
		slack.NewSectionBlock(mrkdwnText(entity.Description().OrElse(placeholderDescription)), nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			mrkdwnText(fmt.Sprintf("*Timezone*\n%s", timezone)),
			mrkdwnText(fmt.Sprintf("*Slack*\n%s", slackHandle)),
			mrkdwnText(fmt.Sprintf("*Jira*\n%s", jiraHandle)),
			mrkdwnText(fmt.Sprintf("*GitHub*\n%s", githubHandle)),
		}, nil),
		slack.NewSectionBlock(mrkdwnText(fmt.Sprintf("*Relations*\n%s", relationsText)), nil, nil),
	}
	blocks = append(blocks, r.closingPromptBlocks(entity)...)

	return models.NewBlocksResult(entity.DisplayName(), blocks)
}

func (r *entityRenderer) renderGroup(ctx context.Context, entity *models.Entity) *models.DispatchResult {
	contactChannel := entity.Spec.SlackChannel
	if contactChannel == "" {
		contactChannel = placeholderNotFound
	}

	memberLines := make([]string, 0, len(entity.Spec.Members))
	for _, memberRef := range entity.Spec.Members {
		memberLines = append(memberLines, r.renderGroupMember(ctx, memberRef))
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(plainText(entity.DisplayName())),
		slack.NewSectionBlock(mrkdwnText(entity.Description().OrElse(placeholderDescription)), nil, nil),
		slack.NewSectionBlock(mrkdwnText(fmt.Sprintf("*Contact:* %s", contactChannel)), nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(mrkdwnText(titledBulletList("Members", memberLines)), nil, nil),
		slack.NewSectionBlock(mrkdwnText(titledBulletList("Links", linkLines(entity.Metadata.Links))), nil, nil),
	}
	blocks = append(blocks, r.closingPromptBlocks(entity)...)

	return models.NewBlocksResult(entity.DisplayName(), blocks)
}

// renderGroupMember resolves a member reference through the cascade to obtain
// a display name and role. Member lookups degrade to the raw identifier; a
// member that cannot be resolved never sinks the whole rendering.
func (r *entityRenderer) renderGroupMember(ctx context.Context, memberRef string) string {
	memberName := models.ParseEntityRefName(memberRef)

	matches, err := r.catalogService.FindEntity(ctx, memberName)
	if err != nil {
		log.Printf("⚠️ Failed to resolve group member %s: %v - falling back to raw identifier", memberRef, err)
		return fmt.Sprintf("%s (%s)", memberName, placeholderRole)
	}
	if len(matches) != 1 {
		log.Printf("⏭️ Group member %s resolved to %d entities - falling back to raw identifier", memberRef, len(matches))
		return fmt.Sprintf("%s (%s)", memberName, placeholderRole)
	}

	member := matches[0]
	role := member.Description().OrElse(placeholderRole)
	return fmt.Sprintf("%s (%s)", member.DisplayName(), role)
}

func (r *entityRenderer) renderSystem(entity *models.Entity) *models.DispatchResult {
	ownerLine := placeholderNotFound
	if entity.Spec.Owner != "" {
		ownerName := models.ParseEntityRefName(entity.Spec.Owner)
		ownerLine = fmt.Sprintf("<%s|%s> - try `find %s` to learn more about them",
			r.catalogPageURL("group", ownerName), ownerName, ownerName)
	}

	var componentLines []string
	for _, relation := range entity.Relations {
		if relation.Type != models.RelationHasPart {
			continue
		}
		if !strings.HasPrefix(relation.TargetRef, "component:") {
			continue
		}
		componentLines = append(componentLines, models.ParseEntityRefName(relation.TargetRef))
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(plainText(entity.Metadata.Name)),
		slack.NewSectionBlock(mrkdwnText(entity.Description().OrElse(placeholderDescription)), nil, nil),
		slack.NewSectionBlock(mrkdwnText(fmt.Sprintf("*Owner:* %s", ownerLine)), nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(mrkdwnText(titledBulletList("Components", componentLines)), nil, nil),
		slack.NewSectionBlock(mrkdwnText(titledBulletList("Links", linkLines(entity.Metadata.Links))), nil, nil),
	}
	blocks = append(blocks, r.closingPromptBlocks(entity)...)

	return models.NewBlocksResult(entity.Metadata.Name, blocks)
}

// renderUnknownKind links out to the catalog web UI rather than failing on a
// kind with no dedicated layout
func (r *entityRenderer) renderUnknownKind(entity *models.Entity) *models.DispatchResult {
	return models.NewTextResult(fmt.Sprintf(
		"I'm not sure how to present a %s yet but you can view %s in Backstage: %s",
		entity.Kind, entity.Metadata.Name,
		r.catalogPageURL(strings.ToLower(string(entity.Kind)), entity.Metadata.Name)))
}

// RenderHelp renders the static help content
func (r *entityRenderer) RenderHelp() *models.DispatchResult {
	blocks := []slack.Block{
		slack.NewHeaderBlock(plainText("How to talk to me")),
		slack.NewSectionBlock(mrkdwnText(strings.Join([]string{
			"• `whoami` — look up your own catalog entry",
			"• `find <query>` — look up a person, team or system by name or handle",
			"• Tag someone right after mentioning me to look them up directly",
			"• `help` — show this message",
		}, "\n")), nil, nil),
		slack.NewContextBlock("help_footer",
			mrkdwnText(fmt.Sprintf("Everything I know comes from <%s|the catalog>.", r.backstageBaseURL))),
	}
	return models.NewBlocksResult("How to talk to me", blocks)
}

// closingPromptBlocks invites the user to correct the entity's data. When the
// entity carries an edit URL the prompt gains a button straight to it.
func (r *entityRenderer) closingPromptBlocks(entity *models.Entity) []slack.Block {
	if editURL, ok := entity.Annotation(models.AnnotationEditURL).Get(); ok {
		button := slack.NewButtonBlockElement("edit_entity", entity.Metadata.Name,
			plainText("Edit in Backstage"))
		button.URL = editURL
		return []slack.Block{
			slack.NewSectionBlock(mrkdwnText("Is something wrong with this info? You can fix it yourself:"), nil, nil),
			slack.NewActionBlock("entity_actions", button),
		}
	}
	return []slack.Block{
		slack.NewContextBlock("closing_prompt",
			mrkdwnText("Is something wrong with this info? Ask the owners to update their catalog file.")),
	}
}

func (r *entityRenderer) catalogPageURL(kind, name string) string {
	return fmt.Sprintf("%s/catalog/default/%s/%s", r.backstageBaseURL, kind, name)
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

func mrkdwnText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

// titledBulletList renders a bold title over a bulleted list. Absent or empty
// source data degrades to the bare title rather than failing.
func titledBulletList(title string, lines []string) string {
	if len(lines) == 0 {
		return fmt.Sprintf("*%s*", title)
	}
	return fmt.Sprintf("*%s*\n• %s", title, strings.Join(lines, "\n• "))
}

func linkLines(links []models.EntityLink) []string {
	lines := make([]string, 0, len(links))
	for _, link := range links {
		title := link.Title
		if title == "" {
			title = link.URL
		}
		lines = append(lines, fmt.Sprintf("<%s|%s>", link.URL, title))
	}
	return lines
}

// RenderMissingPerson renders the fixed reply for an identity lookup that
// found nobody
func (r *entityRenderer) RenderMissingPerson() *models.DispatchResult {
	return models.NewTextResult(missingPersonMessage)
}
