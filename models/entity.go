package models

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// EntityKind identifies the catalog record variant. The catalog never changes
// an entity's kind after it has been issued.
type EntityKind string

const (
	EntityKindUser      EntityKind = "User"
	EntityKindGroup     EntityKind = "Group"
	EntityKindSystem    EntityKind = "System"
	EntityKindComponent EntityKind = "Component"
)

// Well-known annotation keys consumed when resolving and rendering entities
const (
	AnnotationSlackUserID = "slack.com/user-id"
	AnnotationJiraUserID  = "jira.com/user-id"
	AnnotationGithubLogin = "github.com/user-login"
	AnnotationEditURL     = "backstage.io/edit-url"
)

// RelationHasPart is the relation type linking a system to its components
const RelationHasPart = "hasPart"

// Entity is a record returned by the Backstage catalog API
type Entity struct {
	Kind      EntityKind       `json:"kind"`
	Metadata  EntityMetadata   `json:"metadata"`
	Spec      EntitySpec       `json:"spec"`
	Relations []EntityRelation `json:"relations"`
}

// EntityMetadata holds the kind-independent attributes of a catalog entity
type EntityMetadata struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
	Links       []EntityLink      `json:"links,omitempty"`
}

// EntitySpec holds the kind-specific attributes. Fields irrelevant to a given
// kind are simply absent in the catalog payload.
type EntitySpec struct {
	Profile      EntityProfile `json:"profile"`
	Members      []string      `json:"members,omitempty"`
	SlackChannel string        `json:"slackChannel,omitempty"`
	Owner        string        `json:"owner,omitempty"`
	Type         string        `json:"type,omitempty"`
}

// EntityProfile holds a person's or team's display profile
type EntityProfile struct {
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// EntityLink is an outbound link attached to an entity
type EntityLink struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// EntityRelation is an outbound relation edge, e.g. hasPart -> component:default/api
type EntityRelation struct {
	Type      string `json:"type"`
	TargetRef string `json:"targetRef"`
}

// Annotation returns the annotation value for the given key, if present
func (e *Entity) Annotation(key string) mo.Option[string] {
	if e.Metadata.Annotations == nil {
		return mo.None[string]()
	}
	value, ok := e.Metadata.Annotations[key]
	if !ok || value == "" {
		return mo.None[string]()
	}
	return mo.Some(value)
}

// DisplayName returns the profile display name, falling back to the entity name
func (e *Entity) DisplayName() string {
	if e.Spec.Profile.DisplayName != "" {
		return e.Spec.Profile.DisplayName
	}
	return e.Metadata.Name
}

// Description returns the free-text description, if present
func (e *Entity) Description() mo.Option[string] {
	if e.Metadata.Description == "" {
		return mo.None[string]()
	}
	return mo.Some(e.Metadata.Description)
}

// Ref returns the canonical entity reference, e.g. user:default/jdoe
func (e *Entity) Ref() string {
	return fmt.Sprintf("%s:default/%s", strings.ToLower(string(e.Kind)), e.Metadata.Name)
}

// ParseEntityRefName extracts the bare entity name from a reference such as
// "group:default/platform-team". Plain names pass through unchanged.
func ParseEntityRefName(ref string) string {
	name := ref
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
