package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SectionType tags every section variant.
type SectionType string

const (
	SectionHero           SectionType = "hero"
	SectionAbout          SectionType = "about"
	SectionTechStack      SectionType = "tech-stack"
	SectionGitHubStats    SectionType = "github-stats"
	SectionProjects       SectionType = "projects"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionAchievements   SectionType = "achievements"
	SectionBlogPosts      SectionType = "blog-posts"
	SectionContact        SectionType = "contact"
	SectionSocials        SectionType = "socials"
	SectionQuote          SectionType = "quote"
	SectionDivider        SectionType = "divider"
	SectionSpacer         SectionType = "spacer"
	SectionCustomMarkdown SectionType = "custom-markdown"
	SectionCustomHTML     SectionType = "custom-html"
	SectionSpotify        SectionType = "spotify"
	SectionWakaTime       SectionType = "wakatime"
	SectionContributions  SectionType = "contributions"
	SectionPinnedRepos    SectionType = "pinned-repos"
)

var contentFactories = map[SectionType]func() Content{
	SectionHero:           func() Content { return &HeroContent{} },
	SectionAbout:          func() Content { return &AboutContent{} },
	SectionTechStack:      func() Content { return &TechStackContent{} },
	SectionGitHubStats:    func() Content { return &GitHubStatsContent{} },
	SectionProjects:       func() Content { return &ProjectsContent{} },
	SectionExperience:     func() Content { return &ExperienceContent{} },
	SectionEducation:      func() Content { return &EducationContent{} },
	SectionAchievements:   func() Content { return &AchievementsContent{} },
	SectionBlogPosts:      func() Content { return &BlogPostsContent{} },
	SectionContact:        func() Content { return &ContactContent{} },
	SectionSocials:        func() Content { return &SocialsContent{} },
	SectionQuote:          func() Content { return &QuoteContent{} },
	SectionDivider:        func() Content { return &DividerContent{} },
	SectionSpacer:         func() Content { return &SpacerContent{} },
	SectionCustomMarkdown: func() Content { return &CustomMarkdownContent{} },
	SectionCustomHTML:     func() Content { return &CustomHTMLContent{} },
	SectionSpotify:        func() Content { return &SpotifyContent{} },
	SectionWakaTime:       func() Content { return &WakaTimeContent{} },
	SectionContributions:  func() Content { return &ContributionsContent{} },
	SectionPinnedRepos:    func() Content { return &PinnedReposContent{} },
}

var sectionTypes = []SectionType{
	SectionHero,
	SectionAbout,
	SectionTechStack,
	SectionGitHubStats,
	SectionProjects,
	SectionExperience,
	SectionEducation,
	SectionAchievements,
	SectionBlogPosts,
	SectionContact,
	SectionSocials,
	SectionQuote,
	SectionDivider,
	SectionSpacer,
	SectionCustomMarkdown,
	SectionCustomHTML,
	SectionSpotify,
	SectionWakaTime,
	SectionContributions,
	SectionPinnedRepos,
}

// AllSectionTypes returns the closed set of section types in declaration
// order.
func AllSectionTypes() []SectionType {
	return append([]SectionType(nil), sectionTypes...)
}

// Known reports whether t belongs to the closed set.
func (t SectionType) Known() bool {
	_, ok := contentFactories[t]
	return ok
}

// NewContent returns an empty content variant for t.
func NewContent(t SectionType) (Content, bool) {
	factory, ok := contentFactories[t]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Content is the sealed union of section payloads. Only this package can add
// variants.
type Content interface {
	SectionType() SectionType
	payload() (data, config any)
}

// Section is a configurable content unit authored into a template.
type Section struct {
	ID      string
	Enabled bool
	Order   int
	Title   string
	Content Content
}

// Type returns the section type derived from its content.
func (s Section) Type() SectionType {
	if s.Content == nil {
		return ""
	}
	return s.Content.SectionType()
}

type sectionWire struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Enabled *bool           `json:"enabled,omitempty"`
	Order   int             `json:"order"`
	Title   string          `json:"title,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Config  json.RawMessage `json:"config,omitempty"`
}

// MarshalJSON writes the {"type", "data", "config"} document shape.
func (s Section) MarshalJSON() ([]byte, error) {
	enabled := s.Enabled
	wire := sectionWire{
		ID:      s.ID,
		Type:    s.Type(),
		Enabled: &enabled,
		Order:   s.Order,
		Title:   s.Title,
	}
	if s.Content != nil {
		data, config := s.Content.payload()
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("model: marshal section %q data: %w", s.ID, err)
		}
		wire.Data = raw
		raw, err = json.Marshal(config)
		if err != nil {
			return nil, fmt.Errorf("model: marshal section %q config: %w", s.ID, err)
		}
		wire.Config = raw
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes data and config into the variant paired with the
// type tag. Sections default to enabled when the flag is omitted.
func (s *Section) UnmarshalJSON(raw []byte) error {
	var wire sectionWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return fmt.Errorf("model: decode section: %w", err)
	}
	sectionType := SectionType(strings.TrimSpace(string(wire.Type)))
	if sectionType == "" {
		return fmt.Errorf("model: section %q is missing a type", wire.ID)
	}

	content, ok := NewContent(sectionType)
	if !ok {
		content = &UnknownContent{Kind: sectionType}
	}
	data, config := content.payload()
	if err := decodePayload(wire.Data, data); err != nil {
		return fmt.Errorf("model: section %q (%s) data: %w", wire.ID, sectionType, err)
	}
	if err := decodePayload(wire.Config, config); err != nil {
		return fmt.Errorf("model: section %q (%s) config: %w", wire.ID, sectionType, err)
	}

	*s = Section{
		ID:      wire.ID,
		Enabled: wire.Enabled == nil || *wire.Enabled,
		Order:   wire.Order,
		Title:   wire.Title,
		Content: content,
	}
	return nil
}

func decodePayload(raw json.RawMessage, dest any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return json.Unmarshal(trimmed, dest)
}

// UnknownContent keeps a section whose type is outside the closed set.
type UnknownContent struct {
	Kind   SectionType
	Data   json.RawMessage
	Config json.RawMessage
}

func (c *UnknownContent) SectionType() SectionType { return c.Kind }
func (c *UnknownContent) payload() (any, any)      { return &c.Data, &c.Config }
