package model

import "strings"

// Template is a reusable README definition. Metadata, Layout and Capabilities
// are pointers so validation can tell a missing block from an empty one.
type Template struct {
	Metadata     *Metadata     `json:"metadata,omitempty"`
	Layout       *Layout       `json:"layout,omitempty"`
	Styles       Styles        `json:"styles"`
	Capabilities *Capabilities `json:"capabilities,omitempty"`
	Defaults     Defaults      `json:"defaults"`
	Sections     []Section     `json:"sections"`
}

type Metadata struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version"`
	Author      string   `json:"author,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Layout orders sections through slots.
type Layout struct {
	Type  string       `json:"type,omitempty"`
	Slots []LayoutSlot `json:"slots,omitempty"`
}

// LayoutSlot assigns an order to a section referenced by id or, failing
// that, by type. Type matching assumes one section per type.
type LayoutSlot struct {
	SectionID string      `json:"sectionId,omitempty"`
	Type      SectionType `json:"type,omitempty"`
	Order     int         `json:"order"`
}

type Styles struct {
	Theme       string `json:"theme,omitempty"`
	AccentColor string `json:"accentColor,omitempty"`
	BadgeStyle  string `json:"badgeStyle,omitempty"`
	Alignment   string `json:"alignment,omitempty"`
}

type Capabilities struct {
	SupportedSections []SectionType `json:"supportedSections"`
	MaxSections       int           `json:"maxSections"`
	Features          Features      `json:"features"`
}

// Supports reports whether t is listed in SupportedSections.
func (c *Capabilities) Supports(t SectionType) bool {
	if c == nil {
		return false
	}
	for _, supported := range c.SupportedSections {
		if supported == t {
			return true
		}
	}
	return false
}

type Features struct {
	Animations   bool `json:"animations,omitempty"`
	GitHubStats  bool `json:"githubStats,omitempty"`
	Integrations bool `json:"integrations,omitempty"`
	CustomHTML   bool `json:"customHtml,omitempty"`
	DarkMode     bool `json:"darkMode,omitempty"`
}

type Defaults struct {
	Theme      string `json:"theme,omitempty"`
	Locale     string `json:"locale,omitempty"`
	BadgeStyle string `json:"badgeStyle,omitempty"`
}

// ID returns the metadata id, or "" when metadata is missing.
func (t Template) ID() string {
	if t.Metadata == nil {
		return ""
	}
	return strings.TrimSpace(t.Metadata.ID)
}

// Version returns the metadata version, or "" when metadata is missing.
func (t Template) Version() string {
	if t.Metadata == nil {
		return ""
	}
	return t.Metadata.Version
}

// Name returns the metadata name, or "" when metadata is missing.
func (t Template) Name() string {
	if t.Metadata == nil {
		return ""
	}
	return t.Metadata.Name
}

// Section returns the section with id.
func (t Template) Section(id string) (Section, bool) {
	for _, section := range t.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}

// EnabledSections counts enabled sections.
func (t Template) EnabledSections() int {
	count := 0
	for _, section := range t.Sections {
		if section.Enabled {
			count++
		}
	}
	return count
}
