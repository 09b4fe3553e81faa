package model

import "strings"

// UserProfile is the data a template is rendered against.
type UserProfile struct {
	GitHub       GitHubIdentity    `json:"github"`
	Personal     PersonalInfo      `json:"personal"`
	Professional ProfessionalInfo  `json:"professional"`
	TechStack    TechStack         `json:"techStack"`
	Socials      []SocialLink      `json:"socials,omitempty"`
	Projects     []Project         `json:"projects,omitempty"`
	Achievements []Achievement     `json:"achievements,omitempty"`
	BlogPosts    []BlogPost        `json:"blogPosts,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	Integrations Integrations      `json:"integrations"`
}

type GitHubIdentity struct {
	Username  string `json:"username"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Location  string `json:"location,omitempty"`
	Company   string `json:"company,omitempty"`
	Blog      string `json:"blog,omitempty"`
}

// DisplayName picks the name shown in rendered content. Source "github"
// ignores CustomName.
type DisplayName struct {
	Source     string `json:"source,omitempty"`
	CustomName string `json:"customName,omitempty"`
}

type PersonalInfo struct {
	DisplayName DisplayName `json:"displayName"`
	Bio         string      `json:"bio,omitempty"`
	Location    string      `json:"location,omitempty"`
	Email       string      `json:"email,omitempty"`
	Website     string      `json:"website,omitempty"`
	Pronouns    string      `json:"pronouns,omitempty"`
	AvatarURL   string      `json:"avatarUrl,omitempty"`
}

type ProfessionalInfo struct {
	Title      string       `json:"title,omitempty"`
	Company    string       `json:"company,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
}

type TechStack struct {
	Items []TechItem `json:"items,omitempty"`
}

type TechItem struct {
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Color     string `json:"color,omitempty"`
	Logo      string `json:"logo,omitempty"`
	LogoColor string `json:"logoColor,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
	Label    string `json:"label,omitempty"`
}

type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Repo        string   `json:"repo,omitempty"`
	Language    string   `json:"language,omitempty"`
	Stars       int      `json:"stars,omitempty"`
	Forks       int      `json:"forks,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	Image       string   `json:"image,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
	URL         string `json:"url,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type BlogPost struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

type Integrations struct {
	Spotify  SpotifyIntegration  `json:"spotify"`
	WakaTime WakaTimeIntegration `json:"wakatime"`
	Blog     BlogIntegration     `json:"blog"`
}

type SpotifyIntegration struct {
	UserID string `json:"userId,omitempty"`
}

type WakaTimeIntegration struct {
	Username string `json:"username,omitempty"`
}

type BlogIntegration struct {
	FeedURL string `json:"feedUrl,omitempty"`
}

// Name resolves the display name: the custom name unless the source is
// "github", then the GitHub name, then the GitHub username.
func (p UserProfile) Name() string {
	if !strings.EqualFold(p.Personal.DisplayName.Source, "github") {
		if name := strings.TrimSpace(p.Personal.DisplayName.CustomName); name != "" {
			return name
		}
	}
	if name := strings.TrimSpace(p.GitHub.Name); name != "" {
		return name
	}
	return strings.TrimSpace(p.GitHub.Username)
}

// FirstName returns the first word of Name.
func (p UserProfile) FirstName() string {
	fields := strings.Fields(p.Name())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Username returns the trimmed GitHub username.
func (p UserProfile) Username() string {
	return strings.TrimSpace(p.GitHub.Username)
}

// Bio returns the personal bio, falling back to the GitHub bio.
func (p UserProfile) Bio() string {
	if bio := strings.TrimSpace(p.Personal.Bio); bio != "" {
		return bio
	}
	return strings.TrimSpace(p.GitHub.Bio)
}

// Location returns the personal location, falling back to GitHub's.
func (p UserProfile) Location() string {
	if loc := strings.TrimSpace(p.Personal.Location); loc != "" {
		return loc
	}
	return strings.TrimSpace(p.GitHub.Location)
}

// AvatarURL returns the personal avatar, falling back to GitHub's.
func (p UserProfile) AvatarURL() string {
	if avatar := strings.TrimSpace(p.Personal.AvatarURL); avatar != "" {
		return avatar
	}
	return strings.TrimSpace(p.GitHub.AvatarURL)
}

// Company returns the professional company, falling back to GitHub's.
func (p UserProfile) Company() string {
	if company := strings.TrimSpace(p.Professional.Company); company != "" {
		return company
	}
	return strings.TrimSpace(p.GitHub.Company)
}

// Website returns the personal website, falling back to the GitHub blog.
func (p UserProfile) Website() string {
	if site := strings.TrimSpace(p.Personal.Website); site != "" {
		return site
	}
	return strings.TrimSpace(p.GitHub.Blog)
}
