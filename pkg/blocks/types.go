package blocks

// Block is implemented by every IR node. Concrete blocks are always handled
// through pointers (*Heading, *Row, ...).
type Block interface {
	BlockID() string
	BlockKind() Kind
	IsVisible() bool
}

// Base carries the fields shared by every block.
type Base struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Visible bool   `json:"visible"`
}

func (b Base) BlockID() string { return b.ID }
func (b Base) BlockKind() Kind { return b.Kind }
func (b Base) IsVisible() bool { return b.Visible }

// Alignment values shared by several blocks.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// AssetRef describes an externally generated asset by provider and semantic
// parameters. The asset engine resolves it into a URL.
type AssetRef struct {
	Provider string            `json:"provider"`
	Params   map[string]string `json:"params,omitempty"`
}

type Text struct {
	Base
	Value  string `json:"value"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Inline bool   `json:"inline,omitempty"`
}

type Heading struct {
	Base
	Value  string `json:"value"`
	Level  int    `json:"level"`
	Align  string `json:"align,omitempty"`
	Anchor string `json:"anchor,omitempty"`
}

type Paragraph struct {
	Base
	Value string `json:"value"`
	Align string `json:"align,omitempty"`
}

type Code struct {
	Base
	Value    string `json:"value"`
	Language string `json:"language,omitempty"`
	Inline   bool   `json:"inline,omitempty"`
}

type Quote struct {
	Base
	Value  string `json:"value"`
	Author string `json:"author,omitempty"`
}

// Image either points at a literal Src or carries an Asset for the asset
// engine to resolve.
type Image struct {
	Base
	Src    string    `json:"src,omitempty"`
	Alt    string    `json:"alt"`
	Width  int       `json:"width,omitempty"`
	Height int       `json:"height,omitempty"`
	Align  string    `json:"align,omitempty"`
	Link   string    `json:"link,omitempty"`
	Asset  *AssetRef `json:"asset,omitempty"`
}

type Link struct {
	Base
	URL   string `json:"url"`
	Label string `json:"label"`
	Title string `json:"title,omitempty"`
}

type Badge struct {
	Base
	Label      string `json:"label"`
	Message    string `json:"message,omitempty"`
	Color      string `json:"color,omitempty"`
	LabelColor string `json:"labelColor,omitempty"`
	Style      string `json:"style"`
	Logo       string `json:"logo,omitempty"`
	LogoColor  string `json:"logoColor,omitempty"`
	Link       string `json:"link,omitempty"`
}

type BadgeGroup struct {
	Base
	Badges  []*Badge `json:"badges"`
	Align   string   `json:"align,omitempty"`
	Spacing int      `json:"spacing,omitempty"`
}

type List struct {
	Base
	Items   []string `json:"items"`
	Ordered bool     `json:"ordered,omitempty"`
	// Start is the first number of an ordered list; zero means 1.
	Start int `json:"start,omitempty"`
}

type Spacer struct {
	Base
	Height int `json:"height"`
}

type Divider struct {
	Base
	Style string `json:"style"`
}

type Row struct {
	Base
	Children []Block `json:"children"`
	Align    string  `json:"align,omitempty"`
	Gap      int     `json:"gap,omitempty"`
}

type Column struct {
	Base
	Children []Block `json:"children"`
	Align    string  `json:"align,omitempty"`
	Width    string  `json:"width,omitempty"`
}

type Grid struct {
	Base
	Children []Block `json:"children"`
	Columns  int     `json:"columns"`
	Gap      int     `json:"gap,omitempty"`
}

type Stat struct {
	Base
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

type StatGroup struct {
	Base
	Stats []*Stat `json:"stats"`
	Align string  `json:"align,omitempty"`
}

type SocialLink struct {
	Base
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Username string `json:"username,omitempty"`
	Label    string `json:"label,omitempty"`
	Style    string `json:"style,omitempty"`
}

type SocialGroup struct {
	Base
	Links []*SocialLink `json:"links"`
	Style string        `json:"style,omitempty"`
	Align string        `json:"align,omitempty"`
}

type TypingAnimation struct {
	Base
	Lines    []string `json:"lines"`
	Font     string   `json:"font,omitempty"`
	Size     int      `json:"size"`
	Color    string   `json:"color,omitempty"`
	Center   bool     `json:"center"`
	VCenter  bool     `json:"vCenter"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Pause    int      `json:"pause"`
	Duration int      `json:"duration"`
	Repeat   bool     `json:"repeat"`
}

// Card types rendered by GitHubStatsCard.
const (
	CardTypeStats    = "stats"
	CardTypeTopLangs = "top-langs"
	CardTypeStreak   = "streak"
	CardTypeTrophies = "trophies"
	CardTypePin      = "pin"
	CardTypeWakaTime = "wakatime"
)

type GitHubStatsCard struct {
	Base
	Username          string   `json:"username"`
	CardType          string   `json:"cardType"`
	Theme             string   `json:"theme,omitempty"`
	Repo              string   `json:"repo,omitempty"`
	Layout            string   `json:"layout,omitempty"`
	ShowIcons         bool     `json:"showIcons,omitempty"`
	HideBorder        bool     `json:"hideBorder,omitempty"`
	HideTitle         bool     `json:"hideTitle,omitempty"`
	IncludeAllCommits bool     `json:"includeAllCommits,omitempty"`
	CountPrivate      bool     `json:"countPrivate,omitempty"`
	ShowOwner         bool     `json:"showOwner,omitempty"`
	LangsCount        int      `json:"langsCount,omitempty"`
	Hide              []string `json:"hide,omitempty"`
}

// Contribution graph variants.
const (
	GraphVariantActivity = "activity"
	GraphVariantSnake    = "snake"
	GraphVariantCalendar = "calendar"
)

type ContributionGraph struct {
	Base
	Username   string `json:"username"`
	Variant    string `json:"variant"`
	Theme      string `json:"theme,omitempty"`
	Area       bool   `json:"area,omitempty"`
	HideBorder bool   `json:"hideBorder,omitempty"`
	Color      string `json:"color,omitempty"`
}

type Card struct {
	Base
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Image       string `json:"image,omitempty"`
	Footer      string `json:"footer,omitempty"`
}

type ProjectCard struct {
	Base
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Repo        string   `json:"repo,omitempty"`
	Language    string   `json:"language,omitempty"`
	Stars       int      `json:"stars,omitempty"`
	Forks       int      `json:"forks,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	Image       string   `json:"image,omitempty"`
}

type ExperienceItem struct {
	Base
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

type EducationItem struct {
	Base
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type AchievementItem struct {
	Base
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
	URL         string `json:"url,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Custom content formats.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Custom carries pre-authored content that exporters emit verbatim.
type Custom struct {
	Base
	Format  string `json:"format"`
	Content string `json:"content"`
}
