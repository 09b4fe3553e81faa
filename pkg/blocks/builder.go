package blocks

import "strings"

// Defaults applied by the Builder when an option is left at its zero value.
const (
	DefaultHeadingLevel  = 2
	DefaultBadgeStyle    = "for-the-badge"
	DefaultSpacerHeight  = 20
	DefaultDividerStyle  = "line"
	DefaultGridColumns   = 2
	DefaultGraphVariant  = GraphVariantActivity
	DefaultTypingFont    = "Fira Code"
	DefaultTypingSize    = 22
	DefaultTypingColor   = "36BCF7"
	DefaultTypingWidth   = 435
	DefaultTypingHeight  = 50
	DefaultTypingPause   = 1000
	DefaultTypingRuntime = 5000
)

// Builder stamps out well-formed blocks: a fresh id, the kind tag and
// Visible=true. Builders shape data and never validate it.
type Builder struct {
	ids *IDGenerator
}

// NewBuilder binds a builder to ids. A nil generator gets a private one.
func NewBuilder(ids *IDGenerator) *Builder {
	if ids == nil {
		ids = NewIDGenerator("")
	}
	return &Builder{ids: ids}
}

// IDs exposes the generator backing the builder.
func (b *Builder) IDs() *IDGenerator {
	return b.ids
}

func (b *Builder) base(kind Kind) Base {
	return Base{ID: b.ids.Next(), Kind: kind, Visible: true}
}

// Bool returns a pointer to v, for options that default to true.
func Bool(v bool) *bool {
	return &v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func intOr(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func stringOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

type TextOptions struct {
	Bold   bool
	Italic bool
	Inline bool
}

func (b *Builder) Text(value string, opts TextOptions) *Text {
	return &Text{Base: b.base(KindText), Value: value, Bold: opts.Bold, Italic: opts.Italic, Inline: opts.Inline}
}

// HeadingOptions configures Heading. Level defaults to 2 and is clamped to 1..6.
type HeadingOptions struct {
	Level  int
	Align  string
	Anchor string
}

func (b *Builder) Heading(value string, opts HeadingOptions) *Heading {
	level := intOr(opts.Level, DefaultHeadingLevel)
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return &Heading{Base: b.base(KindHeading), Value: value, Level: level, Align: opts.Align, Anchor: opts.Anchor}
}

type ParagraphOptions struct {
	Align string
}

func (b *Builder) Paragraph(value string, opts ParagraphOptions) *Paragraph {
	return &Paragraph{Base: b.base(KindParagraph), Value: value, Align: opts.Align}
}

type CodeOptions struct {
	Language string
	Inline   bool
}

func (b *Builder) Code(value string, opts CodeOptions) *Code {
	return &Code{Base: b.base(KindCode), Value: value, Language: opts.Language, Inline: opts.Inline}
}

type QuoteOptions struct {
	Author string
}

func (b *Builder) Quote(value string, opts QuoteOptions) *Quote {
	return &Quote{Base: b.base(KindQuote), Value: value, Author: opts.Author}
}

// ImageOptions configures Image. Either Src or Asset should be set.
type ImageOptions struct {
	Src    string
	Width  int
	Height int
	Align  string
	Link   string
	Asset  *AssetRef
}

func (b *Builder) Image(alt string, opts ImageOptions) *Image {
	return &Image{
		Base:   b.base(KindImage),
		Src:    opts.Src,
		Alt:    alt,
		Width:  opts.Width,
		Height: opts.Height,
		Align:  opts.Align,
		Link:   opts.Link,
		Asset:  opts.Asset,
	}
}

type LinkOptions struct {
	Title string
}

// Link builds a link block. An empty label falls back to the url.
func (b *Builder) Link(url, label string, opts LinkOptions) *Link {
	return &Link{Base: b.base(KindLink), URL: url, Label: stringOr(label, url), Title: opts.Title}
}

// BadgeOptions configures Badge. Style defaults to "for-the-badge".
type BadgeOptions struct {
	Message    string
	Color      string
	LabelColor string
	Style      string
	Logo       string
	LogoColor  string
	Link       string
}

func (b *Builder) Badge(label string, opts BadgeOptions) *Badge {
	return &Badge{
		Base:       b.base(KindBadge),
		Label:      label,
		Message:    opts.Message,
		Color:      opts.Color,
		LabelColor: opts.LabelColor,
		Style:      stringOr(opts.Style, DefaultBadgeStyle),
		Logo:       opts.Logo,
		LogoColor:  opts.LogoColor,
		Link:       opts.Link,
	}
}

type BadgeGroupOptions struct {
	Align   string
	Spacing int
}

func (b *Builder) BadgeGroup(badges []*Badge, opts BadgeGroupOptions) *BadgeGroup {
	return &BadgeGroup{Base: b.base(KindBadgeGroup), Badges: badges, Align: opts.Align, Spacing: opts.Spacing}
}

// ListOptions configures List. Start only applies to ordered lists.
type ListOptions struct {
	Ordered bool
	Start   int
}

func (b *Builder) List(items []string, opts ListOptions) *List {
	list := &List{Base: b.base(KindList), Items: items, Ordered: opts.Ordered}
	if opts.Ordered && opts.Start > 0 {
		list.Start = opts.Start
	}
	return list
}

// SpacerOptions configures Spacer. Height defaults to 20.
type SpacerOptions struct {
	Height int
}

func (b *Builder) Spacer(opts SpacerOptions) *Spacer {
	return &Spacer{Base: b.base(KindSpacer), Height: intOr(opts.Height, DefaultSpacerHeight)}
}

// DividerOptions configures Divider. Style defaults to "line".
type DividerOptions struct {
	Style string
}

func (b *Builder) Divider(opts DividerOptions) *Divider {
	return &Divider{Base: b.base(KindDivider), Style: stringOr(opts.Style, DefaultDividerStyle)}
}

type RowOptions struct {
	Align string
	Gap   int
}

// Row wraps children that already exist, keeping trees acyclic.
func (b *Builder) Row(children []Block, opts RowOptions) *Row {
	return &Row{Base: b.base(KindRow), Children: children, Align: opts.Align, Gap: opts.Gap}
}

type ColumnOptions struct {
	Align string
	Width string
}

func (b *Builder) Column(children []Block, opts ColumnOptions) *Column {
	return &Column{Base: b.base(KindColumn), Children: children, Align: opts.Align, Width: opts.Width}
}

// GridOptions configures Grid. Columns defaults to 2.
type GridOptions struct {
	Columns int
	Gap     int
}

func (b *Builder) Grid(children []Block, opts GridOptions) *Grid {
	columns := opts.Columns
	if columns <= 0 {
		columns = DefaultGridColumns
	}
	return &Grid{Base: b.base(KindGrid), Children: children, Columns: columns, Gap: opts.Gap}
}

type StatOptions struct {
	Icon string
}

func (b *Builder) Stat(label, value string, opts StatOptions) *Stat {
	return &Stat{Base: b.base(KindStat), Label: label, Value: value, Icon: opts.Icon}
}

type StatGroupOptions struct {
	Align string
}

func (b *Builder) StatGroup(stats []*Stat, opts StatGroupOptions) *StatGroup {
	return &StatGroup{Base: b.base(KindStatGroup), Stats: stats, Align: opts.Align}
}

type SocialLinkOptions struct {
	Username string
	Label    string
	Style    string
}

func (b *Builder) SocialLink(platform, url string, opts SocialLinkOptions) *SocialLink {
	return &SocialLink{
		Base:     b.base(KindSocialLink),
		Platform: platform,
		URL:      url,
		Username: opts.Username,
		Label:    opts.Label,
		Style:    opts.Style,
	}
}

type SocialGroupOptions struct {
	Style string
	Align string
}

func (b *Builder) SocialGroup(links []*SocialLink, opts SocialGroupOptions) *SocialGroup {
	return &SocialGroup{Base: b.base(KindSocialGroup), Links: links, Style: opts.Style, Align: opts.Align}
}

// TypingOptions configures TypingAnimation. Zero values take the Default*
// constants; Center, VCenter and Repeat default to true.
type TypingOptions struct {
	Font     string
	Size     int
	Color    string
	Center   *bool
	VCenter  *bool
	Width    int
	Height   int
	Pause    int
	Duration int
	Repeat   *bool
}

func (b *Builder) TypingAnimation(lines []string, opts TypingOptions) *TypingAnimation {
	return &TypingAnimation{
		Base:     b.base(KindTypingAnimation),
		Lines:    lines,
		Font:     stringOr(opts.Font, DefaultTypingFont),
		Size:     intOr(opts.Size, DefaultTypingSize),
		Color:    strings.TrimPrefix(stringOr(opts.Color, DefaultTypingColor), "#"),
		Center:   boolOr(opts.Center, true),
		VCenter:  boolOr(opts.VCenter, true),
		Width:    intOr(opts.Width, DefaultTypingWidth),
		Height:   intOr(opts.Height, DefaultTypingHeight),
		Pause:    intOr(opts.Pause, DefaultTypingPause),
		Duration: intOr(opts.Duration, DefaultTypingRuntime),
		Repeat:   boolOr(opts.Repeat, true),
	}
}

type StatsCardOptions struct {
	Theme             string
	Repo              string
	Layout            string
	ShowIcons         bool
	HideBorder        bool
	HideTitle         bool
	IncludeAllCommits bool
	CountPrivate      bool
	ShowOwner         bool
	LangsCount        int
	Hide              []string
}

// GitHubStatsCard records which card to show for username. cardType is one of
// the CardType* constants.
func (b *Builder) GitHubStatsCard(username, cardType string, opts StatsCardOptions) *GitHubStatsCard {
	return &GitHubStatsCard{
		Base:              b.base(KindGitHubStatsCard),
		Username:          username,
		CardType:          stringOr(cardType, CardTypeStats),
		Theme:             opts.Theme,
		Repo:              opts.Repo,
		Layout:            opts.Layout,
		ShowIcons:         opts.ShowIcons,
		HideBorder:        opts.HideBorder,
		HideTitle:         opts.HideTitle,
		IncludeAllCommits: opts.IncludeAllCommits,
		CountPrivate:      opts.CountPrivate,
		ShowOwner:         opts.ShowOwner,
		LangsCount:        opts.LangsCount,
		Hide:              opts.Hide,
	}
}

// ContributionGraphOptions configures ContributionGraph. Variant defaults to
// "activity".
type ContributionGraphOptions struct {
	Variant    string
	Theme      string
	Area       bool
	HideBorder bool
	Color      string
}

func (b *Builder) ContributionGraph(username string, opts ContributionGraphOptions) *ContributionGraph {
	return &ContributionGraph{
		Base:       b.base(KindContributionGraph),
		Username:   username,
		Variant:    stringOr(opts.Variant, DefaultGraphVariant),
		Theme:      opts.Theme,
		Area:       opts.Area,
		HideBorder: opts.HideBorder,
		Color:      strings.TrimPrefix(opts.Color, "#"),
	}
}

type CardOptions struct {
	Description string
	URL         string
	Image       string
	Footer      string
}

func (b *Builder) Card(title string, opts CardOptions) *Card {
	return &Card{
		Base:        b.base(KindCard),
		Title:       title,
		Description: opts.Description,
		URL:         opts.URL,
		Image:       opts.Image,
		Footer:      opts.Footer,
	}
}

type ProjectCardOptions struct {
	Description string
	URL         string
	Repo        string
	Language    string
	Stars       int
	Forks       int
	Topics      []string
	Image       string
}

func (b *Builder) ProjectCard(name string, opts ProjectCardOptions) *ProjectCard {
	return &ProjectCard{
		Base:        b.base(KindProjectCard),
		Name:        name,
		Description: opts.Description,
		URL:         opts.URL,
		Repo:        opts.Repo,
		Language:    opts.Language,
		Stars:       opts.Stars,
		Forks:       opts.Forks,
		Topics:      opts.Topics,
		Image:       opts.Image,
	}
}

type ExperienceOptions struct {
	StartDate    string
	EndDate      string
	Current      bool
	Location     string
	Description  string
	Highlights   []string
	Technologies []string
}

func (b *Builder) ExperienceItem(company, role string, opts ExperienceOptions) *ExperienceItem {
	return &ExperienceItem{
		Base:         b.base(KindExperienceItem),
		Company:      company,
		Role:         role,
		StartDate:    opts.StartDate,
		EndDate:      opts.EndDate,
		Current:      opts.Current,
		Location:     opts.Location,
		Description:  opts.Description,
		Highlights:   opts.Highlights,
		Technologies: opts.Technologies,
	}
}

type EducationOptions struct {
	Degree      string
	Field       string
	StartDate   string
	EndDate     string
	Description string
}

func (b *Builder) EducationItem(institution string, opts EducationOptions) *EducationItem {
	return &EducationItem{
		Base:        b.base(KindEducationItem),
		Institution: institution,
		Degree:      opts.Degree,
		Field:       opts.Field,
		StartDate:   opts.StartDate,
		EndDate:     opts.EndDate,
		Description: opts.Description,
	}
}

type AchievementOptions struct {
	Description string
	Date        string
	Issuer      string
	URL         string
	Icon        string
}

func (b *Builder) AchievementItem(title string, opts AchievementOptions) *AchievementItem {
	return &AchievementItem{
		Base:        b.base(KindAchievementItem),
		Title:       title,
		Description: opts.Description,
		Date:        opts.Date,
		Issuer:      opts.Issuer,
		URL:         opts.URL,
		Icon:        opts.Icon,
	}
}

// Custom wraps raw content. format defaults to markdown.
func (b *Builder) Custom(format, content string) *Custom {
	return &Custom{Base: b.base(KindCustom), Format: stringOr(format, FormatMarkdown), Content: content}
}
