package model

// Layout values shared by container-producing section configs.
const (
	LayoutFlat  = "flat"
	LayoutRow   = "row"
	LayoutGrid  = "grid"
	LayoutStack = "stack"
)

type HeroData struct {
	Headline    string   `json:"headline,omitempty"`
	Subheadline string   `json:"subheadline,omitempty"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	TypingLines []string `json:"typingLines,omitempty"`
}

type HeroConfig struct {
	Align        string `json:"align,omitempty"`
	HeadingLevel int    `json:"headingLevel,omitempty"`
	ShowAvatar   bool   `json:"showAvatar,omitempty"`
	AvatarSize   int    `json:"avatarSize,omitempty"`
	ShowTyping   bool   `json:"showTyping,omitempty"`
	TypingColor  string `json:"typingColor,omitempty"`
	TypingFont   string `json:"typingFont,omitempty"`
}

type HeroContent struct {
	Data   HeroData
	Config HeroConfig
}

func (*HeroContent) SectionType() SectionType { return SectionHero }
func (c *HeroContent) payload() (any, any)    { return &c.Data, &c.Config }

type AboutData struct {
	Bio          string   `json:"bio,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	CurrentFocus string   `json:"currentFocus,omitempty"`
	Learning     string   `json:"learning,omitempty"`
	Collaborate  string   `json:"collaborate,omitempty"`
	FunFact      string   `json:"funFact,omitempty"`
}

type AboutConfig struct {
	// Style is "paragraph" (default) or "list".
	Style          string `json:"style,omitempty"`
	HideHighlights bool   `json:"hideHighlights,omitempty"`
}

type AboutContent struct {
	Data   AboutData
	Config AboutConfig
}

func (*AboutContent) SectionType() SectionType { return SectionAbout }
func (c *AboutContent) payload() (any, any)    { return &c.Data, &c.Config }

type TechStackData struct {
	Items []TechItem `json:"items,omitempty"`
}

type TechStackConfig struct {
	BadgeStyle      string `json:"badgeStyle,omitempty"`
	GroupByCategory bool   `json:"groupByCategory,omitempty"`
	HideCategories  bool   `json:"hideCategoryTitles,omitempty"`
	Layout          string `json:"layout,omitempty"`
	Columns         int    `json:"columns,omitempty"`
	Align           string `json:"align,omitempty"`
}

type TechStackContent struct {
	Data   TechStackData
	Config TechStackConfig
}

func (*TechStackContent) SectionType() SectionType { return SectionTechStack }
func (c *TechStackContent) payload() (any, any)    { return &c.Data, &c.Config }

type GitHubStatsData struct {
	// Username overrides the profile's GitHub username.
	Username string `json:"username,omitempty"`
}

// GitHubStatsConfig selects cards. With no Show* flag set, the stats and
// top-languages cards are shown.
type GitHubStatsConfig struct {
	ShowStats         bool     `json:"showStats,omitempty"`
	ShowLanguages     bool     `json:"showLanguages,omitempty"`
	ShowStreak        bool     `json:"showStreak,omitempty"`
	ShowTrophies      bool     `json:"showTrophies,omitempty"`
	Theme             string   `json:"theme,omitempty"`
	ShowIcons         bool     `json:"showIcons,omitempty"`
	HideBorder        bool     `json:"hideBorder,omitempty"`
	HideTitle         bool     `json:"hideTitle,omitempty"`
	IncludeAllCommits bool     `json:"includeAllCommits,omitempty"`
	CountPrivate      bool     `json:"countPrivate,omitempty"`
	LangsLayout       string   `json:"langsLayout,omitempty"`
	LangsCount        int      `json:"langsCount,omitempty"`
	Hide              []string `json:"hide,omitempty"`
	Layout            string   `json:"layout,omitempty"`
	Columns           int      `json:"columns,omitempty"`
}

type GitHubStatsContent struct {
	Data   GitHubStatsData
	Config GitHubStatsConfig
}

func (*GitHubStatsContent) SectionType() SectionType { return SectionGitHubStats }
func (c *GitHubStatsContent) payload() (any, any)    { return &c.Data, &c.Config }

type ProjectsData struct {
	Items []Project `json:"items,omitempty"`
}

type ProjectsConfig struct {
	Layout       string `json:"layout,omitempty"`
	Columns      int    `json:"columns,omitempty"`
	MaxItems     int    `json:"maxItems,omitempty"`
	HideStars    bool   `json:"hideStars,omitempty"`
	HideLanguage bool   `json:"hideLanguage,omitempty"`
	HideTopics   bool   `json:"hideTopics,omitempty"`
	FeaturedOnly bool   `json:"featuredOnly,omitempty"`
	SortByStars  bool   `json:"sortByStars,omitempty"`
}

type ProjectsContent struct {
	Data   ProjectsData
	Config ProjectsConfig
}

func (*ProjectsContent) SectionType() SectionType { return SectionProjects }
func (c *ProjectsContent) payload() (any, any)    { return &c.Data, &c.Config }

type ExperienceData struct {
	Items []Experience `json:"items,omitempty"`
}

type ExperienceConfig struct {
	MaxItems         int  `json:"maxItems,omitempty"`
	HideDates        bool `json:"hideDates,omitempty"`
	HideTechnologies bool `json:"hideTechnologies,omitempty"`
	HideHighlights   bool `json:"hideHighlights,omitempty"`
}

type ExperienceContent struct {
	Data   ExperienceData
	Config ExperienceConfig
}

func (*ExperienceContent) SectionType() SectionType { return SectionExperience }
func (c *ExperienceContent) payload() (any, any)    { return &c.Data, &c.Config }

type EducationData struct {
	Items []Education `json:"items,omitempty"`
}

type EducationConfig struct {
	MaxItems  int  `json:"maxItems,omitempty"`
	HideDates bool `json:"hideDates,omitempty"`
}

type EducationContent struct {
	Data   EducationData
	Config EducationConfig
}

func (*EducationContent) SectionType() SectionType { return SectionEducation }
func (c *EducationContent) payload() (any, any)    { return &c.Data, &c.Config }

type AchievementsData struct {
	Items []Achievement `json:"items,omitempty"`
}

type AchievementsConfig struct {
	MaxItems int    `json:"maxItems,omitempty"`
	Layout   string `json:"layout,omitempty"`
	Columns  int    `json:"columns,omitempty"`
}

type AchievementsContent struct {
	Data   AchievementsData
	Config AchievementsConfig
}

func (*AchievementsContent) SectionType() SectionType { return SectionAchievements }
func (c *AchievementsContent) payload() (any, any)    { return &c.Data, &c.Config }

type BlogPostsData struct {
	Posts   []BlogPost `json:"posts,omitempty"`
	FeedURL string     `json:"feedUrl,omitempty"`
}

type BlogPostsConfig struct {
	MaxPosts  int    `json:"maxPosts,omitempty"`
	HideDates bool   `json:"hideDates,omitempty"`
	Style     string `json:"style,omitempty"`
}

type BlogPostsContent struct {
	Data   BlogPostsData
	Config BlogPostsConfig
}

func (*BlogPostsContent) SectionType() SectionType { return SectionBlogPosts }
func (c *BlogPostsContent) payload() (any, any)    { return &c.Data, &c.Config }

type ContactData struct {
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
	Message     string `json:"message,omitempty"`
	CalendarURL string `json:"calendarUrl,omitempty"`
}

type ContactConfig struct {
	// Style is "badges" (default) or "links".
	Style     string `json:"style,omitempty"`
	HideEmail bool   `json:"hideEmail,omitempty"`
	Align     string `json:"align,omitempty"`
}

type ContactContent struct {
	Data   ContactData
	Config ContactConfig
}

func (*ContactContent) SectionType() SectionType { return SectionContact }
func (c *ContactContent) payload() (any, any)    { return &c.Data, &c.Config }

type SocialsData struct {
	Links []SocialLink `json:"links,omitempty"`
}

type SocialsConfig struct {
	// Style is "badges" (default), "icons" or "text".
	Style      string `json:"style,omitempty"`
	Align      string `json:"align,omitempty"`
	HideLabels bool   `json:"hideLabels,omitempty"`
}

type SocialsContent struct {
	Data   SocialsData
	Config SocialsConfig
}

func (*SocialsContent) SectionType() SectionType { return SectionSocials }
func (c *SocialsContent) payload() (any, any)    { return &c.Data, &c.Config }

type QuoteData struct {
	Text   string `json:"text,omitempty"`
	Author string `json:"author,omitempty"`
}

type QuoteConfig struct {
	// Style is "blockquote" (default) or "card".
	Style string `json:"style,omitempty"`
}

type QuoteContent struct {
	Data   QuoteData
	Config QuoteConfig
}

func (*QuoteContent) SectionType() SectionType { return SectionQuote }
func (c *QuoteContent) payload() (any, any)    { return &c.Data, &c.Config }

type DividerData struct{}

type DividerConfig struct {
	Style string `json:"style,omitempty"`
}

type DividerContent struct {
	Data   DividerData
	Config DividerConfig
}

func (*DividerContent) SectionType() SectionType { return SectionDivider }
func (c *DividerContent) payload() (any, any)    { return &c.Data, &c.Config }

type SpacerData struct{}

type SpacerConfig struct {
	Height int `json:"height,omitempty"`
}

type SpacerContent struct {
	Data   SpacerData
	Config SpacerConfig
}

func (*SpacerContent) SectionType() SectionType { return SectionSpacer }
func (c *SpacerContent) payload() (any, any)    { return &c.Data, &c.Config }

type CustomMarkdownData struct {
	Content string `json:"content,omitempty"`
}

type CustomMarkdownConfig struct {
	// Structured parses the markdown into typed blocks instead of passing it
	// through as a single custom block.
	Structured bool `json:"structured,omitempty"`
}

type CustomMarkdownContent struct {
	Data   CustomMarkdownData
	Config CustomMarkdownConfig
}

func (*CustomMarkdownContent) SectionType() SectionType { return SectionCustomMarkdown }
func (c *CustomMarkdownContent) payload() (any, any)    { return &c.Data, &c.Config }

type CustomHTMLData struct {
	Content string `json:"content,omitempty"`
}

type CustomHTMLConfig struct {
	// AllowUnsafe skips sanitising. Only for trusted templates.
	AllowUnsafe bool `json:"allowUnsafe,omitempty"`
}

type CustomHTMLContent struct {
	Data   CustomHTMLData
	Config CustomHTMLConfig
}

func (*CustomHTMLContent) SectionType() SectionType { return SectionCustomHTML }
func (c *CustomHTMLContent) payload() (any, any)    { return &c.Data, &c.Config }

type SpotifyData struct {
	UserID string `json:"userId,omitempty"`
}

type SpotifyConfig struct {
	Theme       string `json:"theme,omitempty"`
	Background  string `json:"background,omitempty"`
	ShowOffline bool   `json:"showOffline,omitempty"`
	// Mode is "now-playing" (default) or "recently-played".
	Mode  string `json:"mode,omitempty"`
	Width int    `json:"width,omitempty"`
}

type SpotifyContent struct {
	Data   SpotifyData
	Config SpotifyConfig
}

func (*SpotifyContent) SectionType() SectionType { return SectionSpotify }
func (c *SpotifyContent) payload() (any, any)    { return &c.Data, &c.Config }

type WakaTimeData struct {
	Username string `json:"username,omitempty"`
}

type WakaTimeConfig struct {
	Theme      string `json:"theme,omitempty"`
	Layout     string `json:"layout,omitempty"`
	HideBorder bool   `json:"hideBorder,omitempty"`
	LangsCount int    `json:"langsCount,omitempty"`
}

type WakaTimeContent struct {
	Data   WakaTimeData
	Config WakaTimeConfig
}

func (*WakaTimeContent) SectionType() SectionType { return SectionWakaTime }
func (c *WakaTimeContent) payload() (any, any)    { return &c.Data, &c.Config }

type ContributionsData struct {
	Username string `json:"username,omitempty"`
}

type ContributionsConfig struct {
	Variant    string `json:"variant,omitempty"`
	Theme      string `json:"theme,omitempty"`
	Area       bool   `json:"area,omitempty"`
	HideBorder bool   `json:"hideBorder,omitempty"`
	Color      string `json:"color,omitempty"`
}

type ContributionsContent struct {
	Data   ContributionsData
	Config ContributionsConfig
}

func (*ContributionsContent) SectionType() SectionType { return SectionContributions }
func (c *ContributionsContent) payload() (any, any)    { return &c.Data, &c.Config }

type PinnedReposData struct {
	Username string `json:"username,omitempty"`
	// Repos lists "name" or "owner/name" entries.
	Repos []string `json:"repos,omitempty"`
}

type PinnedReposConfig struct {
	Theme      string `json:"theme,omitempty"`
	ShowOwner  bool   `json:"showOwner,omitempty"`
	HideBorder bool   `json:"hideBorder,omitempty"`
	Layout     string `json:"layout,omitempty"`
	Columns    int    `json:"columns,omitempty"`
	MaxItems   int    `json:"maxItems,omitempty"`
}

type PinnedReposContent struct {
	Data   PinnedReposData
	Config PinnedReposConfig
}

func (*PinnedReposContent) SectionType() SectionType { return SectionPinnedRepos }
func (c *PinnedReposContent) payload() (any, any)    { return &c.Data, &c.Config }
