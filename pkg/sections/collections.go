package sections

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/model"
)

const (
	defaultMaxPosts     = 5
	uncategorizedLabel  = "Other"
	blogPlaceholderText = "<!-- BLOG-POST-LIST:START -->\n<!-- BLOG-POST-LIST:END -->"
)

// renderTechStack shows the section's items, or the profile's when the
// section has none. Grouping by category yields one column per category,
// arranged by the configured layout.
func renderTechStack(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.TechStackContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	b := rc.builder()

	items := data.Items
	if len(items) == 0 {
		items = profile.TechStack.Items
	}
	if len(items) == 0 {
		return titled(section, profile, rc), nil
	}

	style := firstNonEmpty(cfg.BadgeStyle, rc.Styles.BadgeStyle, blocks.DefaultBadgeStyle)
	align := firstNonEmpty(cfg.Align, rc.Styles.Alignment)
	badge := func(item model.TechItem) *blocks.Badge {
		return b.Badge(item.Name, blocks.BadgeOptions{
			Color:     firstNonEmpty(item.Color, rc.Token("badge", ""), rc.Styles.AccentColor, "555555"),
			Style:     style,
			Logo:      firstNonEmpty(item.Logo, logoSlug(item.Name)),
			LogoColor: firstNonEmpty(item.LogoColor, "white"),
		})
	}

	if !cfg.GroupByCategory {
		badges := make([]*blocks.Badge, 0, len(items))
		for _, item := range items {
			badges = append(badges, badge(item))
		}
		return titled(section, profile, rc, b.BadgeGroup(badges, blocks.BadgeGroupOptions{Align: align})), nil
	}

	var order []string
	groups := make(map[string][]model.TechItem)
	for _, item := range items {
		category := firstNonEmpty(item.Category, uncategorizedLabel)
		if _, seen := groups[category]; !seen {
			order = append(order, category)
		}
		groups[category] = append(groups[category], item)
	}

	layout := orDefault(cfg.Layout, model.LayoutFlat)
	var children []blocks.Block
	for _, category := range order {
		var group []blocks.Block
		if !cfg.HideCategories {
			group = append(group, b.Heading(categoryTitle(category), blocks.HeadingOptions{Level: 3, Align: align}))
		}
		badges := make([]*blocks.Badge, 0, len(groups[category]))
		for _, item := range groups[category] {
			badges = append(badges, badge(item))
		}
		group = append(group, b.BadgeGroup(badges, blocks.BadgeGroupOptions{Align: align}))

		if layout == model.LayoutFlat {
			children = append(children, group...)
		} else {
			children = append(children, b.Column(group, blocks.ColumnOptions{Align: align}))
		}
	}
	return titled(section, profile, rc, arrange(b, layout, cfg.Columns, align, children)...), nil
}

func logoSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "", ".", "dot", "+", "plus", "#", "sharp")
	return replacer.Replace(slug)
}

// categoryTitle turns "unit-tests" into "Unit Tests". Only the first letter of
// each word changes case. A Caser keeps state, so one is built per call.
func categoryTitle(category string) string {
	words := strings.FieldsFunc(category, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	return cases.Title(language.Und, cases.NoLower).String(strings.Join(words, " "))
}

func renderProjects(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.ProjectsContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	b := rc.builder()

	source := data.Items
	if len(source) == 0 {
		source = profile.Projects
	}
	projects := make([]model.Project, 0, len(source))
	for _, project := range source {
		if cfg.FeaturedOnly && !project.Featured {
			continue
		}
		projects = append(projects, project)
	}
	if cfg.SortByStars {
		sort.SliceStable(projects, func(i, j int) bool { return projects[i].Stars > projects[j].Stars })
	}
	projects = limit(projects, cfg.MaxItems)

	cards := make([]blocks.Block, 0, len(projects))
	for _, project := range projects {
		opts := blocks.ProjectCardOptions{
			Description: Interpolate(project.Description, profile),
			URL:         project.URL,
			Repo:        project.Repo,
			Language:    project.Language,
			Stars:       project.Stars,
			Forks:       project.Forks,
			Topics:      project.Topics,
			Image:       project.Image,
		}
		if cfg.HideStars {
			opts.Stars, opts.Forks = 0, 0
		}
		if cfg.HideLanguage {
			opts.Language = ""
		}
		if cfg.HideTopics {
			opts.Topics = nil
		}
		cards = append(cards, b.ProjectCard(project.Name, opts))
	}
	layout := orDefault(cfg.Layout, model.LayoutGrid)
	return titled(section, profile, rc, arrange(b, layout, cfg.Columns, rc.Styles.Alignment, cards)...), nil
}

func renderExperience(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.ExperienceContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	b := rc.builder()

	items := data.Items
	if len(items) == 0 {
		items = profile.Professional.Experience
	}

	var body []blocks.Block
	for _, item := range limit(items, cfg.MaxItems) {
		opts := blocks.ExperienceOptions{
			StartDate:    item.StartDate,
			EndDate:      item.EndDate,
			Current:      item.Current,
			Location:     item.Location,
			Description:  Interpolate(item.Description, profile),
			Highlights:   item.Highlights,
			Technologies: item.Technologies,
		}
		if cfg.HideDates {
			opts.StartDate, opts.EndDate = "", ""
		}
		if cfg.HideHighlights {
			opts.Highlights = nil
		}
		if cfg.HideTechnologies {
			opts.Technologies = nil
		}
		body = append(body, b.ExperienceItem(item.Company, item.Role, opts))
	}
	return titled(section, profile, rc, body...), nil
}

func renderEducation(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.EducationContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	b := rc.builder()

	items := data.Items
	if len(items) == 0 {
		items = profile.Professional.Education
	}

	var body []blocks.Block
	for _, item := range limit(items, cfg.MaxItems) {
		opts := blocks.EducationOptions{
			Degree:      item.Degree,
			Field:       item.Field,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
			Description: item.Description,
		}
		if cfg.HideDates {
			opts.StartDate, opts.EndDate = "", ""
		}
		body = append(body, b.EducationItem(item.Institution, opts))
	}
	return titled(section, profile, rc, body...), nil
}

func renderAchievements(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.AchievementsContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	b := rc.builder()

	items := data.Items
	if len(items) == 0 {
		items = profile.Achievements
	}

	var body []blocks.Block
	for _, item := range limit(items, cfg.MaxItems) {
		body = append(body, b.AchievementItem(item.Title, blocks.AchievementOptions{
			Description: item.Description,
			Date:        item.Date,
			Issuer:      item.Issuer,
			URL:         item.URL,
			Icon:        item.Icon,
		}))
	}
	layout := orDefault(cfg.Layout, model.LayoutFlat)
	return titled(section, profile, rc, arrange(b, layout, cfg.Columns, rc.Styles.Alignment, body)...), nil
}

// renderBlogPosts lists known posts. With no posts but a feed URL it emits
// the marker comments a feed-updating workflow fills in later.
func renderBlogPosts(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.BlogPostsContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	b := rc.builder()

	posts := data.Posts
	if len(posts) == 0 {
		posts = profile.BlogPosts
	}
	if len(posts) == 0 {
		if firstNonEmpty(data.FeedURL, profile.Integrations.Blog.FeedURL) != "" {
			return titled(section, profile, rc, b.Custom(blocks.FormatMarkdown, blogPlaceholderText)), nil
		}
		return titled(section, profile, rc), nil
	}

	var body []blocks.Block
	for _, post := range limit(posts, orDefault(cfg.MaxPosts, defaultMaxPosts)) {
		date := post.Date
		if cfg.HideDates {
			date = ""
		}
		if cfg.Style == "cards" {
			body = append(body, b.Card(post.Title, blocks.CardOptions{
				Description: post.Description,
				URL:         post.URL,
				Footer:      date,
			}))
			continue
		}
		body = append(body, b.Link(post.URL, post.Title, blocks.LinkOptions{Title: date}))
	}
	return titled(section, profile, rc, body...), nil
}
