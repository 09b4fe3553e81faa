package sections

import (
	"strings"

	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
)

const (
	defaultHeadline   = "Hi there, I'm {name}"
	defaultAvatarSize = 120
)

// renderHero emits the headline first, so the hero always opens with its
// heading. Typing lines are dropped when the template disables animations.
func renderHero(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.HeroContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	b := rc.builder()
	align := firstNonEmpty(cfg.Align, rc.Styles.Alignment)

	headline := Interpolate(firstNonEmpty(data.Headline, section.Title, defaultHeadline), profile)
	out := []blocks.Block{
		b.Heading(headline, blocks.HeadingOptions{Level: orDefault(cfg.HeadingLevel, 1), Align: align}),
	}

	if sub := firstNonEmpty(Interpolate(data.Subheadline, profile), heroSubheadline(profile)); sub != "" {
		out = append(out, b.Paragraph(sub, blocks.ParagraphOptions{Align: align}))
	}

	if cfg.ShowAvatar {
		if avatar := firstNonEmpty(data.AvatarURL, profile.AvatarURL()); avatar != "" {
			size := orDefault(cfg.AvatarSize, defaultAvatarSize)
			out = append(out, b.Image(profile.Name(), blocks.ImageOptions{
				Src:    avatar,
				Width:  size,
				Height: size,
				Align:  align,
			}))
		}
	}

	if cfg.ShowTyping && rc.Features.Animations {
		if lines := interpolateAll(data.TypingLines, profile); len(lines) > 0 {
			out = append(out, b.TypingAnimation(lines, blocks.TypingOptions{
				Font:  cfg.TypingFont,
				Color: firstNonEmpty(cfg.TypingColor, rc.Styles.AccentColor, rc.Token("accent", "")),
			}))
		}
	}
	return out, nil
}

func heroSubheadline(profile model.UserProfile) string {
	title := strings.TrimSpace(profile.Professional.Title)
	company := profile.Company()
	switch {
	case title != "" && company != "":
		return title + " at " + company
	default:
		return title
	}
}

func renderAbout(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.AboutContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	b := rc.builder()

	var body []blocks.Block
	if bio := Interpolate(firstNonEmpty(data.Bio, profile.Bio()), profile); bio != "" {
		body = append(body, b.Paragraph(bio, blocks.ParagraphOptions{Align: rc.Styles.Alignment}))
	}

	var items []string
	if !cfg.HideHighlights {
		items = interpolateAll(data.Highlights, profile)
	}
	facts := []struct{ prefix, value string }{
		{"🔭 I'm currently working on ", data.CurrentFocus},
		{"🌱 I'm currently learning ", data.Learning},
		{"👯 I'm looking to collaborate on ", data.Collaborate},
		{"⚡ Fun fact: ", data.FunFact},
	}
	for _, fact := range facts {
		if value := strings.TrimSpace(Interpolate(fact.value, profile)); value != "" {
			items = append(items, fact.prefix+value)
		}
	}

	if len(items) > 0 {
		if cfg.Style == "paragraph" {
			for _, item := range items {
				body = append(body, b.Paragraph(item, blocks.ParagraphOptions{}))
			}
		} else {
			body = append(body, b.List(items, blocks.ListOptions{}))
		}
	}
	return titled(section, profile, rc, body...), nil
}

func renderContact(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.ContactContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	b := rc.builder()

	type entry struct {
		label, value, url, logo string
	}
	var entries []entry
	if email := firstNonEmpty(data.Email, profile.Personal.Email); email != "" && !cfg.HideEmail {
		entries = append(entries, entry{"Email", email, "mailto:" + email, "gmail"})
	}
	if site := firstNonEmpty(data.Website, profile.Website()); site != "" {
		entries = append(entries, entry{"Website", site, site, "googlechrome"})
	}
	if cal := strings.TrimSpace(data.CalendarURL); cal != "" {
		entries = append(entries, entry{"Book a call", cal, cal, "googlecalendar"})
	}

	var body []blocks.Block
	if msg := Interpolate(data.Message, profile); strings.TrimSpace(msg) != "" {
		body = append(body, b.Paragraph(msg, blocks.ParagraphOptions{Align: cfg.Align}))
	}

	if cfg.Style == "links" {
		for _, e := range entries {
			body = append(body, b.Link(e.url, e.label+": "+e.value, blocks.LinkOptions{}))
		}
	} else if len(entries) > 0 {
		badges := make([]*blocks.Badge, 0, len(entries))
		for _, e := range entries {
			badges = append(badges, b.Badge(e.label, blocks.BadgeOptions{
				Color: rc.Token("accent", firstNonEmpty(rc.Styles.AccentColor, "555555")),
				Style: firstNonEmpty(rc.Styles.BadgeStyle, blocks.DefaultBadgeStyle),
				Logo:  e.logo,
				Link:  e.url,
			}))
		}
		body = append(body, b.BadgeGroup(badges, blocks.BadgeGroupOptions{Align: cfg.Align}))
	}

	if loc := firstNonEmpty(data.Location, profile.Location()); loc != "" {
		body = append(body, b.Text("📍 "+loc, blocks.TextOptions{}))
	}
	return titled(section, profile, rc, body...), nil
}

var socialURLs = map[string]string{
	"github":        "https://github.com/",
	"twitter":       "https://twitter.com/",
	"x":             "https://x.com/",
	"linkedin":      "https://www.linkedin.com/in/",
	"dev":           "https://dev.to/",
	"devto":         "https://dev.to/",
	"medium":        "https://medium.com/@",
	"youtube":       "https://www.youtube.com/@",
	"instagram":     "https://www.instagram.com/",
	"twitch":        "https://www.twitch.tv/",
	"stackoverflow": "https://stackoverflow.com/users/",
}

// socialURL returns the link's URL, deriving it from platform and username
// when the platform has a well-known profile URL.
func socialURL(link model.SocialLink) string {
	if url := strings.TrimSpace(link.URL); url != "" {
		return url
	}
	username := strings.TrimSpace(link.Username)
	prefix := socialURLs[strings.ToLower(strings.TrimSpace(link.Platform))]
	if username == "" || prefix == "" {
		return ""
	}
	return prefix + username
}

func renderSocials(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.SocialsContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	b := rc.builder()

	links := data.Links
	if len(links) == 0 {
		links = profile.Socials
	}
	style := orDefault(cfg.Style, "badges")

	out := make([]*blocks.SocialLink, 0, len(links))
	for _, link := range links {
		url := socialURL(link)
		if url == "" {
			continue
		}
		label := ""
		if !cfg.HideLabels {
			label = firstNonEmpty(link.Label, link.Platform)
		}
		out = append(out, b.SocialLink(strings.ToLower(link.Platform), url, blocks.SocialLinkOptions{
			Username: link.Username,
			Label:    label,
			Style:    style,
		}))
	}
	if len(out) == 0 {
		return titled(section, profile, rc), nil
	}
	group := b.SocialGroup(out, blocks.SocialGroupOptions{
		Style: style,
		Align: firstNonEmpty(cfg.Align, rc.Styles.Alignment),
	})
	return titled(section, profile, rc, group), nil
}

func renderQuote(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.QuoteContent](section)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(Interpolate(content.Data.Text, profile))
	if text == "" {
		return nil, rendererr.SectionDataInvalid(section.ID, string(section.Type()), "quote text is required")
	}
	author := strings.TrimSpace(Interpolate(content.Data.Author, profile))
	b := rc.builder()

	var block blocks.Block
	if content.Config.Style == "card" {
		footer := ""
		if author != "" {
			footer = "- " + author
		}
		block = b.Card(text, blocks.CardOptions{Footer: footer})
	} else {
		block = b.Quote(text, blocks.QuoteOptions{Author: author})
	}
	return titled(section, profile, rc, block), nil
}

func renderDivider(section model.Section, _ model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.DividerContent](section)
	if err != nil {
		return nil, err
	}
	return []blocks.Block{rc.builder().Divider(blocks.DividerOptions{Style: content.Config.Style})}, nil
}

func renderSpacer(section model.Section, _ model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.SpacerContent](section)
	if err != nil {
		return nil, err
	}
	return []blocks.Block{rc.builder().Spacer(blocks.SpacerOptions{Height: content.Config.Height})}, nil
}
