package sections

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
)

const (
	defaultLangsLayout = "compact"
	defaultSpotifyMode = "now-playing"
)

// githubUsername resolves the section override before the profile. The
// GitHub-backed renderers refuse to run without one even when validation was
// skipped.
func githubUsername(section model.Section, override string, profile model.UserProfile) (string, error) {
	if username := firstNonEmpty(override, profile.Username()); username != "" {
		return username, nil
	}
	return "", rendererr.GitHubUsernameRequired(section.ID, string(section.Type()))
}

func cardTheme(rc RenderContext, configured string) string {
	return firstNonEmpty(configured, rc.Token("stats-theme", ""), rc.Styles.Theme)
}

func renderGitHubStats(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.GitHubStatsContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	username, err := githubUsername(section, data.Username, profile)
	if err != nil {
		return nil, err
	}
	b := rc.builder()

	showStats, showLangs := cfg.ShowStats, cfg.ShowLanguages
	if !cfg.ShowStats && !cfg.ShowLanguages && !cfg.ShowStreak && !cfg.ShowTrophies {
		showStats, showLangs = true, true
	}

	base := blocks.StatsCardOptions{
		Theme:      cardTheme(rc, cfg.Theme),
		HideBorder: cfg.HideBorder,
		HideTitle:  cfg.HideTitle,
	}
	var cards []blocks.Block
	if showStats {
		opts := base
		opts.ShowIcons = cfg.ShowIcons
		opts.IncludeAllCommits = cfg.IncludeAllCommits
		opts.CountPrivate = cfg.CountPrivate
		opts.Hide = cfg.Hide
		cards = append(cards, b.GitHubStatsCard(username, blocks.CardTypeStats, opts))
	}
	if showLangs {
		opts := base
		opts.Layout = orDefault(cfg.LangsLayout, defaultLangsLayout)
		opts.LangsCount = cfg.LangsCount
		cards = append(cards, b.GitHubStatsCard(username, blocks.CardTypeTopLangs, opts))
	}
	if cfg.ShowStreak {
		cards = append(cards, b.GitHubStatsCard(username, blocks.CardTypeStreak, base))
	}
	if cfg.ShowTrophies {
		cards = append(cards, b.GitHubStatsCard(username, blocks.CardTypeTrophies, base))
	}

	layout := orDefault(cfg.Layout, model.LayoutRow)
	return titled(section, profile, rc, arrange(b, layout, cfg.Columns, rc.Styles.Alignment, cards)...), nil
}

func renderContributions(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.ContributionsContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	username, err := githubUsername(section, data.Username, profile)
	if err != nil {
		return nil, err
	}
	graph := rc.builder().ContributionGraph(username, blocks.ContributionGraphOptions{
		Variant:    cfg.Variant,
		Theme:      cardTheme(rc, cfg.Theme),
		Area:       cfg.Area,
		HideBorder: cfg.HideBorder,
		Color:      firstNonEmpty(cfg.Color, rc.Styles.AccentColor),
	})
	return titled(section, profile, rc, graph), nil
}

// renderPinnedRepos pins the listed repositories, or the profile projects
// that reference a repository. Entries without an owner belong to the user.
func renderPinnedRepos(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.PinnedReposContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	username, err := githubUsername(section, data.Username, profile)
	if err != nil {
		return nil, err
	}
	b := rc.builder()

	repos := data.Repos
	if len(repos) == 0 {
		for _, project := range profile.Projects {
			if repo := strings.TrimSpace(project.Repo); repo != "" {
				repos = append(repos, repo)
			}
		}
	}

	var cards []blocks.Block
	for _, repo := range limit(repos, cfg.MaxItems) {
		owner, name := username, strings.TrimSpace(repo)
		if idx := strings.Index(name, "/"); idx >= 0 {
			owner, name = name[:idx], name[idx+1:]
		}
		if name == "" {
			continue
		}
		cards = append(cards, b.GitHubStatsCard(owner, blocks.CardTypePin, blocks.StatsCardOptions{
			Repo:       name,
			Theme:      cardTheme(rc, cfg.Theme),
			ShowOwner:  cfg.ShowOwner,
			HideBorder: cfg.HideBorder,
		}))
	}
	layout := orDefault(cfg.Layout, model.LayoutGrid)
	return titled(section, profile, rc, arrange(b, layout, cfg.Columns, rc.Styles.Alignment, cards)...), nil
}

func renderSpotify(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.SpotifyContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	userID := firstNonEmpty(data.UserID, profile.Integrations.Spotify.UserID)
	if userID == "" {
		return nil, rendererr.SectionDataInvalid(section.ID, string(section.Type()), "spotify user id is required")
	}

	params := map[string]string{
		"uid":         userID,
		"mode":        orDefault(cfg.Mode, defaultSpotifyMode),
		"showOffline": strconv.FormatBool(cfg.ShowOffline),
	}
	if theme := firstNonEmpty(cfg.Theme, rc.Styles.Theme); theme != "" {
		params["theme"] = theme
	}
	if bg := strings.TrimPrefix(strings.TrimSpace(cfg.Background), "#"); bg != "" {
		params["background"] = bg
	}
	image := rc.builder().Image("Spotify", blocks.ImageOptions{
		Width: cfg.Width,
		Asset: &blocks.AssetRef{Provider: "spotify", Params: params},
	})
	return titled(section, profile, rc, image), nil
}

func renderWakaTime(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.WakaTimeContent](section)
	if err != nil {
		return nil, err
	}
	data, cfg := content.Data, content.Config
	username := firstNonEmpty(data.Username, profile.Integrations.WakaTime.Username)
	if username == "" {
		return nil, rendererr.SectionDataInvalid(section.ID, string(section.Type()), "wakatime username is required")
	}
	card := rc.builder().GitHubStatsCard(username, blocks.CardTypeWakaTime, blocks.StatsCardOptions{
		Theme:      cardTheme(rc, cfg.Theme),
		Layout:     orDefault(cfg.Layout, defaultLangsLayout),
		HideBorder: cfg.HideBorder,
		LangsCount: cfg.LangsCount,
	})
	return titled(section, profile, rc, card), nil
}
