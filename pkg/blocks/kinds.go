package blocks

// Kind tags every block variant.
type Kind string

const (
	KindText              Kind = "text"
	KindHeading           Kind = "heading"
	KindParagraph         Kind = "paragraph"
	KindCode              Kind = "code"
	KindQuote             Kind = "quote"
	KindImage             Kind = "image"
	KindLink              Kind = "link"
	KindBadge             Kind = "badge"
	KindBadgeGroup        Kind = "badge-group"
	KindList              Kind = "list"
	KindSpacer            Kind = "spacer"
	KindDivider           Kind = "divider"
	KindRow               Kind = "row"
	KindColumn            Kind = "column"
	KindGrid              Kind = "grid"
	KindStat              Kind = "stat"
	KindStatGroup         Kind = "stat-group"
	KindSocialLink        Kind = "social-link"
	KindSocialGroup       Kind = "social-group"
	KindTypingAnimation   Kind = "typing-animation"
	KindGitHubStatsCard   Kind = "github-stats-card"
	KindContributionGraph Kind = "contribution-graph"
	KindCard              Kind = "card"
	KindProjectCard       Kind = "project-card"
	KindExperienceItem    Kind = "experience-item"
	KindEducationItem     Kind = "education-item"
	KindAchievementItem   Kind = "achievement-item"
	KindCustom            Kind = "custom"
)

var allKinds = []Kind{
	KindText,
	KindHeading,
	KindParagraph,
	KindCode,
	KindQuote,
	KindImage,
	KindLink,
	KindBadge,
	KindBadgeGroup,
	KindList,
	KindSpacer,
	KindDivider,
	KindRow,
	KindColumn,
	KindGrid,
	KindStat,
	KindStatGroup,
	KindSocialLink,
	KindSocialGroup,
	KindTypingAnimation,
	KindGitHubStatsCard,
	KindContributionGraph,
	KindCard,
	KindProjectCard,
	KindExperienceItem,
	KindEducationItem,
	KindAchievementItem,
	KindCustom,
}

// AllKinds returns the closed set of block kinds in declaration order.
func AllKinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

// IsContainer reports whether blocks of the kind hold child blocks.
func (k Kind) IsContainer() bool {
	switch k {
	case KindRow, KindColumn, KindGrid:
		return true
	default:
		return false
	}
}

// Valid reports whether k belongs to the closed set.
func (k Kind) Valid() bool {
	for _, known := range allKinds {
		if known == k {
			return true
		}
	}
	return false
}
