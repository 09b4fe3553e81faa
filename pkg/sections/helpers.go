package sections

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_.-]*)\}`)

// Interpolate replaces {name}, {firstName}, {username}, {title}, {company},
// {location} and custom field placeholders with profile values. Unknown
// placeholders are left untouched.
func Interpolate(text string, profile model.UserProfile) string {
	if !strings.Contains(text, "{") {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := match[1 : len(match)-1]
		switch key {
		case "name":
			return profile.Name()
		case "firstName":
			return profile.FirstName()
		case "username":
			return profile.Username()
		case "title":
			return profile.Professional.Title
		case "company":
			return profile.Company()
		case "location":
			return profile.Location()
		}
		if value, ok := profile.CustomFields[key]; ok {
			return value
		}
		return match
	})
}

// contentOf asserts the section's content variant.
func contentOf[T model.Content](section model.Section) (T, error) {
	content, ok := section.Content.(T)
	if !ok {
		var zero T
		return zero, rendererr.SectionDataInvalid(section.ID, string(section.Type()),
			fmt.Sprintf("unexpected content %T", section.Content))
	}
	return content, nil
}

// titled prefixes blocks with a level 2 heading when the section has a title.
func titled(section model.Section, profile model.UserProfile, rc RenderContext, body ...blocks.Block) []blocks.Block {
	title := strings.TrimSpace(Interpolate(section.Title, profile))
	if title == "" {
		return append([]blocks.Block{}, body...)
	}
	out := make([]blocks.Block, 0, len(body)+1)
	out = append(out, rc.builder().Heading(title, blocks.HeadingOptions{Align: rc.Styles.Alignment}))
	return append(out, body...)
}

// arrange applies a layout decision once: flat keeps the sequence, row, grid
// and stack wrap it in a single container.
func arrange(b *blocks.Builder, layout string, columns int, align string, children []blocks.Block) []blocks.Block {
	if len(children) == 0 {
		return children
	}
	switch layout {
	case model.LayoutRow:
		return []blocks.Block{b.Row(children, blocks.RowOptions{Align: align})}
	case model.LayoutGrid:
		return []blocks.Block{b.Grid(children, blocks.GridOptions{Columns: columns})}
	case model.LayoutStack:
		return []blocks.Block{b.Column(children, blocks.ColumnOptions{Align: align})}
	default:
		return children
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func orDefault[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}
	return value
}

func interpolateAll(lines []string, profile model.UserProfile) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if text := strings.TrimSpace(Interpolate(line, profile)); text != "" {
			out = append(out, text)
		}
	}
	return out
}
