package sections

import (
	"time"

	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/model"
)

// RenderContext is the read-only snapshot threaded through every renderer of
// one render call.
type RenderContext struct {
	TemplateID   string            `json:"templateId"`
	Theme        string            `json:"theme"`
	ThemeVariant string            `json:"themeVariant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	Locale       string            `json:"locale"`
	Timestamp    time.Time         `json:"timestamp"`
	Styles       model.Styles      `json:"styles"`
	Features     model.Features    `json:"features"`

	// Blocks is the builder bound to the render's id generator.
	Blocks *blocks.Builder `json:"-"`
}

// Token returns a theme token, or fallback when the theme does not define it.
func (rc RenderContext) Token(name, fallback string) string {
	if value, ok := rc.Tokens[name]; ok && value != "" {
		return value
	}
	return fallback
}

func (rc RenderContext) builder() *blocks.Builder {
	if rc.Blocks == nil {
		return blocks.NewBuilder(nil)
	}
	return rc.Blocks
}
