package sections

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-readmegen/pkg/blocks"
	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
)

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy

	markdownOnce sync.Once
	markdown     goldmark.Markdown
)

// SanitizeHTML strips markup that is unsafe in a profile README while keeping
// the alignment attributes READMEs rely on.
func SanitizeHTML(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(htmlSanitizer().Sanitize(trimmed))
}

func htmlSanitizer() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("align").OnElements("p", "div", "img", "h1", "h2", "h3", "h4", "h5", "h6", "td", "th")
		policy.AllowAttrs("width", "height").OnElements("img", "td", "th")
		policy.AllowElements("picture", "source", "details", "summary")
		policy.AllowAttrs("media", "srcset").OnElements("source")
		htmlPolicy = policy
	})
	return htmlPolicy
}

func markdownParser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New()
	})
	return markdown
}

func renderCustomMarkdown(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.CustomMarkdownContent](section)
	if err != nil {
		return nil, err
	}
	source := strings.TrimSpace(Interpolate(content.Data.Content, profile))
	if source == "" {
		return titled(section, profile, rc), nil
	}
	b := rc.builder()
	if !content.Config.Structured {
		return titled(section, profile, rc, b.Custom(blocks.FormatMarkdown, source)), nil
	}
	return titled(section, profile, rc, MarkdownBlocks(b, []byte(source))...), nil
}

func renderCustomHTML(section model.Section, profile model.UserProfile, rc RenderContext) ([]blocks.Block, error) {
	content, err := contentOf[*model.CustomHTMLContent](section)
	if err != nil {
		return nil, err
	}
	if !rc.Features.CustomHTML {
		return nil, rendererr.FeatureDisabled("customHtml", section.ID, string(section.Type()))
	}
	source := Interpolate(content.Data.Content, profile)
	if !content.Config.AllowUnsafe {
		source = SanitizeHTML(source)
	}
	source = strings.TrimSpace(source)
	if source == "" {
		return titled(section, profile, rc), nil
	}
	return titled(section, profile, rc, rc.builder().Custom(blocks.FormatHTML, source)), nil
}

// MarkdownBlocks parses markdown and maps each top-level node to a block.
// Nodes without a block equivalent are kept verbatim as custom markdown.
func MarkdownBlocks(b *blocks.Builder, source []byte) []blocks.Block {
	doc := markdownParser().Parser().Parse(text.NewReader(source))

	var out []blocks.Block
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			out = append(out, b.Heading(inlineText(n, source), blocks.HeadingOptions{Level: n.Level}))
		case *ast.Paragraph:
			out = append(out, b.Paragraph(inlineText(n, source), blocks.ParagraphOptions{}))
		case *ast.FencedCodeBlock:
			out = append(out, b.Code(blockLines(n, source), blocks.CodeOptions{Language: string(n.Language(source))}))
		case *ast.CodeBlock:
			out = append(out, b.Code(blockLines(n, source), blocks.CodeOptions{}))
		case *ast.Blockquote:
			out = append(out, b.Quote(childText(n, source, "\n"), blocks.QuoteOptions{}))
		case *ast.List:
			var items []string
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				items = append(items, childText(item, source, " "))
			}
			out = append(out, b.List(items, blocks.ListOptions{Ordered: n.IsOrdered(), Start: n.Start}))
		case *ast.ThematicBreak:
			out = append(out, b.Divider(blocks.DividerOptions{}))
		case *ast.HTMLBlock:
			if html := SanitizeHTML(blockLines(n, source)); html != "" {
				out = append(out, b.Custom(blocks.FormatHTML, html))
			}
		default:
			if raw := strings.TrimSpace(blockLines(node, source)); raw != "" {
				out = append(out, b.Custom(blocks.FormatMarkdown, raw))
			}
		}
	}
	return out
}

func blockLines(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// childText joins the text of block children, such as the paragraphs of a
// blockquote or list item.
func childText(node ast.Node, source []byte, sep string) string {
	var parts []string
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if value := inlineText(child, source); value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, sep)
}

// inlineText flattens the inline children of node, turning line breaks into
// spaces and dropping emphasis and link markup.
func inlineText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.URL(source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
