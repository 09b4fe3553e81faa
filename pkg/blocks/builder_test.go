package blocks_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readmegen/pkg/blocks"
)

func sampleOfEveryKind(b *blocks.Builder) []blocks.Block {
	badge := b.Badge("Go", blocks.BadgeOptions{})
	stat := b.Stat("Stars", "42", blocks.StatOptions{})
	social := b.SocialLink("github", "https://github.com/ada", blocks.SocialLinkOptions{})
	return []blocks.Block{
		b.Text("plain", blocks.TextOptions{}),
		b.Heading("Title", blocks.HeadingOptions{}),
		b.Paragraph("Body", blocks.ParagraphOptions{}),
		b.Code("fmt.Println()", blocks.CodeOptions{Language: "go"}),
		b.Quote("Simplicity", blocks.QuoteOptions{}),
		b.Image("avatar", blocks.ImageOptions{Src: "avatar.png"}),
		b.Link("https://example.com", "", blocks.LinkOptions{}),
		badge,
		b.BadgeGroup([]*blocks.Badge{b.Badge("Rust", blocks.BadgeOptions{})}, blocks.BadgeGroupOptions{}),
		b.List([]string{"a"}, blocks.ListOptions{}),
		b.Spacer(blocks.SpacerOptions{}),
		b.Divider(blocks.DividerOptions{}),
		b.Row([]blocks.Block{b.Text("r", blocks.TextOptions{})}, blocks.RowOptions{}),
		b.Column([]blocks.Block{b.Text("c", blocks.TextOptions{})}, blocks.ColumnOptions{}),
		b.Grid([]blocks.Block{b.Text("g", blocks.TextOptions{})}, blocks.GridOptions{}),
		stat,
		b.StatGroup([]*blocks.Stat{b.Stat("Forks", "3", blocks.StatOptions{})}, blocks.StatGroupOptions{}),
		social,
		b.SocialGroup([]*blocks.SocialLink{b.SocialLink("x", "https://x.com/ada", blocks.SocialLinkOptions{})}, blocks.SocialGroupOptions{}),
		b.TypingAnimation([]string{"Hello"}, blocks.TypingOptions{}),
		b.GitHubStatsCard("ada", blocks.CardTypeStats, blocks.StatsCardOptions{}),
		b.ContributionGraph("ada", blocks.ContributionGraphOptions{}),
		b.Card("Card", blocks.CardOptions{}),
		b.ProjectCard("engine", blocks.ProjectCardOptions{}),
		b.ExperienceItem("Acme", "Engineer", blocks.ExperienceOptions{}),
		b.EducationItem("MIT", blocks.EducationOptions{}),
		b.AchievementItem("Award", blocks.AchievementOptions{}),
		b.Custom("", "<!-- raw -->"),
	}
}

func TestBuilder_CoversEveryKind(t *testing.T) {
	b := blocks.NewBuilder(nil)
	seen := make(map[blocks.Kind]bool)
	for _, block := range sampleOfEveryKind(b) {
		if !block.IsVisible() {
			t.Fatalf("block %s should default to visible", block.BlockKind())
		}
		if _, err := blocks.Children(block); err != nil {
			t.Fatalf("children(%s): %v", block.BlockKind(), err)
		}
		seen[block.BlockKind()] = true
	}
	for _, kind := range blocks.AllKinds() {
		if !seen[kind] {
			t.Errorf("no builder produced kind %q", kind)
		}
		if !kind.Valid() {
			t.Errorf("kind %q should be valid", kind)
		}
	}
	if len(seen) != len(blocks.AllKinds()) {
		t.Fatalf("expected %d kinds, got %d", len(blocks.AllKinds()), len(seen))
	}
}

func TestBuilder_Defaults(t *testing.T) {
	b := blocks.NewBuilder(blocks.NewIDGenerator("t"))

	if got := b.Heading("x", blocks.HeadingOptions{}).Level; got != blocks.DefaultHeadingLevel {
		t.Fatalf("heading level default: want %d, got %d", blocks.DefaultHeadingLevel, got)
	}
	if got := b.Heading("x", blocks.HeadingOptions{Level: 9}).Level; got != 6 {
		t.Fatalf("heading level clamp: want 6, got %d", got)
	}
	if got := b.Badge("Go", blocks.BadgeOptions{}).Style; got != "for-the-badge" {
		t.Fatalf("badge style default: got %q", got)
	}
	if got := b.Badge("Go", blocks.BadgeOptions{Style: "flat"}).Style; got != "flat" {
		t.Fatalf("badge style override: got %q", got)
	}
	if got := b.Spacer(blocks.SpacerOptions{}).Height; got != blocks.DefaultSpacerHeight {
		t.Fatalf("spacer height default: got %d", got)
	}
	if got := b.Grid(nil, blocks.GridOptions{Columns: -1}).Columns; got != blocks.DefaultGridColumns {
		t.Fatalf("grid columns default: got %d", got)
	}
	if got := b.Link("https://example.com", "", blocks.LinkOptions{}).Label; got != "https://example.com" {
		t.Fatalf("link label fallback: got %q", got)
	}
	if got := b.Custom("", "x").Format; got != blocks.FormatMarkdown {
		t.Fatalf("custom format default: got %q", got)
	}

	typing := b.TypingAnimation([]string{"hi"}, blocks.TypingOptions{Color: "#FF0000", Repeat: blocks.Bool(false)})
	want := &blocks.TypingAnimation{
		Base:     typing.Base,
		Lines:    []string{"hi"},
		Font:     blocks.DefaultTypingFont,
		Size:     blocks.DefaultTypingSize,
		Color:    "FF0000",
		Center:   true,
		VCenter:  true,
		Width:    blocks.DefaultTypingWidth,
		Height:   blocks.DefaultTypingHeight,
		Pause:    blocks.DefaultTypingPause,
		Duration: blocks.DefaultTypingRuntime,
		Repeat:   false,
	}
	if diff := cmp.Diff(want, typing); diff != "" {
		t.Fatalf("typing defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestIDGenerator_OrderedAndResettable(t *testing.T) {
	ids := blocks.NewIDGenerator("")
	b := blocks.NewBuilder(ids)

	first := b.Text("a", blocks.TextOptions{})
	second := b.Text("b", blocks.TextOptions{})
	if first.ID != "block-1" || second.ID != "block-2" {
		t.Fatalf("unexpected ids %q, %q", first.ID, second.ID)
	}

	ids.Reset()
	if got := b.Text("c", blocks.TextOptions{}).ID; got != "block-1" {
		t.Fatalf("reset should rewind ids, got %q", got)
	}
}

func TestIDGenerator_ConcurrentUse(t *testing.T) {
	ids := blocks.NewIDGenerator("p")
	const workers, perWorker = 8, 50

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := ids.Next()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d unique ids, got %d", workers*perWorker, len(seen))
	}
	if ids.Count() != workers*perWorker {
		t.Fatalf("count mismatch: %d", ids.Count())
	}
}

type foreignBlock struct {
	blocks.Base
}

func TestWalk_VisitsNestedTreesAndRejectsForeignKinds(t *testing.T) {
	b := blocks.NewBuilder(nil)
	tree := []blocks.Block{
		b.Heading("Top", blocks.HeadingOptions{}),
		b.Grid([]blocks.Block{
			b.Column([]blocks.Block{b.Text("inner", blocks.TextOptions{})}, blocks.ColumnOptions{}),
			b.Badge("Go", blocks.BadgeOptions{}),
		}, blocks.GridOptions{}),
	}

	var kinds []blocks.Kind
	var depths []int
	err := blocks.Walk(tree, func(block blocks.Block, depth int) error {
		kinds = append(kinds, block.BlockKind())
		depths = append(depths, depth)
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	wantKinds := []blocks.Kind{blocks.KindHeading, blocks.KindGrid, blocks.KindColumn, blocks.KindText, blocks.KindBadge}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("walk order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 0, 1, 2, 1}, depths); diff != "" {
		t.Fatalf("walk depth mismatch (-want +got):\n%s", diff)
	}

	total, err := blocks.Count(tree)
	if err != nil || total != 5 {
		t.Fatalf("count: want 5, got %d (err=%v)", total, err)
	}

	foreign := &foreignBlock{Base: blocks.Base{ID: "x", Kind: "mystery", Visible: true}}
	if _, err := blocks.Flatten([]blocks.Block{foreign}); !errors.Is(err, blocks.ErrUnhandledKind) {
		t.Fatalf("expected ErrUnhandledKind, got %v", err)
	}
}

func TestRenumber_DocumentOrder(t *testing.T) {
	b := blocks.NewBuilder(blocks.NewIDGenerator("tmp"))
	group := b.BadgeGroup([]*blocks.Badge{
		b.Badge("Go", blocks.BadgeOptions{}),
		b.Badge("Rust", blocks.BadgeOptions{}),
	}, blocks.BadgeGroupOptions{})
	inner := b.Text("inner", blocks.TextOptions{})
	row := b.Row([]blocks.Block{inner, group}, blocks.RowOptions{})
	heading := b.Heading("Top", blocks.HeadingOptions{})
	tree := []blocks.Block{heading, row}

	if err := blocks.Renumber(tree, blocks.NewIDGenerator("")); err != nil {
		t.Fatalf("renumber: %v", err)
	}
	got := []string{heading.ID, row.ID, inner.ID, group.ID, group.Badges[0].ID, group.Badges[1].ID}
	want := []string{"block-1", "block-2", "block-3", "block-4", "block-5", "block-6"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("renumbered ids mismatch (-want +got):\n%s", diff)
	}
}
