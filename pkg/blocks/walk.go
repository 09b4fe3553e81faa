package blocks

import (
	"errors"
	"fmt"
)

// ErrUnhandledKind reports a block whose concrete type is not part of the
// closed set.
var ErrUnhandledKind = errors.New("blocks: unhandled block kind")

// ErrSkipChildren can be returned by a WalkFunc to skip a container's children.
var ErrSkipChildren = errors.New("blocks: skip children")

// Children returns the direct children of a block. Leaf kinds return nil. A
// block type outside the closed set returns ErrUnhandledKind instead of being
// silently treated as a leaf.
func Children(block Block) ([]Block, error) {
	switch b := block.(type) {
	case *Row:
		return b.Children, nil
	case *Column:
		return b.Children, nil
	case *Grid:
		return b.Children, nil
	case *Text, *Heading, *Paragraph, *Code, *Quote, *Image, *Link, *Badge,
		*BadgeGroup, *List, *Spacer, *Divider, *Stat, *StatGroup, *SocialLink,
		*SocialGroup, *TypingAnimation, *GitHubStatsCard, *ContributionGraph,
		*Card, *ProjectCard, *ExperienceItem, *EducationItem, *AchievementItem,
		*Custom:
		return nil, nil
	case nil:
		return nil, fmt.Errorf("%w: nil block", ErrUnhandledKind)
	default:
		return nil, fmt.Errorf("%w: %T (kind %q)", ErrUnhandledKind, block, block.BlockKind())
	}
}

// WalkFunc visits a block at the given depth (top-level blocks are depth 0).
type WalkFunc func(block Block, depth int) error

// Walk visits blocks depth-first in document order.
func Walk(blocks []Block, fn WalkFunc) error {
	return walk(blocks, 0, fn)
}

func walk(blocks []Block, depth int, fn WalkFunc) error {
	for _, block := range blocks {
		err := fn(block, depth)
		if errors.Is(err, ErrSkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		children, err := Children(block)
		if err != nil {
			return err
		}
		if len(children) == 0 {
			continue
		}
		if err := walk(children, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of blocks in the trees rooted at blocks.
func Count(blocks []Block) (int, error) {
	total := 0
	err := Walk(blocks, func(Block, int) error {
		total++
		return nil
	})
	return total, err
}

// Flatten returns every block in document order.
func Flatten(blocks []Block) ([]Block, error) {
	var out []Block
	err := Walk(blocks, func(block Block, _ int) error {
		out = append(out, block)
		return nil
	})
	return out, err
}

func (b *Base) setID(id string) { b.ID = id }

type identified interface {
	setID(id string)
}

// Renumber reassigns ids from ids in document order. Group members (badges,
// stats, social links) are numbered right after their group.
func Renumber(list []Block, ids *IDGenerator) error {
	if ids == nil {
		ids = NewIDGenerator("")
	}
	assign := func(block Block) {
		if target, ok := block.(identified); ok {
			target.setID(ids.Next())
		}
	}
	return Walk(list, func(block Block, _ int) error {
		assign(block)
		switch group := block.(type) {
		case *BadgeGroup:
			for _, member := range group.Badges {
				assign(member)
			}
		case *StatGroup:
			for _, member := range group.Stats {
				assign(member)
			}
		case *SocialGroup:
			for _, member := range group.Links {
				assign(member)
			}
		}
		return nil
	})
}
