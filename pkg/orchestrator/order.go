package orchestrator

import (
	"sort"

	"github.com/goliatone/go-readmegen/pkg/model"
)

// orderSections resolves each section's position: a layout slot naming the
// section id wins, then a slot naming its type, then the section's own Order.
// The sort is stable, so ties keep declaration order. Sections sharing a type
// slot all receive that slot's order.
func orderSections(tpl model.Template) []model.Section {
	byID := make(map[string]int)
	byType := make(map[model.SectionType]int)
	if tpl.Layout != nil {
		for _, slot := range tpl.Layout.Slots {
			if slot.SectionID != "" {
				if _, dup := byID[slot.SectionID]; !dup {
					byID[slot.SectionID] = slot.Order
				}
				continue
			}
			if slot.Type != "" {
				if _, dup := byType[slot.Type]; !dup {
					byType[slot.Type] = slot.Order
				}
			}
		}
	}

	type positioned struct {
		section model.Section
		order   int
	}
	items := make([]positioned, 0, len(tpl.Sections))
	for _, section := range tpl.Sections {
		order, ok := byID[section.ID]
		if !ok {
			order, ok = byType[section.Type()]
		}
		if !ok {
			order = section.Order
		}
		items = append(items, positioned{section: section, order: order})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].order < items[j].order })

	out := make([]model.Section, 0, len(items))
	for _, item := range items {
		out = append(out, item.section)
	}
	return out
}
