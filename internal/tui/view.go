package tui

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/dinemenu/internal/domain/menu"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu/rate"
)

const (
	quickRateCount = 2
	cardLines      = 4
	chromeLines    = 12
	helpText       = "tab/shift+tab category • ↑/↓ move • enter expand • ctrl+r refresh • esc quit"
)

// card holds the rate breakdown of one item as a card shows it.
type card struct {
	all   []rate.Entry
	quick []rate.Entry // rates after the first, shown while collapsed
	more  int          // priced rates beyond the quick view
	extra bool         // the item has any of rate3..rate7
}

func newCard(item *menu.Item) card {
	all := rate.Extract(item)
	return card{
		all:   all,
		quick: all[min(1, len(all)):min(1+quickRateCount, len(all))],
		more:  max(len(all)-1-quickRateCount, 0),
		extra: rate.HasAdditional(item),
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// View renders the browser.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dine Menu"))
	if m.loaded {
		b.WriteString("  " + mutedStyle.Render(fmt.Sprintf("%d of %d items", len(m.visible), len(m.items))))
	}
	if m.loading && m.loaded {
		b.WriteString("  " + m.spinner.View() + mutedStyle.Render(" refreshing"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Could not load menu: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && !m.loaded:
		b.WriteString(m.spinner.View() + " Loading menu...\n")
	case len(m.visible) == 0:
		b.WriteString(m.emptyView())
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

func (m Model) tabsView() string {
	tabs := make([]string, len(m.categories))
	for i, c := range m.categories {
		if i == m.category {
			tabs[i] = activeTabStyle.Render(c)
		} else {
			tabs[i] = tabStyle.Render(c)
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) emptyView() string {
	if m.input.Value() != "" {
		return nameStyle.Render("No items found") + "\n" +
			mutedStyle.Render("Try adjusting your search terms") + "\n"
	}
	return nameStyle.Render("No menu items available") + "\n" +
		mutedStyle.Render("Press ctrl+r to refresh") + "\n"
}

// listView renders the window of cards that keeps the cursor on screen.
func (m Model) listView() string {
	capacity := len(m.visible)
	if m.height > 0 {
		capacity = max((m.height-chromeLines)/cardLines, 1)
	}
	start := max(m.cursor-capacity+1, 0)
	end := min(start+capacity, len(m.visible))

	var b strings.Builder
	for i := start; i < end; i++ {
		item := m.visible[i]
		b.WriteString(renderCard(&item, i == m.cursor, m.expanded.Has(item.ID)))
		b.WriteString("\n")
	}
	if end < len(m.visible) {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  … %d more below", len(m.visible)-end)) + "\n")
	}
	return b.String()
}

func renderCard(item *menu.Item, selected, expanded bool) string {
	c := newCard(item)

	marker, name := "  ", nameStyle.Render(item.Name)
	if selected {
		marker, name = selectedStyle.Render("> "), selectedStyle.Render(item.Name)
	}

	var b strings.Builder
	b.WriteString(marker + name + "  " + mutedStyle.Render("#"+item.Code) + "  " + badgeStyle.Render("["+item.DisplayCategory()+"]"))
	if item.Kitchen != "" {
		b.WriteString("  " + mutedStyle.Render("Kitchen: ") + item.Kitchen)
	}
	b.WriteString("\n    " + priceStyle.Render(rate.Format(item.Rate)) + " " + mutedStyle.Render("Base Rate"))
	for _, e := range c.quick {
		b.WriteString("   " + priceStyle.Render(rate.Format(e.Value)) + " " + mutedStyle.Render(e.Label))
	}

	b.WriteString("\n    " + mutedStyle.Render(plural(len(c.all), "rate")+" available"))
	if c.extra {
		toggle := "▼ Show All Rates"
		if expanded {
			toggle = "▲ Show Less Rates"
		}
		b.WriteString(mutedStyle.Render(" · " + plural(c.more, "more rate") + " · " + toggle))
	}
	b.WriteString("\n")

	if expanded {
		b.WriteString(renderExpanded(item, c))
	}
	return b.String()
}

func renderExpanded(item *menu.Item, c card) string {
	var b strings.Builder
	b.WriteString("    " + nameStyle.Render("All Available Rates") + "\n")
	for i, e := range c.all {
		line := fmt.Sprintf("      %-10s %s", e.Label, priceStyle.Render(rate.Format(e.Value)))
		if i == 0 {
			line += " " + primaryTag.Render("PRIMARY")
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("    " + mutedStyle.Render("Category: ") + item.DisplayCategory() + "\n")
	if item.Kitchen != "" {
		b.WriteString("    " + mutedStyle.Render("Kitchen: ") + item.Kitchen + "\n")
	}
	b.WriteString("    " + mutedStyle.Render("Item Code: ") + "#" + item.Code + "\n")
	return b.String()
}
