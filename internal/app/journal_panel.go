package app

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	journalEmptyText  = "No journal entries yet"
	journalMetaLayout = "Mon Jan 2 15:04"
)

// JournalPanel renders journal entries in a scrollable viewport. Offsets are
// measured in content lines.
type JournalPanel struct {
	viewport  viewport.Model
	entries   []EntryRef
	bounds    []LineBounds
	selected  int
	width     int
	showEmpty bool
}

func NewJournalPanel(width, height int) *JournalPanel {
	p := &JournalPanel{
		viewport: viewport.New(viewport.WithWidth(max(1, width)), viewport.WithHeight(max(1, height))),
		selected: -1,
		width:    max(1, width),
	}
	p.render()
	return p
}

func (p *JournalPanel) Resize(width, height int) {
	p.width = max(1, width)
	p.viewport.SetWidth(p.width)
	p.viewport.SetHeight(max(1, height))
	p.render()
}

// SetEntries replaces the rendered entries, newest first.
func (p *JournalPanel) SetEntries(entries []EntryRef) {
	p.entries = append([]EntryRef(nil), entries...)
	p.showEmpty = len(p.entries) == 0
	if p.selected >= len(p.entries) {
		p.selected = -1
	}
	p.render()
}

func (p *JournalPanel) SelectableEntries() []EntryRef {
	return append([]EntryRef(nil), p.entries...)
}

func (p *JournalPanel) Highlight(index int) {
	if index < 0 || index >= len(p.entries) {
		index = -1
	}
	if p.selected == index {
		return
	}
	p.selected = index
	p.render()
}

func (p *JournalPanel) EntryBounds(index int) (LineBounds, bool) {
	if index < 0 || index >= len(p.bounds) {
		return LineBounds{}, false
	}
	return p.bounds[index], true
}

func (p *JournalPanel) ViewportBounds() LineBounds {
	top := p.viewport.YOffset()
	return LineBounds{Top: top, Bottom: top + p.viewport.Height() - 1}
}

// ScrollIntoView moves the viewport the least distance that shows the whole
// entry, or its top when it is taller than the viewport.
func (p *JournalPanel) ScrollIntoView(index int) bool {
	bounds, ok := p.EntryBounds(index)
	if !ok {
		return false
	}
	view := p.ViewportBounds()
	height := p.viewport.Height()
	switch {
	case bounds.Top < view.Top || bounds.Bottom-bounds.Top+1 > height:
		p.viewport.SetYOffset(bounds.Top)
	case bounds.Bottom > view.Bottom:
		p.viewport.SetYOffset(bounds.Bottom - height + 1)
	}
	return true
}

func (p *JournalPanel) RemoveEntry(key string) bool {
	for i, entry := range p.entries {
		if entry.Key != key {
			continue
		}
		p.entries = append(p.entries[:i], p.entries[i+1:]...)
		switch {
		case p.selected == i:
			p.selected = -1
		case p.selected > i:
			p.selected--
		}
		p.render()
		return true
	}
	return false
}

func (p *JournalPanel) ShowEmptyState() {
	p.showEmpty = true
	p.render()
}

func (p *JournalPanel) ScrollOffset() int {
	return p.viewport.YOffset()
}

func (p *JournalPanel) MaxScrollOffset() int {
	return max(0, p.viewport.TotalLineCount()-p.viewport.Height())
}

func (p *JournalPanel) SetScrollOffset(offset int) {
	p.viewport.SetYOffset(offset)
}

func (p *JournalPanel) View() string {
	return p.viewport.View()
}

func (p *JournalPanel) render() {
	if len(p.entries) == 0 {
		p.bounds = nil
		text := ""
		if p.showEmpty {
			text = emptyStateStyle.Render(journalEmptyText)
		}
		p.viewport.SetContent(text)
		return
	}
	lines := make([]string, 0, len(p.entries)*3)
	p.bounds = make([]LineBounds, len(p.entries))
	for i, entry := range p.entries {
		top := len(lines)
		lines = append(lines, p.renderEntry(entry, i == p.selected)...)
		p.bounds[i] = LineBounds{Top: top, Bottom: len(lines) - 1}
		if i < len(p.entries)-1 {
			lines = append(lines, "")
		}
	}
	offset := p.viewport.YOffset()
	p.viewport.SetContent(strings.Join(lines, "\n"))
	p.viewport.SetYOffset(offset)
}

func (p *JournalPanel) renderEntry(entry EntryRef, selected bool) []string {
	meta := entryMeta(entry)
	textWidth := max(1, p.width-2)
	body := strings.Split(xansi.Wordwrap(entry.Text, textWidth, " "), "\n")
	lines := make([]string, 0, len(body)+1)
	marker := "  "
	if selected {
		marker = "▌ "
		lines = append(lines, entryMetaSelectedStyle.Render(marker+meta))
	} else {
		lines = append(lines, entryMetaStyle.Render(marker+meta))
	}
	for _, line := range body {
		line = truncateToWidth(marker+line, p.width)
		if selected {
			lines = append(lines, entrySelectedStyle.Render(padToWidth(line, p.width)))
			continue
		}
		lines = append(lines, entryTextStyle.Render(line))
	}
	return lines
}

func entryMeta(entry EntryRef) string {
	meta := ""
	if !entry.Time.IsZero() {
		meta = entry.Time.Local().Format(journalMetaLayout)
	}
	if from := strings.TrimSpace(entry.From); from != "" {
		if meta != "" {
			meta += " · "
		}
		meta += from
	}
	return meta
}
