package app

import (
	"strings"
	"testing"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
)

func panelEntries(n int) []EntryRef {
	entries := make([]EntryRef, n)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := range entries {
		entries[i] = EntryRef{
			Key:  string(rune('a' + i)),
			Text: "entry " + string(rune('a'+i)),
			Time: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return entries
}

func TestJournalPanelEntryBounds(t *testing.T) {
	panel := NewJournalPanel(40, 4)
	panel.SetEntries(panelEntries(3))
	want := []LineBounds{{Top: 0, Bottom: 1}, {Top: 3, Bottom: 4}, {Top: 6, Bottom: 7}}
	for i, bounds := range want {
		got, ok := panel.EntryBounds(i)
		if !ok || got != bounds {
			t.Fatalf("entry %d: expected %+v, got %+v (ok=%v)", i, bounds, got, ok)
		}
	}
	if _, ok := panel.EntryBounds(3); ok {
		t.Fatalf("expected no bounds past the end")
	}
}

func TestJournalPanelWrapsLongEntries(t *testing.T) {
	panel := NewJournalPanel(20, 10)
	panel.SetEntries([]EntryRef{{Key: "a", Text: strings.Repeat("word ", 12)}})
	bounds, _ := panel.EntryBounds(0)
	if bounds.Bottom-bounds.Top < 3 {
		t.Fatalf("expected wrapped body, got %+v", bounds)
	}
	for _, line := range strings.Split(xansi.Strip(panel.View()), "\n") {
		if xansi.StringWidth(line) > 20 {
			t.Fatalf("expected lines within width, got %q", line)
		}
	}
}

func TestJournalPanelScrollIntoViewMovesMinimally(t *testing.T) {
	panel := NewJournalPanel(40, 4)
	panel.SetEntries(panelEntries(5))

	panel.ScrollIntoView(3)
	if got := panel.ScrollOffset(); got != 7 {
		t.Fatalf("expected offset 7 to show entry bottom, got %d", got)
	}
	view := panel.ViewportBounds()
	if view.Top != 7 || view.Bottom != 10 {
		t.Fatalf("unexpected viewport bounds %+v", view)
	}
	panel.ScrollIntoView(2)
	if got := panel.ScrollOffset(); got != 6 {
		t.Fatalf("expected offset 6 to show entry top, got %d", got)
	}
	if panel.ScrollIntoView(9) {
		t.Fatalf("expected missing entry to report false")
	}
}

func TestJournalPanelHighlightMarksEntry(t *testing.T) {
	panel := NewJournalPanel(40, 10)
	panel.SetEntries(panelEntries(2))
	panel.Highlight(1)
	lines := strings.Split(xansi.Strip(panel.View()), "\n")
	if strings.HasPrefix(lines[0], "▌") {
		t.Fatalf("expected first entry unmarked, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "▌") {
		t.Fatalf("expected second entry marked, got %q", lines[3])
	}
	panel.Highlight(-1)
	if strings.Contains(xansi.Strip(panel.View()), "▌") {
		t.Fatalf("expected highlight cleared")
	}
}

func TestJournalPanelRemoveEntryKeepsSelection(t *testing.T) {
	panel := NewJournalPanel(40, 10)
	panel.SetEntries(panelEntries(3))
	panel.Highlight(2)
	if !panel.RemoveEntry("a") {
		t.Fatalf("expected entry removed")
	}
	if panel.selected != 1 {
		t.Fatalf("expected selection shifted to 1, got %d", panel.selected)
	}
	if panel.RemoveEntry("missing") {
		t.Fatalf("expected unknown key to report false")
	}
	if got := len(panel.SelectableEntries()); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}
}

func TestJournalPanelEmptyState(t *testing.T) {
	panel := NewJournalPanel(40, 4)
	if strings.Contains(xansi.Strip(panel.View()), journalEmptyText) {
		t.Fatalf("expected no placeholder before entries load")
	}
	panel.SetEntries(nil)
	if !strings.Contains(xansi.Strip(panel.View()), journalEmptyText) {
		t.Fatalf("expected placeholder for empty journal")
	}
}

func TestJournalPanelScrollOffsetClamped(t *testing.T) {
	panel := NewJournalPanel(40, 4)
	panel.SetEntries(panelEntries(5))
	if got := panel.MaxScrollOffset(); got != 10 {
		t.Fatalf("expected max offset 10, got %d", got)
	}
	panel.SetScrollOffset(99)
	if got := panel.ScrollOffset(); got != 10 {
		t.Fatalf("expected clamped offset 10, got %d", got)
	}
}

func TestEntryMeta(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.Local)
	got := entryMeta(EntryRef{Time: at, From: "intent"})
	want := at.Format(journalMetaLayout) + " · intent"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := entryMeta(EntryRef{}); got != "" {
		t.Fatalf("expected empty meta, got %q", got)
	}
}
