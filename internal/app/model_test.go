package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"daybook/internal/types"
)

type fakeJournalAPI struct {
	entries   []*types.JournalEntry
	added     []*types.JournalEntry
	deleted   []string
	deleteErr error
}

func (f *fakeJournalAPI) List(context.Context) ([]*types.JournalEntry, error) {
	return f.entries, nil
}

func (f *fakeJournalAPI) Add(_ context.Context, entry *types.JournalEntry) (*types.JournalEntry, error) {
	f.added = append(f.added, entry)
	return entry, nil
}

func (f *fakeJournalAPI) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeStateAPI struct {
	saved []types.AppState
}

func (f *fakeStateAPI) Load(context.Context) (*types.AppState, error) {
	return &types.AppState{}, nil
}

func (f *fakeStateAPI) Save(_ context.Context, state *types.AppState) error {
	f.saved = append(f.saved, *state)
	return nil
}

var modelTestNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

func newTestModel(t *testing.T, entries int) (*Model, *fakeJournalAPI) {
	t.Helper()
	journal := &fakeJournalAPI{}
	for i := 0; i < entries; i++ {
		at := modelTestNow.Add(-time.Duration(i) * time.Hour)
		journal.entries = append(journal.entries, &types.JournalEntry{
			Key:       types.EntryKey(at),
			Text:      "entry " + string(rune('a'+i)),
			From:      types.EntrySourceJournal,
			CreatedAt: at,
		})
	}
	m := NewModel(ModelConfig{Journal: journal, State: &fakeStateAPI{}}, WithClock(func() time.Time { return modelTestNow }))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m.Update(journalEntriesMsg{entries: journal.entries})
	return m, journal
}

func sendKeys(m *Model, keys ...string) {
	for _, key := range keys {
		m.Update(keyPress(key))
	}
}

func sendSpecial(m *Model, code rune, mods ...tea.KeyMod) tea.Cmd {
	_, cmd := m.Update(specialKey(code, mods...))
	return cmd
}

func TestModelTypingLInJournalDoesNotEnterListMode(t *testing.T) {
	m, _ := newTestModel(t, 2)
	sendKeys(m, "n")
	if !m.fields.IsFocused(FieldJournal) {
		t.Fatalf("expected journal focused")
	}
	sendKeys(m, "l", "?", "q")
	if m.list.Active() {
		t.Fatalf("expected list mode untouched while typing")
	}
	if m.host.AnyVisible() {
		t.Fatalf("expected no modal while typing")
	}
	if got := m.journal.Value(); got != "l?q" {
		t.Fatalf("expected typed text, got %q", got)
	}
}

func TestModelShiftEnterInsertsNewline(t *testing.T) {
	m, journal := newTestModel(t, 0)
	sendKeys(m, "n", "a")
	sendSpecial(m, tea.KeyEnter, tea.ModShift)
	sendKeys(m, "b")
	if got := m.journal.Value(); got != "a\nb" {
		t.Fatalf("expected newline in composer, got %q", got)
	}
	if len(journal.added) != 0 {
		t.Fatalf("expected no submit on shift+enter")
	}
}

func TestModelEnterSubmitsJournal(t *testing.T) {
	m, journal := newTestModel(t, 0)
	sendKeys(m, "n", "h", "i")
	cmd := sendSpecial(m, tea.KeyEnter)
	if m.journal.Value() != "" {
		t.Fatalf("expected composer cleared, got %q", m.journal.Value())
	}
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	msg, ok := cmd().(journalEntryAddedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("expected entry added message, got %#v", msg)
	}
	if len(journal.added) != 1 || journal.added[0].Text != "hi" || journal.added[0].From != types.EntrySourceJournal {
		t.Fatalf("unexpected added entries %#v", journal.added)
	}
}

func TestModelEscapeLeavesFieldThenShortcutsWork(t *testing.T) {
	m, _ := newTestModel(t, 2)
	sendKeys(m, "n")
	sendSpecial(m, tea.KeyEscape)
	if m.fields.Focused() != nil {
		t.Fatalf("expected focus cleared")
	}
	sendKeys(m, "l")
	if !m.list.Active() {
		t.Fatalf("expected list mode after leaving the field")
	}
}

func TestModelDeleteFlowRemovesEntry(t *testing.T) {
	m, journal := newTestModel(t, 3)
	sendKeys(m, "l", "j", "d")
	if !m.confirm.IsOpen() {
		t.Fatalf("expected confirmation dialog")
	}
	sendKeys(m, "j")
	if m.list.SelectedIndex() != 1 {
		t.Fatalf("expected dialog to swallow j, selection %d", m.list.SelectedIndex())
	}
	sendKeys(m, "y")
	if len(journal.deleted) != 1 || journal.deleted[0] != journal.entries[1].Key {
		t.Fatalf("expected second entry deleted, got %v", journal.deleted)
	}
	if got := len(m.panel.SelectableEntries()); got != 2 {
		t.Fatalf("expected 2 entries left, got %d", got)
	}
	if !m.list.Active() || m.list.SelectedIndex() != 1 {
		t.Fatalf("expected list mode kept at index 1, got active=%v index=%d", m.list.Active(), m.list.SelectedIndex())
	}
}

func TestModelDeleteFailureKeepsEntry(t *testing.T) {
	m, journal := newTestModel(t, 2)
	journal.deleteErr = errors.New("disk full")
	sendKeys(m, "l", "d", "y")
	if got := len(m.panel.SelectableEntries()); got != 2 {
		t.Fatalf("expected entries kept, got %d", got)
	}
	if !strings.Contains(m.toast.text, "Could not delete") {
		t.Fatalf("expected failure toast, got %q", m.toast.text)
	}
}

func TestModelRenderShowsEmptyJournal(t *testing.T) {
	m, _ := newTestModel(t, 0)
	view := xansi.Strip(m.render())
	if !strings.Contains(view, journalEmptyText) {
		t.Fatalf("expected empty placeholder in view")
	}
	if !strings.Contains(view, "Daybook") {
		t.Fatalf("expected header in view")
	}
}

func TestModelViewUsesAltScreen(t *testing.T) {
	m, _ := newTestModel(t, 1)
	v := m.View()
	if !v.AltScreen {
		t.Fatalf("expected alt screen view")
	}
}

func TestModelHelpOpensAndCloses(t *testing.T) {
	m, _ := newTestModel(t, 1)
	sendKeys(m, "?")
	if !m.host.IsVisible(ModalShortcuts) {
		t.Fatalf("expected shortcuts open")
	}
	if !strings.Contains(xansi.Strip(m.render()), "Shortcuts") {
		t.Fatalf("expected shortcuts overlay rendered")
	}
	sendKeys(m, "q")
	if m.host.AnyVisible() {
		t.Fatalf("expected shortcuts closed")
	}
}

func TestModelChineseAnswerFieldTakesLetters(t *testing.T) {
	m, _ := newTestModel(t, 1)
	sendKeys(m, "h")
	if !m.host.IsVisible(ModalChinese) || !m.fields.IsFocused(FieldAnswer) {
		t.Fatalf("expected chinese open with answer focused")
	}
	sendKeys(m, "q", "?")
	if !m.host.IsVisible(ModalChinese) || m.host.IsVisible(ModalShortcuts) {
		t.Fatalf("expected letters typed, visible %v", m.host.Visible())
	}
	if got := m.drill.answer.Value(); got != "q?" {
		t.Fatalf("expected typed answer, got %q", got)
	}
	sendSpecial(m, tea.KeyEscape)
	if m.host.AnyVisible() || m.fields.Focused() != nil {
		t.Fatalf("expected drill closed and answer blurred")
	}
}

func TestModelChineseCheckAdvances(t *testing.T) {
	m, _ := newTestModel(t, 1)
	sendKeys(m, "h")
	card := m.drill.Card()
	sendKeys(m, strings.Split(card.Meaning, "")...)
	sendSpecial(m, tea.KeyEnter)
	if m.drill.correct != 1 {
		t.Fatalf("expected correct answer counted")
	}
	if m.drill.Card() == card {
		t.Fatalf("expected next card")
	}
	if !strings.HasPrefix(m.toast.text, "Correct") {
		t.Fatalf("expected success toast, got %q", m.toast.text)
	}
}

func TestModelChineseTabReleasesFieldForHelp(t *testing.T) {
	m, _ := newTestModel(t, 1)
	sendKeys(m, "h")
	sendSpecial(m, tea.KeyTab)
	if m.fields.Focused() != nil {
		t.Fatalf("expected answer blurred on tab")
	}
	sendKeys(m, "?")
	if !m.host.IsVisible(ModalShortcuts) {
		t.Fatalf("expected help over the drill")
	}
	if m.help.panel.seed != ContextChinese {
		t.Fatalf("expected help seeded with chinese, got %q", m.help.panel.seed)
	}
}

func TestModelMirrorCaptureFailsWithToast(t *testing.T) {
	m, _ := newTestModel(t, 1)
	sendKeys(m, "v", "c")
	if !strings.Contains(m.toast.text, "capture failed") || m.toast.level != toastLevelError {
		t.Fatalf("expected capture error toast, got %q", m.toast.text)
	}
	sendKeys(m, "f")
	if !m.mirror.flipped {
		t.Fatalf("expected mirror flipped")
	}
}

func TestModelIntentSubmitUpdatesState(t *testing.T) {
	m, _ := newTestModel(t, 0)
	sendKeys(m, "i", "r", "e", "s", "t")
	sendSpecial(m, tea.KeyEnter)
	if m.appState.Intention != "rest" || m.appState.IntentionDate != "2026-03-02" {
		t.Fatalf("unexpected app state %+v", m.appState)
	}
	if m.fields.Focused() != nil {
		t.Fatalf("expected intention field released")
	}
}

func TestModelPrayerToggle(t *testing.T) {
	m, _ := newTestModel(t, 0)
	sendKeys(m, "p")
	if !m.appState.Prayed || m.appState.PrayedAt.IsZero() {
		t.Fatalf("expected prayer marked, got %+v", m.appState)
	}
	sendKeys(m, "p")
	if m.appState.Prayed {
		t.Fatalf("expected prayer unmarked")
	}
}

func TestModelDropsStaleAppState(t *testing.T) {
	m, _ := newTestModel(t, 0)
	yesterday := modelTestNow.AddDate(0, 0, -1)
	m.Update(appStateMsg{state: &types.AppState{
		Intention:     "old",
		IntentionDate: yesterday.Format(intentDateLayout),
		Prayed:        true,
		PrayedAt:      yesterday,
	}})
	if m.appState.Intention != "" || m.appState.Prayed {
		t.Fatalf("expected stale state dropped, got %+v", m.appState)
	}

	m.Update(appStateMsg{state: &types.AppState{Intention: "walk", IntentionDate: "2026-03-02"}})
	if m.intent.Value() != "walk" {
		t.Fatalf("expected today's intention restored, got %q", m.intent.Value())
	}
}

func TestModelInitWarnsAboutKeybindingConflicts(t *testing.T) {
	m := NewModel(ModelConfig{Keybindings: map[string]string{KeyCommandOpenMind: "r"}})
	m.Init()
	if !strings.Contains(m.toast.text, "keybinding conflict") {
		t.Fatalf("expected conflict toast, got %q", m.toast.text)
	}
}

func TestModelJKScrollJournal(t *testing.T) {
	m, _ := newTestModel(t, 12)
	cmd := m.handleKey(keyPress("j"))
	if cmd == nil || m.state.Scroll == nil {
		t.Fatalf("expected scroll animation started")
	}
	if target := m.state.Scroll.Target(); target != defaultScrollStep {
		t.Fatalf("expected target %d, got %d", defaultScrollStep, target)
	}
}
