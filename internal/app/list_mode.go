package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"daybook/internal/logging"
)

// EntryRef is a transient reference to one rendered journal entry. Key is
// the timestamp key used to delete it.
type EntryRef struct {
	Key  string
	Text string
	Time time.Time
	From string
}

// LineBounds is an inclusive range of content lines.
type LineBounds struct {
	Top    int
	Bottom int
}

func (b LineBounds) within(outer LineBounds) bool {
	return b.Top >= outer.Top && b.Bottom <= outer.Bottom
}

// EntryDisplay is the surface that renders the journal entries. Lookups
// report ok=false when the entry is not rendered.
type EntryDisplay interface {
	SelectableEntries() []EntryRef
	Highlight(index int)
	EntryBounds(index int) (LineBounds, bool)
	ViewportBounds() LineBounds
	ScrollIntoView(index int) bool
	RemoveEntry(key string) bool
	ShowEmptyState()
}

// JournalDeleter removes an entry by its timestamp key and reports success.
type JournalDeleter interface {
	DeleteEntry(key string) bool
}

type ListModeState struct {
	Active        bool
	SelectedIndex int
	Entries       []EntryRef
}

type ListModeControllerConfig struct {
	State   *State
	Display EntryDisplay
	Journal JournalDeleter
	Confirm *ConfirmController
	Copy    func(text string) error
	Notify  func(level toastLevel, message string) tea.Cmd
	Logger  logging.Logger
}

// ListModeController moves a highlighted selection over the journal entries
// and runs the copy and delete actions on the selected one.
type ListModeController struct {
	state   *State
	display EntryDisplay
	journal JournalDeleter
	confirm *ConfirmController
	copy    func(text string) error
	notify  func(level toastLevel, message string) tea.Cmd
	logger  logging.Logger
}

func NewListModeController(cfg ListModeControllerConfig) *ListModeController {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	copyFn := cfg.Copy
	if copyFn == nil {
		copyFn = func(text string) error {
			_, err := copyTextToClipboard(text)
			return err
		}
	}
	return &ListModeController{
		state:   cfg.State,
		display: cfg.Display,
		journal: cfg.Journal,
		confirm: cfg.Confirm,
		copy:    copyFn,
		notify:  cfg.Notify,
		logger:  logger,
	}
}

func (c *ListModeController) Active() bool {
	return c != nil && c.state != nil && c.state.List.Active
}

func (c *ListModeController) SelectedIndex() int {
	if c == nil || c.state == nil {
		return -1
	}
	return c.state.List.SelectedIndex
}

func (c *ListModeController) Selected() (EntryRef, bool) {
	if !c.Active() {
		return EntryRef{}, false
	}
	list := c.state.List
	if list.SelectedIndex < 0 || list.SelectedIndex >= len(list.Entries) {
		return EntryRef{}, false
	}
	return list.Entries[list.SelectedIndex], true
}

// Enter selects the first entry. It does nothing when there are no entries.
func (c *ListModeController) Enter() bool {
	if c == nil || c.state == nil || c.display == nil {
		return false
	}
	entries := c.display.SelectableEntries()
	if len(entries) == 0 {
		return false
	}
	c.state.List = ListModeState{Active: true, SelectedIndex: 0, Entries: entries}
	c.display.Highlight(0)
	c.display.ScrollIntoView(0)
	c.logger.Debug("list_mode_enter", logging.F("entries", len(entries)))
	return true
}

func (c *ListModeController) Exit() {
	if c == nil || c.state == nil {
		return
	}
	c.state.List = ListModeState{SelectedIndex: -1}
	if c.display != nil {
		c.display.Highlight(-1)
	}
}

// Move shifts the selection by delta, clamping at both ends.
func (c *ListModeController) Move(delta int) {
	if !c.Active() || len(c.state.List.Entries) == 0 {
		return
	}
	next := clampInt(c.state.List.SelectedIndex+delta, 0, len(c.state.List.Entries)-1)
	c.state.List.SelectedIndex = next
	c.display.Highlight(next)
	c.revealIfHidden(next)
}

func (c *ListModeController) revealIfHidden(index int) {
	bounds, ok := c.display.EntryBounds(index)
	if !ok {
		return
	}
	if !bounds.within(c.display.ViewportBounds()) {
		c.display.ScrollIntoView(index)
	}
}

// CopySelected copies the selected entry's text and leaves list mode whether
// or not the copy succeeded.
func (c *ListModeController) CopySelected() tea.Cmd {
	entry, ok := c.Selected()
	if !ok {
		return nil
	}
	err := c.copy(entry.Text)
	c.Exit()
	if err != nil {
		c.logger.Warn("list_copy_failed", logging.F("error", err))
		return c.toast(toastLevelError, "copy failed: "+err.Error())
	}
	return c.toast(toastLevelInfo, "Copied entry")
}

// RequestDelete asks for confirmation before deleting the selected entry.
// Requests without a selection or without a key are dropped.
func (c *ListModeController) RequestDelete() tea.Cmd {
	entry, ok := c.Selected()
	if !ok || strings.TrimSpace(entry.Key) == "" || c.confirm == nil {
		return nil
	}
	key := entry.Key
	c.confirm.Open(ConfirmRequest{
		Title:        "Delete entry",
		Message:      "Delete this journal entry? This cannot be undone.",
		ConfirmLabel: "Delete",
		CancelLabel:  "Keep",
		OnConfirm: func() tea.Cmd {
			return c.deleteEntry(key)
		},
	})
	return nil
}

func (c *ListModeController) deleteEntry(key string) tea.Cmd {
	if !c.Active() {
		return nil
	}
	if c.journal == nil || !c.journal.DeleteEntry(key) {
		c.logger.Warn("list_delete_failed", logging.F("key", key))
		return c.toast(toastLevelError, "Could not delete entry")
	}
	c.display.RemoveEntry(key)
	previous := c.state.List.SelectedIndex
	c.Refresh()
	if !c.Active() {
		return nil
	}
	c.state.List.SelectedIndex = min(previous, len(c.state.List.Entries)-1)
	c.display.Highlight(c.state.List.SelectedIndex)
	c.revealIfHidden(c.state.List.SelectedIndex)
	return nil
}

// Refresh re-reads the entries from the display, keeping the selection in
// range. An empty list leaves list mode and shows the empty state.
func (c *ListModeController) Refresh() {
	if !c.Active() {
		return
	}
	entries := c.display.SelectableEntries()
	if len(entries) == 0 {
		c.Exit()
		c.display.ShowEmptyState()
		return
	}
	c.state.List.Entries = entries
	c.state.List.SelectedIndex = clampInt(c.state.List.SelectedIndex, 0, len(entries)-1)
	c.display.Highlight(c.state.List.SelectedIndex)
}

func (c *ListModeController) toast(level toastLevel, message string) tea.Cmd {
	if c.notify == nil {
		return nil
	}
	return c.notify(level, message)
}
