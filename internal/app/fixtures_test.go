package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
)

func keyPress(text string) tea.KeyPressMsg {
	r := []rune(text)
	return tea.KeyPressMsg{Code: r[0], Text: text}
}

func specialKey(code rune, mods ...tea.KeyMod) tea.KeyPressMsg {
	msg := tea.KeyPressMsg{Code: code}
	for _, mod := range mods {
		msg.Mod |= mod
	}
	return msg
}

func keyEvent(text string, target FocusTarget) KeyEvent {
	return NewKeyEvent(keyPress(text), target)
}

func namedEvent(code rune, target FocusTarget, mods ...tea.KeyMod) KeyEvent {
	return NewKeyEvent(specialKey(code, mods...), target)
}

type fakeTarget struct {
	name     string
	kind     FocusKind
	editable bool
	parent   FocusTarget
}

func (f *fakeTarget) Name() string          { return f.name }
func (f *fakeTarget) Kind() FocusKind       { return f.kind }
func (f *fakeTarget) ContentEditable() bool { return f.editable }
func (f *fakeTarget) Parent() FocusTarget {
	if f.parent == nil {
		return nil
	}
	return f.parent
}

type fakeForm struct {
	fakeTarget
	submits int
}

func (f *fakeForm) Submit() tea.Cmd {
	f.submits++
	return nil
}

type fakeFocusHost struct {
	focused   []string
	blurs     int
	delivered []string
}

func (f *fakeFocusHost) Focus(name string) tea.Cmd {
	f.focused = append(f.focused, name)
	return nil
}

func (f *fakeFocusHost) Blur() { f.blurs++ }

func (f *fakeFocusHost) Deliver(ev KeyEvent) tea.Cmd {
	f.delivered = append(f.delivered, ev.Key)
	return nil
}

// fakeDisplay lays entries out as three lines each with a blank separator.
type fakeDisplay struct {
	entries     []EntryRef
	highlighted int
	offset      int
	height      int
	scrolledTo  []int
	emptyShown  bool
}

func newFakeDisplay(n int) *fakeDisplay {
	d := &fakeDisplay{highlighted: -1, height: 8}
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		d.entries = append(d.entries, EntryRef{
			Key:  fmt.Sprintf("key-%d", i),
			Text: fmt.Sprintf("entry %d", i),
			Time: base.Add(-time.Duration(i) * time.Hour),
			From: "journal",
		})
	}
	return d
}

func (d *fakeDisplay) SelectableEntries() []EntryRef {
	return append([]EntryRef(nil), d.entries...)
}

func (d *fakeDisplay) Highlight(index int) { d.highlighted = index }

func (d *fakeDisplay) EntryBounds(index int) (LineBounds, bool) {
	if index < 0 || index >= len(d.entries) {
		return LineBounds{}, false
	}
	top := index * 4
	return LineBounds{Top: top, Bottom: top + 2}, true
}

func (d *fakeDisplay) ViewportBounds() LineBounds {
	return LineBounds{Top: d.offset, Bottom: d.offset + d.height - 1}
}

func (d *fakeDisplay) ScrollIntoView(index int) bool {
	bounds, ok := d.EntryBounds(index)
	if !ok {
		return false
	}
	d.scrolledTo = append(d.scrolledTo, index)
	d.offset = bounds.Top
	return true
}

func (d *fakeDisplay) RemoveEntry(key string) bool {
	for i, entry := range d.entries {
		if entry.Key == key {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (d *fakeDisplay) ShowEmptyState() { d.emptyShown = true }

type fakeDeleter struct {
	fail    bool
	deleted []string
}

func (f *fakeDeleter) DeleteEntry(key string) bool {
	if f.fail {
		return false
	}
	f.deleted = append(f.deleted, key)
	return true
}

type fakeScrollContainer struct {
	offset    int
	maxOffset int
	writes    []int
}

func (c *fakeScrollContainer) ScrollOffset() int    { return c.offset }
func (c *fakeScrollContainer) MaxScrollOffset() int { return c.maxOffset }
func (c *fakeScrollContainer) SetScrollOffset(offset int) {
	c.offset = clampInt(offset, 0, c.maxOffset)
	c.writes = append(c.writes, c.offset)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type toastRecord struct {
	level   toastLevel
	message string
}

// routerHarness wires a router with fakes the way the dashboard wires the
// real collaborators.
type routerHarness struct {
	state      *State
	dispatcher *KeyDispatcher
	router     *Router
	host       *ModalHost
	confirm    *ConfirmController
	list       *ListModeController
	scroll     *ScrollAnimator
	display    *fakeDisplay
	deleter    *fakeDeleter
	container  *fakeScrollContainer
	focus      *fakeFocusHost
	toasts     []toastRecord
	copied     []string
	prayers    int
	shown      []string
	hidden     []string
	seeds      map[string]ContextTag
	inline     map[string][]string
}

func newRouterHarness(entries int) *routerHarness {
	h := &routerHarness{
		state:      NewState(),
		dispatcher: NewKeyDispatcher(),
		display:    newFakeDisplay(entries),
		deleter:    &fakeDeleter{},
		container:  &fakeScrollContainer{maxOffset: 100},
		focus:      &fakeFocusHost{},
		seeds:      map[string]ContextTag{},
		inline:     map[string][]string{},
	}
	h.confirm = NewConfirmController(h.dispatcher)
	h.scroll = NewScrollAnimator(h.state, h.container, nil)
	notify := func(level toastLevel, message string) tea.Cmd {
		h.toasts = append(h.toasts, toastRecord{level: level, message: message})
		return nil
	}
	h.list = NewListModeController(ListModeControllerConfig{
		State:   h.state,
		Display: h.display,
		Journal: h.deleter,
		Confirm: h.confirm,
		Copy: func(text string) error {
			h.copied = append(h.copied, text)
			return nil
		},
		Notify: notify,
	})

	descriptor := func(id string, ctx ContextTag, inline bool) ModalDescriptor {
		capability := ModalCapability{
			Show: func(seed ContextTag) tea.Cmd {
				h.shown = append(h.shown, id)
				h.seeds[id] = seed
				return nil
			},
			Hide: func() { h.hidden = append(h.hidden, id) },
		}
		if inline {
			capability.HandleKey = func(ev KeyEvent) (bool, tea.Cmd) {
				h.inline[id] = append(h.inline[id], ev.Key)
				return true, nil
			}
		}
		return ModalDescriptor{ID: id, Context: ctx, Capability: capability}
	}
	registry := NewModalRegistry(
		descriptor(ModalReading, ContextReading, false),
		descriptor(ModalDrawing, ContextDrawing, false),
		descriptor(ModalEyeHealth, ContextEyeHealth, false),
		descriptor(ModalMind, ContextMind, false),
		descriptor(ModalChinese, ContextChinese, false),
		descriptor(ModalMirror, ContextMirror, true),
		descriptor(ModalShortcuts, ContextShortcuts, true),
	)
	h.host = NewModalHost(registry, nil)
	h.router = NewRouter(RouterConfig{
		State:   h.state,
		Host:    h.host,
		List:    h.list,
		Scroll:  h.scroll,
		Confirm: h.confirm,
		Focus:   h.focus,
		Hooks: RouterHooks{TogglePrayer: func() tea.Cmd {
			h.prayers++
			return nil
		}},
		ScrollStep:     6,
		ScrollDuration: 200 * time.Millisecond,
	})
	h.dispatcher.SetRouter(h.router)
	return h
}

func (h *routerHarness) press(text string) RouteResult {
	result, _ := h.dispatcher.Dispatch(keyEvent(text, nil))
	return result
}

func (h *routerHarness) pressIn(text string, target FocusTarget) RouteResult {
	result, _ := h.dispatcher.Dispatch(keyEvent(text, target))
	return result
}

func (h *routerHarness) pressNamed(code rune, target FocusTarget, mods ...tea.KeyMod) RouteResult {
	result, _ := h.dispatcher.Dispatch(namedEvent(code, target, mods...))
	return result
}
