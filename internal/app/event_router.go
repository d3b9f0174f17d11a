package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"daybook/internal/logging"
)

type RouteResult int

const (
	PassThrough RouteResult = iota
	Consumed
)

func (r RouteResult) String() string {
	if r == Consumed {
		return "consumed"
	}
	return "pass-through"
}

// RouterHooks are actions owned by other parts of the dashboard.
type RouterHooks struct {
	TogglePrayer func() tea.Cmd
}

type RouterConfig struct {
	State          *State
	Host           *ModalHost
	List           *ListModeController
	Scroll         *ScrollAnimator
	Confirm        *ConfirmController
	Focus          FocusHost
	Bindings       *Keybindings
	Hooks          RouterHooks
	ScrollStep     int
	ScrollDuration time.Duration
	Logger         logging.Logger
}

// Router is the single entry point for key presses that are not captured by
// a dialog. It decides whether a key belongs to a modal, a text field, list
// mode or a global shortcut.
type Router struct {
	state          *State
	host           *ModalHost
	modals         *ModalResolver
	list           *ListModeController
	scroll         *ScrollAnimator
	confirm        *ConfirmController
	focus          FocusHost
	bindings       *Keybindings
	hooks          RouterHooks
	scrollStep     int
	scrollDuration time.Duration
	logger         logging.Logger
}

func NewRouter(cfg RouterConfig) *Router {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	bindings := cfg.Bindings
	if bindings == nil {
		bindings = DefaultKeybindings()
	}
	state := cfg.State
	if state == nil {
		state = NewState()
	}
	step := cfg.ScrollStep
	if step <= 0 {
		step = defaultScrollStep
	}
	duration := cfg.ScrollDuration
	if duration <= 0 {
		duration = defaultScrollDuration
	}
	return &Router{
		state:          state,
		host:           cfg.Host,
		modals:         NewModalResolver(cfg.Host),
		list:           cfg.List,
		scroll:         cfg.Scroll,
		confirm:        cfg.Confirm,
		focus:          cfg.Focus,
		bindings:       bindings,
		hooks:          cfg.Hooks,
		scrollStep:     step,
		scrollDuration: duration,
		logger:         logger,
	}
}

const defaultScrollStep = 6

func (r *Router) State() *State {
	return r.state
}

// ShortcutsContext is the context the help modal should describe.
func (r *Router) ShortcutsContext() ContextTag {
	return r.modals.CurrentContext()
}

func (r *Router) Route(ev KeyEvent) (RouteResult, tea.Cmd) {
	if r.confirm.IsOpen() {
		return Consumed, nil
	}
	if result, cmd := r.modals.Resolve(ev); result == Handled {
		return Consumed, cmd
	}
	if top, ok := r.host.Top(); ok {
		return Consumed, r.routeModalInline(top, ev)
	}
	if isTypingTarget(ev.Target) {
		return r.routeTyping(ev)
	}
	if ev.Modifiers.Chord() {
		return PassThrough, nil
	}
	if r.list.Active() {
		if result, cmd, ok := r.routeListMode(ev); ok {
			return result, cmd
		}
	}
	return r.routeGlobal(ev)
}

// routeModalInline hands the key to the modals whose handlers live beside
// the router. Every other modal listens for its own keys.
func (r *Router) routeModalInline(top ModalDescriptor, ev KeyEvent) tea.Cmd {
	switch top.ID {
	case ModalMirror, ModalShortcuts:
	default:
		return nil
	}
	if top.Capability.HandleKey == nil {
		return nil
	}
	_, cmd := top.Capability.HandleKey(ev)
	return cmd
}

// routeTyping keeps shortcuts away from text fields. Keys other than the
// escape, submit and newline keys are delivered to the field.
func (r *Router) routeTyping(ev KeyEvent) (RouteResult, tea.Cmd) {
	target := ev.Target
	switch {
	case ev.Is("esc"):
		if r.focus != nil {
			r.focus.Blur()
		}
		return Consumed, nil
	case ev.Is("enter"):
		mods := ev.Modifiers
		if isMultilineTarget(target) && mods.Shift && !mods.Ctrl && !mods.Meta {
			return PassThrough, nil
		}
		if mods.Ctrl || mods.Meta {
			if target.Name() == FieldIntent {
				return Consumed, nil
			}
			return Consumed, r.submit(target)
		}
		if target.Name() == FieldAnswer {
			return Consumed, nil
		}
		return Consumed, r.submit(target)
	}
	return Consumed, r.deliver(ev)
}

func (r *Router) submit(target FocusTarget) tea.Cmd {
	submitter := nearestSubmitter(target)
	if submitter == nil {
		return nil
	}
	return submitter.Submit()
}

func (r *Router) deliver(ev KeyEvent) tea.Cmd {
	if r.focus == nil {
		return nil
	}
	return r.focus.Deliver(ev)
}

func (r *Router) routeListMode(ev KeyEvent) (RouteResult, tea.Cmd, bool) {
	b := r.bindings
	switch {
	case ev.Is("down") || b.Matches(ev, KeyCommandListDown):
		r.list.Move(1)
	case ev.Is("up") || b.Matches(ev, KeyCommandListUp):
		r.list.Move(-1)
	case b.Matches(ev, KeyCommandListCopy):
		return Consumed, r.list.CopySelected(), true
	case b.Matches(ev, KeyCommandListDelete):
		return Consumed, r.list.RequestDelete(), true
	case ev.Is("esc") || b.Matches(ev, KeyCommandListExit):
		r.list.Exit()
	default:
		return PassThrough, nil, false
	}
	return Consumed, nil, true
}

func (r *Router) routeGlobal(ev KeyEvent) (RouteResult, tea.Cmd) {
	b := r.bindings
	switch {
	case b.Matches(ev, KeyCommandListMode):
		r.list.Enter()
		return Consumed, nil
	case b.Matches(ev, KeyCommandScrollDown):
		return Consumed, r.scroll.ScrollBy(r.scrollStep, r.scrollDuration)
	case b.Matches(ev, KeyCommandScrollUp):
		return Consumed, r.scroll.ScrollBy(-r.scrollStep, r.scrollDuration)
	case b.Matches(ev, KeyCommandFocusIntent):
		return Consumed, r.focusField(FieldIntent)
	case b.Matches(ev, KeyCommandFocusJournal):
		return Consumed, r.focusField(FieldJournal)
	case b.Matches(ev, KeyCommandTogglePrayer):
		if r.hooks.TogglePrayer == nil {
			return Consumed, nil
		}
		return Consumed, r.hooks.TogglePrayer()
	case b.Matches(ev, KeyCommandOpenHelp):
		return Consumed, r.host.Open(ModalShortcuts, r.modals.CurrentContext())
	}
	if id, ok := r.modalForKey(ev); ok {
		return Consumed, r.host.Open(id, "")
	}
	return PassThrough, nil
}

var modalOpenCommands = []struct {
	command string
	modal   string
}{
	{KeyCommandOpenReading, ModalReading},
	{KeyCommandOpenDrawing, ModalDrawing},
	{KeyCommandOpenEyeHealth, ModalEyeHealth},
	{KeyCommandOpenMind, ModalMind},
	{KeyCommandOpenChinese, ModalChinese},
	{KeyCommandOpenMirror, ModalMirror},
}

func (r *Router) modalForKey(ev KeyEvent) (string, bool) {
	for _, entry := range modalOpenCommands {
		if r.bindings.Matches(ev, entry.command) {
			return entry.modal, true
		}
	}
	return "", false
}

func (r *Router) focusField(name string) tea.Cmd {
	if r.focus == nil {
		return nil
	}
	r.logger.Debug("focus_field", logging.F("field", name))
	return r.focus.Focus(name)
}
