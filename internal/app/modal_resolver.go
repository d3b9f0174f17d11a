package app

import tea "charm.land/bubbletea/v2"

type ResolveResult int

const (
	NotApplicable ResolveResult = iota
	Handled
)

// ModalResolver decides whether a key closes the topmost modal or opens help
// for it. It reads the live stack on every call.
type ModalResolver struct {
	host *ModalHost
}

func NewModalResolver(host *ModalHost) *ModalResolver {
	return &ModalResolver{host: host}
}

func (r *ModalResolver) Resolve(ev KeyEvent) (ResolveResult, tea.Cmd) {
	if r == nil || !r.host.AnyVisible() {
		return NotApplicable, nil
	}
	closeKey, helpKey := modalKeyIntent(ev)

	if r.host.IsVisible(ModalShortcuts) {
		if closeKey || helpKey {
			r.host.Close(ModalShortcuts)
			return Handled, nil
		}
		return NotApplicable, nil
	}

	top, ok := r.host.Top()
	if !ok {
		return NotApplicable, nil
	}
	switch {
	case closeKey:
		r.host.Close(top.ID)
		return Handled, nil
	case helpKey:
		return Handled, r.host.Open(ModalShortcuts, top.Context)
	}
	return NotApplicable, nil
}

// CurrentContext returns the topmost modal's context tag, or ContextGlobal
// when no modal is open.
func (r *ModalResolver) CurrentContext() ContextTag {
	if r == nil {
		return ContextGlobal
	}
	top, ok := r.host.Top()
	if !ok || top.Context == "" {
		return ContextGlobal
	}
	return top.Context
}

// modalKeyIntent classifies ev as a close or help request. Escape always
// closes; q and ? are left alone while the event targets a text field so they
// can be typed.
func modalKeyIntent(ev KeyEvent) (closeKey, helpKey bool) {
	if ev.Is("esc") {
		return true, false
	}
	if ev.Modifiers.Chord() || isTypingTarget(ev.Target) {
		return false, false
	}
	return ev.Is("q"), ev.Is("?")
}
