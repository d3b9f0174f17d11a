package app

import tea "charm.land/bubbletea/v2"

type KeyListener func(ev KeyEvent) tea.Cmd

type keyListenerEntry struct {
	id int
	fn KeyListener
}

// ListenerHandle removes the listener it was returned for.
type ListenerHandle struct {
	dispatcher *KeyDispatcher
	id         int
	capture    bool
}

// Remove unregisters the listener. Calling it more than once is harmless.
func (h *ListenerHandle) Remove() bool {
	if h == nil || h.dispatcher == nil {
		return false
	}
	d := h.dispatcher
	h.dispatcher = nil
	if h.capture {
		return d.remove(&d.capture, h.id)
	}
	return d.remove(&d.bubble, h.id)
}

// KeyDispatcher is the single entry point for key presses. Capture listeners
// take every key while installed and the router is not consulted. Otherwise
// the router runs first and every bubble listener sees the event afterwards.
type KeyDispatcher struct {
	router  *Router
	capture []keyListenerEntry
	bubble  []keyListenerEntry
	nextID  int
}

func NewKeyDispatcher() *KeyDispatcher {
	return &KeyDispatcher{}
}

func (d *KeyDispatcher) SetRouter(router *Router) {
	d.router = router
}

func (d *KeyDispatcher) AddCaptureListener(fn KeyListener) *ListenerHandle {
	return d.add(&d.capture, fn, true)
}

func (d *KeyDispatcher) AddListener(fn KeyListener) *ListenerHandle {
	return d.add(&d.bubble, fn, false)
}

func (d *KeyDispatcher) CaptureActive() bool {
	return d != nil && len(d.capture) > 0
}

func (d *KeyDispatcher) Dispatch(ev KeyEvent) (RouteResult, tea.Cmd) {
	if d == nil {
		return PassThrough, nil
	}
	if n := len(d.capture); n > 0 {
		return Consumed, d.capture[n-1].fn(ev)
	}
	result := PassThrough
	cmds := make([]tea.Cmd, 0, len(d.bubble)+1)
	if d.router != nil {
		var cmd tea.Cmd
		result, cmd = d.router.Route(ev)
		cmds = append(cmds, cmd)
	}
	listeners := append([]keyListenerEntry(nil), d.bubble...)
	for _, listener := range listeners {
		cmds = append(cmds, listener.fn(ev))
	}
	return result, tea.Batch(cmds...)
}

func (d *KeyDispatcher) add(list *[]keyListenerEntry, fn KeyListener, capture bool) *ListenerHandle {
	if d == nil || fn == nil {
		return &ListenerHandle{}
	}
	d.nextID++
	*list = append(*list, keyListenerEntry{id: d.nextID, fn: fn})
	return &ListenerHandle{dispatcher: d, id: d.nextID, capture: capture}
}

func (d *KeyDispatcher) remove(list *[]keyListenerEntry, id int) bool {
	for i, entry := range *list {
		if entry.id == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
