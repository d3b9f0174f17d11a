package app

import (
	tea "charm.land/bubbletea/v2"

	"daybook/internal/logging"
)

type ContextTag string

const (
	ContextReading   ContextTag = "reading"
	ContextDrawing   ContextTag = "drawing"
	ContextEyeHealth ContextTag = "eyeHealth"
	ContextMind      ContextTag = "mind"
	ContextChinese   ContextTag = "chinese"
	ContextMirror    ContextTag = "mirror"
	ContextShortcuts ContextTag = "shortcuts"
	ContextGlobal    ContextTag = "global"
)

const (
	ModalReading   = "reading"
	ModalDrawing   = "drawing"
	ModalEyeHealth = "eye-health"
	ModalMind      = "mind"
	ModalChinese   = "chinese"
	ModalMirror    = "mirror"
	ModalShortcuts = "shortcuts"
)

// ModalCapability is what a modal exposes to the router. HandleKey is only
// set by modals whose key handling the router dispatches inline.
type ModalCapability struct {
	Show      func(seed ContextTag) tea.Cmd
	Hide      func()
	HandleKey func(ev KeyEvent) (bool, tea.Cmd)
}

type ModalDescriptor struct {
	ID         string
	Context    ContextTag
	Capability ModalCapability
}

// ModalRegistry is the static table of known modals, keyed by id.
type ModalRegistry struct {
	byID  map[string]ModalDescriptor
	order []string
}

func NewModalRegistry(descriptors ...ModalDescriptor) *ModalRegistry {
	r := &ModalRegistry{byID: make(map[string]ModalDescriptor, len(descriptors))}
	for _, desc := range descriptors {
		if desc.ID == "" {
			continue
		}
		if _, exists := r.byID[desc.ID]; !exists {
			r.order = append(r.order, desc.ID)
		}
		r.byID[desc.ID] = desc
	}
	return r
}

func (r *ModalRegistry) Lookup(id string) (ModalDescriptor, bool) {
	if r == nil {
		return ModalDescriptor{}, false
	}
	desc, ok := r.byID[id]
	return desc, ok
}

func (r *ModalRegistry) IDs() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// ModalHost opens and closes registered modals and keeps the modal stack in
// step with what is shown.
type ModalHost struct {
	stack    ModalStack
	registry *ModalRegistry
	logger   logging.Logger
}

func NewModalHost(registry *ModalRegistry, logger logging.Logger) *ModalHost {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ModalHost{registry: registry, logger: logger}
}

// Open shows the modal and pushes it onto the stack. Unknown ids are
// ignored.
func (h *ModalHost) Open(id string, seed ContextTag) tea.Cmd {
	if h == nil {
		return nil
	}
	desc, ok := h.registry.Lookup(id)
	if !ok {
		h.logger.Warn("modal_open_unknown", logging.F("modal", id))
		return nil
	}
	var cmd tea.Cmd
	if desc.Capability.Show != nil {
		cmd = desc.Capability.Show(seed)
	}
	h.stack.Push(id)
	h.logger.Debug("modal_opened", logging.F("modal", id), logging.F("seed", string(seed)))
	return cmd
}

// Close hides a visible modal and removes it from the stack.
func (h *ModalHost) Close(id string) bool {
	if h == nil || !h.stack.Contains(id) {
		return false
	}
	if desc, ok := h.registry.Lookup(id); ok && desc.Capability.Hide != nil {
		desc.Capability.Hide()
	}
	h.stack.Remove(id)
	h.logger.Debug("modal_closed", logging.F("modal", id))
	return true
}

func (h *ModalHost) IsVisible(id string) bool {
	return h != nil && h.stack.Contains(id)
}

func (h *ModalHost) AnyVisible() bool {
	return h != nil && h.stack.Len() > 0
}

func (h *ModalHost) Visible() []string {
	if h == nil {
		return nil
	}
	return h.stack.IDs()
}

func (h *ModalHost) Top() (ModalDescriptor, bool) {
	if h == nil {
		return ModalDescriptor{}, false
	}
	id, ok := h.stack.Top()
	if !ok {
		return ModalDescriptor{}, false
	}
	desc, ok := h.registry.Lookup(id)
	if !ok {
		return ModalDescriptor{ID: id, Context: ContextGlobal}, true
	}
	return desc, true
}
