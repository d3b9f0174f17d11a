package app

import (
	"fmt"
	"sort"
	"strings"
)

type HotkeyRenderer struct {
	hotkeys  []Hotkey
	resolver HotkeyResolver
	bindings *Keybindings
}

func NewHotkeyRenderer(hotkeys []Hotkey, resolver HotkeyResolver, bindings *Keybindings) *HotkeyRenderer {
	if bindings == nil {
		bindings = DefaultKeybindings()
	}
	return &HotkeyRenderer{hotkeys: hotkeys, resolver: resolver, bindings: bindings}
}

// Render returns the footer hint line for the model's active contexts.
func (r *HotkeyRenderer) Render(m *Model) string {
	if r == nil {
		return ""
	}
	var contexts []ContextTag
	if r.resolver != nil {
		contexts = r.resolver.ActiveContexts(m)
	}
	visible := FilterHotkeys(r.hotkeys, contexts)
	if m != nil && m.host.AnyVisible() {
		visible = append(visible, modalHotkeys()...)
	}
	parts := make([]string, 0, len(visible))
	for _, hk := range visible {
		parts = append(parts, hotkeyKeyStyle.Render(r.keyFor(hk))+" "+hk.Label)
	}
	return strings.Join(parts, " • ")
}

// Markdown renders the shortcut sheet for ctx followed by the dashboard keys.
func (r *HotkeyRenderer) Markdown(ctx ContextTag) string {
	var b strings.Builder
	writeSection := func(title string, hotkeys []Hotkey) {
		if len(hotkeys) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, hk := range hotkeys {
			fmt.Fprintf(&b, "- `%s` %s\n", keyColumn(r.keyFor(hk), 6), escapeMarkdown(hk.Label))
		}
		b.WriteString("\n")
	}
	if ctx == "" {
		ctx = ContextGlobal
	}
	writeSection(contextTitle(ctx), FilterHotkeys(r.hotkeys, []ContextTag{ctx}))
	for _, rest := range []ContextTag{ContextGlobal, ContextListMode, ContextTyping} {
		if rest != ctx {
			writeSection(contextTitle(rest), FilterHotkeys(r.hotkeys, []ContextTag{rest}))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *HotkeyRenderer) keyFor(hk Hotkey) string {
	if hk.Command != "" {
		return r.bindings.KeyFor(hk.Command)
	}
	return hk.Key
}

func FilterHotkeys(hotkeys []Hotkey, contexts []ContextTag) []Hotkey {
	if len(hotkeys) == 0 || len(contexts) == 0 {
		return nil
	}
	allowed := map[ContextTag]struct{}{}
	for _, ctx := range contexts {
		allowed[ctx] = struct{}{}
	}
	var out []Hotkey
	for _, hk := range hotkeys {
		if _, ok := allowed[hk.Context]; ok {
			out = append(out, hk)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority == out[j].Priority {
			return out[i].Label < out[j].Label
		}
		return out[i].Priority < out[j].Priority
	})
	return out
}

func contextTitle(ctx ContextTag) string {
	switch ctx {
	case ContextReading:
		return "Reading"
	case ContextDrawing:
		return "Drawing"
	case ContextEyeHealth:
		return "Eye health"
	case ContextMind:
		return "Mind"
	case ContextChinese:
		return "Chinese"
	case ContextMirror:
		return "Mirror"
	case ContextShortcuts:
		return "Shortcuts"
	case ContextListMode:
		return "Selecting entries"
	case ContextTyping:
		return "Writing"
	}
	return "Dashboard"
}
