package app

// Hotkey is one entry of the footer hints and the shortcuts sheet. When
// Command is set the key shown comes from the active keybindings.
type Hotkey struct {
	Key      string
	Command  string
	Label    string
	Context  ContextTag
	Priority int
}

const (
	ContextListMode ContextTag = "listMode"
	ContextTyping   ContextTag = "typing"
)

type HotkeyResolver interface {
	ActiveContexts(*Model) []ContextTag
}

func DefaultHotkeys() []Hotkey {
	return []Hotkey{
		{Command: KeyCommandScrollDown, Label: "scroll down", Context: ContextGlobal, Priority: 10},
		{Command: KeyCommandScrollUp, Label: "scroll up", Context: ContextGlobal, Priority: 11},
		{Command: KeyCommandListMode, Label: "select entries", Context: ContextGlobal, Priority: 20},
		{Command: KeyCommandFocusIntent, Label: "intention", Context: ContextGlobal, Priority: 30},
		{Command: KeyCommandFocusJournal, Label: "write", Context: ContextGlobal, Priority: 31},
		{Command: KeyCommandTogglePrayer, Label: "prayer", Context: ContextGlobal, Priority: 40},
		{Command: KeyCommandOpenReading, Label: "reading", Context: ContextGlobal, Priority: 50},
		{Command: KeyCommandOpenDrawing, Label: "drawing", Context: ContextGlobal, Priority: 51},
		{Command: KeyCommandOpenEyeHealth, Label: "eye health", Context: ContextGlobal, Priority: 52},
		{Command: KeyCommandOpenMind, Label: "mind", Context: ContextGlobal, Priority: 53},
		{Command: KeyCommandOpenChinese, Label: "chinese", Context: ContextGlobal, Priority: 54},
		{Command: KeyCommandOpenMirror, Label: "mirror", Context: ContextGlobal, Priority: 55},
		{Command: KeyCommandOpenHelp, Label: "help", Context: ContextGlobal, Priority: 80},
		{Key: "ctrl+c", Label: "quit", Context: ContextGlobal, Priority: 90},
		{Command: KeyCommandListDown, Label: "next", Context: ContextListMode, Priority: 10},
		{Command: KeyCommandListUp, Label: "previous", Context: ContextListMode, Priority: 11},
		{Command: KeyCommandListCopy, Label: "copy", Context: ContextListMode, Priority: 20},
		{Command: KeyCommandListDelete, Label: "delete", Context: ContextListMode, Priority: 21},
		{Command: KeyCommandListExit, Label: "done", Context: ContextListMode, Priority: 30},
		{Key: "esc", Label: "leave field", Context: ContextTyping, Priority: 10},
		{Key: "enter", Label: "save", Context: ContextTyping, Priority: 11},
		{Key: "shift+enter", Label: "newline", Context: ContextTyping, Priority: 12},
		{Key: "j/k", Label: "scroll", Context: ContextReading, Priority: 10},
		{Key: "j/k", Label: "scroll", Context: ContextDrawing, Priority: 10},
		{Key: "j/k", Label: "scroll", Context: ContextEyeHealth, Priority: 10},
		{Key: "j/k", Label: "scroll", Context: ContextMind, Priority: 10},
		{Key: "enter", Label: "check answer", Context: ContextChinese, Priority: 10},
		{Key: "tab", Label: "toggle answer field", Context: ContextChinese, Priority: 11},
		{Key: "c", Label: "capture", Context: ContextMirror, Priority: 10},
		{Key: "f", Label: "flip", Context: ContextMirror, Priority: 11},
		{Key: "j/k", Label: "scroll", Context: ContextShortcuts, Priority: 10},
		{Key: "q/esc", Label: "close", Context: ContextShortcuts, Priority: 90},
	}
}

// modalHotkeys are shown whenever any modal is open.
func modalHotkeys() []Hotkey {
	return []Hotkey{
		{Key: "?", Label: "help", Context: "", Priority: 80},
		{Key: "q/esc", Label: "close", Context: "", Priority: 90},
	}
}

type DefaultHotkeyResolver struct{}

func (r DefaultHotkeyResolver) ActiveContexts(m *Model) []ContextTag {
	if m == nil {
		return []ContextTag{ContextGlobal}
	}
	if top, ok := m.host.Top(); ok {
		return []ContextTag{top.Context}
	}
	if m.fields.Focused() != nil {
		return []ContextTag{ContextTyping}
	}
	if m.list.Active() {
		return []ContextTag{ContextListMode}
	}
	return []ContextTag{ContextGlobal}
}
