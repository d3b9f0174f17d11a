package app

import (
	"sort"
	"strings"
)

const (
	KeyCommandListMode      = "ui.listMode"
	KeyCommandScrollDown    = "ui.scrollDown"
	KeyCommandScrollUp      = "ui.scrollUp"
	KeyCommandFocusIntent   = "ui.focusIntent"
	KeyCommandFocusJournal  = "ui.focusJournal"
	KeyCommandOpenReading   = "ui.openReading"
	KeyCommandOpenDrawing   = "ui.openDrawing"
	KeyCommandOpenEyeHealth = "ui.openEyeHealth"
	KeyCommandOpenMind      = "ui.openMind"
	KeyCommandOpenChinese   = "ui.openChinese"
	KeyCommandOpenMirror    = "ui.openMirror"
	KeyCommandOpenHelp      = "ui.openHelp"
	KeyCommandTogglePrayer  = "ui.togglePrayer"
	KeyCommandListDown      = "list.down"
	KeyCommandListUp        = "list.up"
	KeyCommandListCopy      = "list.copy"
	KeyCommandListDelete    = "list.delete"
	KeyCommandListExit      = "list.exit"
)

var defaultKeybindingByCommand = map[string]string{
	KeyCommandListMode:      "l",
	KeyCommandScrollDown:    "j",
	KeyCommandScrollUp:      "k",
	KeyCommandFocusIntent:   "i",
	KeyCommandFocusJournal:  "n",
	KeyCommandOpenReading:   "r",
	KeyCommandOpenDrawing:   "a",
	KeyCommandOpenEyeHealth: "e",
	KeyCommandOpenMind:      "m",
	KeyCommandOpenChinese:   "h",
	KeyCommandOpenMirror:    "v",
	KeyCommandOpenHelp:      "?",
	KeyCommandTogglePrayer:  "p",
	KeyCommandListDown:      "j",
	KeyCommandListUp:        "k",
	KeyCommandListCopy:      "c",
	KeyCommandListDelete:    "d",
	KeyCommandListExit:      "l",
}

type Keybindings struct {
	byCommand map[string]string
}

func DefaultKeybindings() *Keybindings {
	return NewKeybindings(nil)
}

// NewKeybindings applies overrides on top of the defaults. Unknown commands
// and empty keys are ignored.
func NewKeybindings(overrides map[string]string) *Keybindings {
	byCommand := make(map[string]string, len(defaultKeybindingByCommand))
	for command, key := range defaultKeybindingByCommand {
		byCommand[command] = key
	}
	for command, key := range overrides {
		command = strings.TrimSpace(command)
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, ok := defaultKeybindingByCommand[command]; !ok {
			continue
		}
		byCommand[command] = key
	}
	return &Keybindings{byCommand: byCommand}
}

func (k *Keybindings) KeyFor(command string) string {
	command = strings.TrimSpace(command)
	if k != nil {
		if key := strings.TrimSpace(k.byCommand[command]); key != "" {
			return key
		}
	}
	return defaultKeybindingByCommand[command]
}

// Matches reports whether ev is the key bound to command. Matching ignores
// case.
func (k *Keybindings) Matches(ev KeyEvent, command string) bool {
	return ev.Is(k.KeyFor(command))
}

func (k *Keybindings) Bindings() map[string]string {
	out := make(map[string]string, len(defaultKeybindingByCommand))
	for _, command := range KnownKeybindingCommands() {
		out[command] = k.KeyFor(command)
	}
	return out
}

func KnownKeybindingCommands() []string {
	keys := make([]string, 0, len(defaultKeybindingByCommand))
	for command := range defaultKeybindingByCommand {
		keys = append(keys, command)
	}
	sort.Strings(keys)
	return keys
}
