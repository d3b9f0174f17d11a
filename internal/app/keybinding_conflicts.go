package app

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

const (
	keyScopeGlobal   = "global"
	keyScopeListMode = "list_mode"
)

type KeybindingConflict struct {
	Key      string
	Scope    string
	Commands []string
}

func (c KeybindingConflict) ToastMessage() string {
	return fmt.Sprintf(
		"keybinding conflict: %s in %s (%s)",
		c.Key,
		c.Scope,
		strings.Join(c.Commands, ", "),
	)
}

// DetectKeybindingConflicts reports keys bound to more than one command
// within the same scope. List-mode commands shadow global ones while list
// mode is active, so the two tables are checked separately.
func DetectKeybindingConflicts(bindings *Keybindings) []KeybindingConflict {
	if bindings == nil {
		bindings = DefaultKeybindings()
	}
	type scopeKey struct {
		scope string
		key   string
	}
	commandsByScopeKey := map[scopeKey][]string{}
	for _, command := range KnownKeybindingCommands() {
		bound := strings.ToLower(strings.TrimSpace(bindings.KeyFor(command)))
		if bound == "" {
			continue
		}
		k := scopeKey{scope: keybindingScopeFor(command), key: bound}
		commandsByScopeKey[k] = append(commandsByScopeKey[k], command)
	}
	conflicts := make([]KeybindingConflict, 0)
	for scoped, commands := range commandsByScopeKey {
		if len(commands) < 2 {
			continue
		}
		slices.Sort(commands)
		conflicts = append(conflicts, KeybindingConflict{
			Key:      scoped.key,
			Scope:    scoped.scope,
			Commands: commands,
		})
	}
	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Scope != conflicts[j].Scope {
			return conflicts[i].Scope < conflicts[j].Scope
		}
		return conflicts[i].Key < conflicts[j].Key
	})
	return conflicts
}

func keybindingScopeFor(command string) string {
	if strings.HasPrefix(command, "list.") {
		return keyScopeListMode
	}
	return keyScopeGlobal
}
