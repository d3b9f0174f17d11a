package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"daybook/internal/logging"
	"daybook/internal/types"
)

const (
	minPanelHeight   = 3
	composerHeight   = 3
	chromeLines      = 6 + composerHeight
	intentDateLayout = "2006-01-02"
)

type ModelOption func(*Model)

// ModelConfig carries the collaborators and settings the dashboard needs.
type ModelConfig struct {
	Journal        JournalAPI
	State          StateAPI
	Keybindings    map[string]string
	ScrollStep     int
	ScrollDuration time.Duration
	ToastDuration  time.Duration
	Logger         logging.Logger
}

type Model struct {
	journalAPI JournalAPI
	stateAPI   StateAPI
	logger     logging.Logger

	state      *State
	dispatcher *KeyDispatcher
	router     *Router
	host       *ModalHost
	confirm    *ConfirmController
	list       *ListModeController
	scroll     *ScrollAnimator
	panel      *JournalPanel

	fields  *fieldSet
	intent  *inputField
	journal *areaField

	panels []*modalPanel
	drill  *chineseDrill
	mirror *mirrorModal
	help   *shortcutsModal

	toast         *toastState
	hotkeys       *HotkeyRenderer
	layerComposer LayerComposer
	bindings      *Keybindings
	conflicts     []KeybindingConflict

	appState types.AppState
	width    int
	height   int
	now      func() time.Time
}

func NewModel(cfg ModelConfig, opts ...ModelOption) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	bindings := NewKeybindings(cfg.Keybindings)
	m := &Model{
		journalAPI:    cfg.Journal,
		stateAPI:      cfg.State,
		logger:        logger,
		state:         NewState(),
		dispatcher:    NewKeyDispatcher(),
		panel:         NewJournalPanel(80, 20),
		toast:         newToastState(cfg.ToastDuration),
		layerComposer: NewTextLayerComposer(),
		bindings:      bindings,
		conflicts:     DetectKeybindingConflicts(bindings),
		now:           time.Now,
	}
	m.confirm = NewConfirmController(m.dispatcher)
	m.scroll = NewScrollAnimator(m.state, m.panel, logger)
	m.list = NewListModeController(ListModeControllerConfig{
		State:   m.state,
		Display: m.panel,
		Journal: newJournalSource(cfg.Journal, logger),
		Confirm: m.confirm,
		Notify:  m.notify,
		Logger:  logger,
	})

	m.intent = newInputField(FieldIntent, "today I intend to...", &formNode{name: "intention", submit: m.submitIntent})
	m.journal = newAreaField(FieldJournal, "write a journal entry", &formNode{name: "journal-composer", submit: m.submitJournal})
	m.fields = newFieldSet(m.intent, m.journal)

	m.hotkeys = NewHotkeyRenderer(DefaultHotkeys(), DefaultHotkeyResolver{}, bindings)
	m.panels = []*modalPanel{
		newModalPanel(ModalReading, "Reading", ContextReading, readingContent()),
		newModalPanel(ModalDrawing, "Drawing", ContextDrawing, drawingContent()),
		newModalPanel(ModalEyeHealth, "Eye health", ContextEyeHealth, eyeHealthContent()),
		newModalPanel(ModalMind, "Mind", ContextMind, mindContent()),
	}
	m.mirror = newMirrorModal(m.notify)
	m.help = newShortcutsModal(m.hotkeys)

	m.drill = newChineseDrill(nil, nil, m.notify)
	m.drill.attach(m.fields)

	descriptors := make([]ModalDescriptor, 0, len(m.panels)+3)
	for _, panel := range m.panels {
		descriptors = append(descriptors, panel.descriptor())
	}
	descriptors = append(descriptors, m.drill.descriptor(), m.mirror.descriptor(), m.help.descriptor())
	m.host = NewModalHost(NewModalRegistry(descriptors...), logger)
	m.drill.host = m.host

	m.router = NewRouter(RouterConfig{
		State:          m.state,
		Host:           m.host,
		List:           m.list,
		Scroll:         m.scroll,
		Confirm:        m.confirm,
		Focus:          m.fields,
		Bindings:       bindings,
		Hooks:          RouterHooks{TogglePrayer: m.togglePrayer},
		ScrollStep:     cfg.ScrollStep,
		ScrollDuration: cfg.ScrollDuration,
		Logger:         logger,
	})
	m.dispatcher.SetRouter(m.router)
	for _, panel := range m.panels {
		m.dispatcher.AddListener(bodyScrollListener(m.host, panel))
	}
	m.dispatcher.AddListener(m.drill.Listener)

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if m != nil && now != nil {
			m.now = now
		}
	}
}

func Run(cfg ModelConfig) error {
	model := NewModel(cfg)
	_, err := tea.NewProgram(model).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.stateAPI != nil {
		cmds = append(cmds, fetchAppStateCmd(m.stateAPI))
	}
	if m.journalAPI != nil {
		cmds = append(cmds, fetchJournalCmd(m.journalAPI))
	}
	for _, conflict := range m.conflicts {
		m.logger.Warn("keybinding_conflict", logging.F("key", conflict.Key), logging.F("scope", conflict.Scope))
		cmds = append(cmds, m.toast.enqueue(toastLevelWarning, conflict.ToastMessage()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.MouseClickMsg:
		if m.confirm.IsOpen() {
			return m, m.confirm.HandleMouse(msg, m.width, m.height)
		}
		return m, nil
	case scrollFrameMsg:
		return m, m.scroll.Step(msg)
	case toastExpiredMsg:
		return m, m.toast.expire(msg)
	case journalEntriesMsg:
		if msg.err != nil {
			m.logger.Error("journal_load_failed", logging.F("error", msg.err))
			return m, m.notify(toastLevelError, "could not load journal")
		}
		m.panel.SetEntries(entryRefs(msg.entries))
		m.list.Refresh()
		return m, nil
	case journalEntryAddedMsg:
		if msg.err != nil {
			m.logger.Error("journal_add_failed", logging.F("error", msg.err))
			return m, m.notify(toastLevelError, "could not save entry")
		}
		return m, tea.Batch(fetchJournalCmd(m.journalAPI), m.notify(toastLevelInfo, "Saved"))
	case appStateMsg:
		if msg.err != nil {
			m.logger.Error("app_state_load_failed", logging.F("error", msg.err))
			return m, nil
		}
		m.applyAppState(msg.state)
		return m, nil
	case appStateSavedMsg:
		if msg.err != nil {
			m.logger.Error("app_state_save_failed", logging.F("error", msg.err))
			return m, m.notify(toastLevelError, "could not save dashboard")
		}
		return m, nil
	}
	return m, m.fields.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	ev := NewKeyEvent(msg, m.fields.Focused())
	result, cmd := m.dispatcher.Dispatch(ev)
	if result == PassThrough && ev.Target != nil {
		cmd = tea.Batch(cmd, m.fields.Deliver(ev))
	}
	return cmd
}

func (m *Model) notify(level toastLevel, message string) tea.Cmd {
	return m.toast.show(level, message)
}

// ShortcutsContext reports which context the help modal describes.
func (m *Model) ShortcutsContext() ContextTag {
	return m.router.ShortcutsContext()
}

func (m *Model) submitJournal() tea.Cmd {
	text := strings.TrimSpace(m.journal.Value())
	if text == "" || m.journalAPI == nil {
		return nil
	}
	m.journal.Reset()
	return addJournalEntryCmd(m.journalAPI, &types.JournalEntry{Text: text, From: types.EntrySourceJournal})
}

func (m *Model) submitIntent() tea.Cmd {
	text := strings.TrimSpace(m.intent.Value())
	m.fields.Blur()
	if text == "" {
		return nil
	}
	m.appState.Intention = text
	m.appState.IntentionDate = m.now().Format(intentDateLayout)
	cmds := []tea.Cmd{m.notify(toastLevelInfo, "Intention set")}
	if m.stateAPI != nil {
		cmds = append(cmds, saveAppStateCmd(m.stateAPI, m.appState))
	}
	if m.journalAPI != nil {
		cmds = append(cmds, addJournalEntryCmd(m.journalAPI, &types.JournalEntry{Text: text, From: types.EntrySourceIntent}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) togglePrayer() tea.Cmd {
	m.appState.Prayed = !m.appState.Prayed
	message := "Prayer unmarked"
	if m.appState.Prayed {
		m.appState.PrayedAt = m.now().UTC()
		message = "Prayer marked"
	} else {
		m.appState.PrayedAt = time.Time{}
	}
	cmds := []tea.Cmd{m.notify(toastLevelInfo, message)}
	if m.stateAPI != nil {
		cmds = append(cmds, saveAppStateCmd(m.stateAPI, m.appState))
	}
	return tea.Batch(cmds...)
}

// applyAppState loads persisted dashboard state. Yesterday's intention and
// prayer are not carried over.
func (m *Model) applyAppState(state *types.AppState) {
	if state == nil {
		return
	}
	m.appState = *state
	today := m.now().Format(intentDateLayout)
	if m.appState.IntentionDate != today {
		m.appState.Intention = ""
		m.appState.IntentionDate = ""
	}
	if !m.appState.PrayedAt.IsZero() && m.appState.PrayedAt.Local().Format(intentDateLayout) != today {
		m.appState.Prayed = false
		m.appState.PrayedAt = time.Time{}
	}
	m.intent.SetValue(m.appState.Intention)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.panel.Resize(width, max(minPanelHeight, height-chromeLines))
	m.intent.SetWidth(width - 12)
	m.journal.SetWidth(width)
	for _, panel := range m.allPanels() {
		panel.Resize(width, height)
	}
	m.help.refresh()
}

func (m *Model) allPanels() []*modalPanel {
	out := append([]*modalPanel(nil), m.panels...)
	return append(out, m.drill.panel, m.mirror.panel, m.help.panel)
}

func (m *Model) panelByID(id string) *modalPanel {
	for _, panel := range m.allPanels() {
		if panel.id == id {
			return panel
		}
	}
	return nil
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.WindowTitle = "daybook"
	return v
}

func (m *Model) render() string {
	width := max(1, m.width)
	divider := dividerStyle.Render(strings.Repeat("─", width))
	lines := []string{
		m.headerLine(width),
		m.intentLine(),
		divider,
		m.panel.View(),
		divider,
		m.composerLabel(),
		m.journal.view(),
		m.footerLine(width),
	}
	base := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.layerComposer.Compose(base, m.overlays(width, lipgloss.Height(base)))
}

func (m *Model) overlays(width, height int) []LayerOverlay {
	var overlays []LayerOverlay
	for _, id := range m.host.Visible() {
		panel := m.panelByID(id)
		if panel == nil {
			continue
		}
		block := panel.View()
		x := max(0, (width-lipgloss.Width(block))/2)
		y := max(0, (height-lipgloss.Height(block))/2)
		overlays = append(overlays, LayerOverlay{Row: y, Block: indentBlock(block, x)})
	}
	if m.confirm.IsOpen() {
		block, row := m.confirm.View(width, height)
		overlays = append(overlays, LayerOverlay{Row: row, Block: block})
	}
	return overlays
}

func (m *Model) headerLine(width int) string {
	title := headerStyle.Render("Daybook")
	date := statusStyle.Render(m.now().Format("Monday, January 2"))
	prayer := prayerPendingStyle.Render("○ prayer")
	if m.appState.Prayed {
		prayer = prayerDoneStyle.Render("● prayed")
	}
	left := title + "  " + date
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(prayer))
	return left + strings.Repeat(" ", gap) + prayer
}

func (m *Model) intentLine() string {
	label := fieldLabelStyle.Render("intention ")
	if m.fields.IsFocused(FieldIntent) {
		label = fieldFocusedLabelStyle.Render("intention ")
	}
	return label + m.intent.view()
}

func (m *Model) composerLabel() string {
	if m.fields.IsFocused(FieldJournal) {
		return fieldFocusedLabelStyle.Render("journal")
	}
	return fieldLabelStyle.Render("journal")
}

func (m *Model) footerLine(width int) string {
	if line := m.toast.line(width); line != "" {
		return line
	}
	return helpStyle.Render(truncateToWidth(m.hotkeys.Render(m), width))
}
