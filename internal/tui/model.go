// Package tui implements the interactive translation editor: a Bubble Tea
// state machine over the catalog and the document stores. Rendering reads
// state and never mutates it; all file I/O happens inline with event
// handling.
package tui

import (
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"traduz/internal/core/catalog"
	"traduz/internal/core/config"
	"traduz/internal/core/locale"
	"traduz/internal/data/stores"
)

// appState is the top-level state of the editor. Exiting is modeled by the
// quitting flag plus tea.Quit rather than a dedicated state.
type appState int

const (
	stateFileSelect appState = iota
	stateEditing
	stateSaveConfirm
)

// saveNoticeTTL is how long the save notification stays visible.
const saveNoticeTTL = 2 * time.Second

// pendingAction identifies what a save confirmation will do after saving.
type pendingAction int

const (
	actionSaveReturn pendingAction = iota
	actionSaveExit
)

// searchState is the live key search inside the editing state.
type searchState struct {
	input   textinput.Model
	matches []int
	sel     catalog.Selection
}

// fieldEdit is an in-progress edit of one entry's translated value.
type fieldEdit struct {
	index int
	input textinput.Model
}

// editor holds everything owned by the Editing and SaveConfirmation states.
// It is discarded wholesale on return to file selection.
type editor struct {
	doc    *catalog.Document
	name   string
	cursor int

	// Sub-modes, mutually exclusive; search masks edit masks navigation.
	search *searchState
	edit   *fieldEdit

	savedAt time.Time
}

// confirmState carries the pending action and its localized message.
type confirmState struct {
	action  pendingAction
	message string
}

// Deps are the external collaborators of the TUI.
type Deps struct {
	Config     *config.Config
	Translator *locale.Translator
	Sources    *stores.SourceStore
	Snapshots  *stores.SnapshotStore
	Ledgers    *stores.LedgerStore
}

// Opts configures a TUI run.
type Opts struct {
	Documents []stores.DocumentInfo
}

// Model is the main Bubble Tea model.
type Model struct {
	deps Deps

	state appState

	files      []stores.DocumentInfo
	fileCursor int

	ed      *editor       // non-nil in stateEditing and stateSaveConfirm
	confirm *confirmState // non-nil in stateSaveConfirm

	errMsg   string
	width    int
	height   int
	quitting bool
}

// saveNoticeExpiredMsg clears the save notification once its display window
// has elapsed.
type saveNoticeExpiredMsg struct{}

// New creates the TUI model with the given collaborators and the initial
// candidate document list.
func New(deps Deps, opts Opts) Model {
	return Model{
		deps:  deps,
		files: opts.Documents,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case saveNoticeExpiredMsg:
		return m.handleSaveNoticeExpired()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleSaveNoticeExpired clears the notification once it has been visible
// for the full window. A newer save re-arms its own timer, so an early tick
// from a previous save is ignored.
func (m Model) handleSaveNoticeExpired() (tea.Model, tea.Cmd) {
	if m.ed != nil && !m.ed.savedAt.IsZero() && time.Since(m.ed.savedAt) >= saveNoticeTTL {
		m.ed.savedAt = time.Time{}
	}
	return m, nil
}

// handleKey routes key presses to the active state's handler.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.state {
	case stateFileSelect:
		return m.handleFileSelectKey(msg)
	case stateEditing:
		return m.handleEditingKey(msg)
	case stateSaveConfirm:
		return m.handleSaveConfirmKey(msg)
	}

	return m, nil
}

// quit flags the model as done and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// openDocument loads a source document and all prior progress, replacing
// any previous editor. A load failure surfaces the error and keeps the
// model in file selection.
func (m Model) openDocument(info stores.DocumentInfo) (tea.Model, tea.Cmd) {
	src, err := m.deps.Sources.Load(info.Path)
	if err != nil {
		log.Error().Err(err).Str("path", info.Path).Msg("failed to open document")
		m.errMsg = err.Error()
		return m, nil
	}

	snapshot := m.deps.Snapshots.Load(info.Path)
	completed := m.deps.Ledgers.Load(info.Path)

	m.ed = &editor{
		doc:  catalog.Load(src, snapshot, completed),
		name: info.Name,
	}
	m.state = stateEditing
	m.errMsg = ""

	log.Info().
		Str("path", info.Path).
		Int("keys", m.ed.doc.TotalKeys()).
		Int("confirmed", m.ed.doc.TranslatedKeys()).
		Msg("opened document")

	return m, nil
}

// returnToFileSelect discards the editor and refreshes the candidate list.
// A listing failure keeps the previous list.
func (m Model) returnToFileSelect() Model {
	m.ed = nil
	m.confirm = nil
	m.state = stateFileSelect

	files, err := m.deps.Sources.List()
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh document list")
		m.errMsg = err.Error()
	} else {
		m.files = files
	}

	if m.fileCursor >= len(m.files) {
		m.fileCursor = max(len(m.files)-1, 0)
	}

	return m
}

// save writes the snapshot (which also rewrites the ledger) and arms the
// save notification. On failure the session is left untouched for retry.
func (m Model) save() (Model, tea.Cmd) {
	if err := m.deps.Snapshots.Save(m.ed.doc); err != nil {
		log.Error().Err(err).Str("document", m.ed.name).Msg("save failed")
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.ed.savedAt = time.Now()
	log.Info().Str("document", m.ed.name).Msg("saved")

	return m, tea.Tick(saveNoticeTTL, func(time.Time) tea.Msg {
		return saveNoticeExpiredMsg{}
	})
}

// Quitting reports whether the model has finished.
func (m Model) Quitting() bool {
	return m.quitting
}
