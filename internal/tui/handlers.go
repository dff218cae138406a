package tui

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"traduz/internal/core/catalog"
)

// handleFileSelectKey handles keys in the file selection state.
func (m Model) handleFileSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit), key.Matches(msg, keys.Cancel):
		return m.quit()

	case key.Matches(msg, keys.Up):
		if m.fileCursor > 0 {
			m.fileCursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.fileCursor < len(m.files)-1 {
			m.fileCursor++
		}
		return m, nil

	case key.Matches(msg, keys.Confirm):
		if len(m.files) == 0 {
			return m, nil
		}
		return m.openDocument(m.files[m.fileCursor])

	case key.Matches(msg, keys.Language):
		m.deps.Translator.CycleLanguage()
		return m, nil
	}

	return m, nil
}

// handleEditingKey dispatches to the active editing sub-mode: search masks
// field edit, field edit masks normal navigation.
func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.ed.search != nil:
		return m.handleSearchKey(msg)
	case m.ed.edit != nil:
		return m.handleFieldEditKey(msg)
	default:
		return m.handleNavigationKey(msg)
	}
}

// handleSearchKey handles keys while the search query is live.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.ed
	s := ed.search

	switch {
	case key.Matches(msg, keys.Confirm):
		// Jump the main cursor to the selected match, then leave search.
		// Query and results are cleared either way.
		if idx, ok := s.sel.Index(); ok && idx < len(s.matches) {
			ed.cursor = s.matches[idx]
		}
		ed.search = nil
		return m, nil

	case key.Matches(msg, keys.Cancel):
		ed.search = nil
		return m, nil

	case key.Matches(msg, keys.ArrowUp):
		s.sel = s.sel.Up(len(s.matches))
		return m, nil

	case key.Matches(msg, keys.ArrowDn):
		s.sel = s.sel.Down(len(s.matches))
		return m, nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	// Re-evaluate on every keystroke of the query.
	if q := s.input.Value(); q != before {
		s.matches = catalog.Search(ed.doc.Entries, q)
		s.sel = catalog.SelectFirst(len(s.matches))
	}

	return m, cmd
}

// handleFieldEditKey handles keys while one entry's translated value is
// being edited.
func (m Model) handleFieldEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.ed

	switch {
	case key.Matches(msg, keys.Confirm):
		// An empty draft commits an empty string, not "no change".
		ed.doc.SetTranslated(ed.edit.index, ed.edit.input.Value())
		ed.edit = nil
		return m, nil

	case key.Matches(msg, keys.Cancel):
		ed.edit = nil
		return m, nil
	}

	var cmd tea.Cmd
	ed.edit.input, cmd = ed.edit.input.Update(msg)
	return m, cmd
}

// handleNavigationKey handles keys in the plain editing mode.
func (m Model) handleNavigationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.ed

	switch {
	case key.Matches(msg, keys.Up):
		if ed.cursor > 0 {
			ed.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if ed.cursor < len(ed.doc.Entries)-1 {
			ed.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.Confirm):
		return m.startFieldEdit()

	case key.Matches(msg, keys.Toggle):
		ed.doc.Toggle(ed.cursor)
		// Toggling persists only the ledger; the snapshot waits for an
		// explicit save.
		if err := m.deps.Ledgers.Save(ed.doc); err != nil {
			log.Error().Err(err).Str("document", ed.name).Msg("ledger save failed")
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		return m, nil

	case key.Matches(msg, keys.Save):
		var cmd tea.Cmd
		m, cmd = m.save()
		return m, cmd

	case key.Matches(msg, keys.Search):
		input := textinput.New()
		input.Placeholder = m.deps.Translator.T("search_prompt", nil)
		input.Focus()
		ed.search = &searchState{input: input, sel: catalog.NoSelection()}
		return m, nil

	case key.Matches(msg, keys.Quit):
		m.confirm = &confirmState{
			action:  actionSaveExit,
			message: m.deps.Translator.T("save_exit_confirm", nil),
		}
		m.state = stateSaveConfirm
		return m, nil

	case key.Matches(msg, keys.Cancel):
		m.confirm = &confirmState{
			action:  actionSaveReturn,
			message: m.deps.Translator.T("save_return_confirm", nil),
		}
		m.state = stateSaveConfirm
		return m, nil

	case key.Matches(msg, keys.Language):
		m.deps.Translator.CycleLanguage()
		return m, nil
	}

	return m, nil
}

// startFieldEdit opens the draft buffer for the entry under the cursor,
// seeded with the translated value as plain text.
func (m Model) startFieldEdit() (tea.Model, tea.Cmd) {
	ed := m.ed
	if ed.cursor >= len(ed.doc.Entries) {
		return m, nil
	}

	input := textinput.New()
	input.SetValue(ed.doc.Entries[ed.cursor].Translated.Text())
	input.CursorEnd()
	input.Focus()

	ed.edit = &fieldEdit{index: ed.cursor, input: input}
	return m, nil
}

// handleSaveConfirmKey handles the save confirmation modal. Confirming
// saves and transitions; a failed save keeps the modal up with the error so
// the user can retry or back out.
func (m Model) handleSaveConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Accept):
		var cmd tea.Cmd
		m, cmd = m.save()
		if m.errMsg != "" {
			return m, cmd
		}

		if m.confirm.action == actionSaveExit {
			return m.quit()
		}
		return m.returnToFileSelect(), cmd

	case key.Matches(msg, keys.Cancel):
		m.confirm = nil
		m.state = stateEditing
		return m, nil
	}

	return m, nil
}
