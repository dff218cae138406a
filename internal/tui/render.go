package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"traduz/internal/core/styles"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	var content string
	switch m.state {
	case stateFileSelect:
		content = m.renderFileSelect(w, h)
	case stateEditing:
		content = m.renderEditing(w, h)
	case stateSaveConfirm:
		content = m.renderSaveConfirm(w, h)
	}

	return tea.NewView(content)
}

func (m Model) renderFileSelect(w, h int) string {
	tr := m.deps.Translator

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(tr.T("file_select_title", nil)))
	b.WriteString("\n\n")

	if len(m.files) == 0 {
		b.WriteString(styles.MutedStyle.Render(tr.T("no_documents", map[string]any{
			"Pattern": m.deps.Config.Documents.Pattern,
			"Dir":     m.deps.Config.Documents.Dir,
		})))
		b.WriteString("\n")
	} else {
		visible := max(h-5, 1)
		start := windowStart(m.fileCursor, len(m.files), visible)
		for i := start; i < len(m.files) && i < start+visible; i++ {
			name := truncate(m.files[i].Name, w-2)
			if i == m.fileCursor {
				b.WriteString(styles.SelectedRowStyle.Render("> " + name))
			} else {
				b.WriteString(styles.FileListItemStyle.Render("  " + name))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine(tr.T("file_select_help", map[string]any{
		"Lang": tr.Language(),
	}), w))

	return b.String()
}

func (m Model) renderEditing(w, h int) string {
	tr := m.deps.Translator
	ed := m.ed

	var b strings.Builder

	header := styles.TitleStyle.Render(ed.name) + "  " +
		styles.ProgressStyle.Render(tr.T("progress", map[string]any{
			"Translated": ed.doc.TranslatedKeys(),
			"Total":      ed.doc.TotalKeys(),
		}))
	b.WriteString(header)
	b.WriteString("\n\n")

	keyW, valW := columnWidths(w)
	b.WriteString(styles.HeaderStyle.Render(
		fmt.Sprintf("   %-*s %-*s %s",
			keyW, tr.T("col_key", nil),
			valW, tr.T("col_original", nil),
			tr.T("col_translated", nil)),
	))
	b.WriteString("\n")

	visible := max(h-7, 1)
	start := windowStart(ed.cursor, len(ed.doc.Entries), visible)
	matchSet := map[int]struct{}{}
	if ed.search != nil {
		for _, i := range ed.search.matches {
			matchSet[i] = struct{}{}
		}
	}

	for i := start; i < len(ed.doc.Entries) && i < start+visible; i++ {
		e := ed.doc.Entries[i]

		mark := "·"
		if e.Done {
			mark = "✓"
		}

		row := truncate(fmt.Sprintf(" %s %-*s %-*s %s",
			mark,
			keyW, truncate(e.Key, keyW),
			valW, truncate(e.Original.Text(), valW),
			truncate(e.Translated.Text(), valW),
		), w)

		_, hit := matchSet[i]
		switch {
		case i == ed.cursor:
			row = styles.SelectedRowStyle.Render(row)
		case hit:
			row = styles.SearchMatchStyle.Render(row)
		case e.Done:
			row = styles.DoneMarkStyle.Render(row)
		}

		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderEditingFooter(w))

	return b.String()
}

// renderEditingFooter renders the bottom bar: the search bar or edit bar
// when a sub-mode is active, otherwise notice/error plus the help line.
func (m Model) renderEditingFooter(w int) string {
	tr := m.deps.Translator
	ed := m.ed

	switch {
	case ed.search != nil:
		count := styles.MutedStyle.Render(
			tr.TCount("search_matches", len(ed.search.matches), map[string]any{
				"Query": ed.search.input.Value(),
			}))
		return styles.InputPromptStyle.Render("/ ") + ed.search.input.View() + "\n" +
			count + "  " + styles.HelpStyle.Render(tr.T("search_help", nil))

	case ed.edit != nil:
		prompt := styles.InputPromptStyle.Render(tr.T("edit_prompt", map[string]any{
			"Key": ed.doc.Entries[ed.edit.index].Key,
		}))
		return prompt + " " + ed.edit.input.View() + "\n" +
			styles.HelpStyle.Render(tr.T("edit_help", nil))

	default:
		help := tr.T("editing_help", nil)
		if !ed.savedAt.IsZero() {
			notice := styles.NoticeStyle.Render(tr.T("saved_notice", map[string]any{"File": ed.name}))
			return notice + "\n" + m.statusLine(help, w)
		}
		return m.statusLine(help, w)
	}
}

func (m Model) renderSaveConfirm(w, h int) string {
	tr := m.deps.Translator

	modal := styles.ModalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		styles.ModalTitleStyle.Render(m.confirm.message),
		"",
		confirmFooter(m.errMsg, styles.HelpStyle.Render(tr.T("confirm_help", nil))),
	))

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, modal)
}

// confirmFooter shows the save error inside the modal when the last confirm
// attempt failed.
func confirmFooter(errMsg, help string) string {
	if errMsg != "" {
		return styles.ErrorStyle.Render(errMsg)
	}
	return help
}

// statusLine renders the error message when present, the help line
// otherwise.
func (m Model) statusLine(help string, w int) string {
	if m.errMsg != "" {
		return styles.ErrorStyle.Render(truncate(m.errMsg, w))
	}
	return styles.HelpStyle.Render(truncate(help, w))
}

// windowStart returns the first visible index so the cursor stays in view.
func windowStart(cursor, total, visible int) int {
	if total <= visible {
		return 0
	}
	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start
}

// columnWidths splits the frame width between the key column and the two
// value columns.
func columnWidths(w int) (keyW, valW int) {
	keyW = max(w/4, 10)
	valW = max((w-keyW-6)/2, 10)
	return keyW, valW
}

// truncate cuts s to at most w characters, appending an ellipsis when
// something was cut. Callers truncate before styling.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}
