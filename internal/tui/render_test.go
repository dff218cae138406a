package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traduz/pkg/tuitest"
)

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{"app.json": `{"a":"1"}`})

	next, _ := m.Update(tuitest.WindowSize(100, 30))
	m = next.(Model)

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
}

func TestRenderFileSelect(t *testing.T) {
	t.Run("lists documents", func(t *testing.T) {
		m, _ := newTestModel(t, map[string]string{"app.json": `{}`, "menu.json": `{}`})

		view := tuitest.StripANSI(m.renderFileSelect(80, 24))
		assert.Contains(t, view, "app.json")
		assert.Contains(t, view, "menu.json")
	})

	t.Run("shows a hint when no documents match", func(t *testing.T) {
		m, _ := newTestModel(t, map[string]string{})

		view := tuitest.StripANSI(m.renderFileSelect(80, 24))
		assert.Contains(t, view, "*.json")
	})
}

func TestRenderEditing(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{"app.json": `{"greeting":"Hello"}`})
	m = press(t, m, "enter")

	view := tuitest.StripANSI(m.renderEditing(80, 24))
	assert.Contains(t, view, "greeting")
	assert.Contains(t, view, "Hello")
	assert.Contains(t, view, "0/1")

	m = press(t, m, "t")
	view = tuitest.StripANSI(m.renderEditing(80, 24))
	assert.Contains(t, view, "1/1")
	assert.Contains(t, view, "✓")
}

func TestRenderSearchFooter(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{"app.json": `{"menu.file":"1","menu.edit":"2"}`})
	m = press(t, m, "enter", "/")
	m = typeText(t, m, "menu")

	view := tuitest.StripANSI(m.renderEditing(80, 24))
	assert.Contains(t, view, "menu")
	assert.Contains(t, view, "2")
}

func TestRenderSaveConfirm(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{"app.json": `{"a":"1"}`})
	m = press(t, m, "enter", "q")
	require.Equal(t, stateSaveConfirm, m.state)

	view := tuitest.StripANSI(m.renderSaveConfirm(80, 24))
	assert.Contains(t, view, m.confirm.message)
}
