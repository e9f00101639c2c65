package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juren53/pathmanager/internal/model"
)

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Entries: []model.PathEntry{
			{Path: "/usr/bin", Index: 0, Provenance: model.ProvenanceAmbient, Exists: true},
			{Path: "/usr/local/bin", Index: 1, Provenance: model.ProvenanceAmbient, Exists: true},
			{Path: "/missing", Index: 2, Provenance: model.ProvenanceAmbient, Exists: false},
		},
		Host: model.HostInfo{MachineName: "testbox", OSName: "Linux"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdateSnapshotReady(t *testing.T) {
	m := InitialModel()

	updated, _ := m.Update(MsgSnapshotReady(testSnapshot()))
	got := updated.(AppModel)

	assert.False(t, got.Loading)
	require.NotNil(t, got.Snapshot)
	assert.Equal(t, []int{0, 1, 2}, got.FilteredIndices)
	assert.Equal(t, 0, got.SelectedIdx)
}

func TestUpdateNavigation(t *testing.T) {
	m := InitialModel()
	updated, _ := m.Update(MsgSnapshotReady(testSnapshot()))
	m = updated.(AppModel)

	updated, _ = m.Update(keyMsg("j"))
	m = updated.(AppModel)
	assert.Equal(t, 1, m.SelectedIdx)

	updated, _ = m.Update(keyMsg("G"))
	m = updated.(AppModel)
	assert.Equal(t, 2, m.SelectedIdx)

	// Cursor stays in bounds at the bottom.
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(AppModel)
	assert.Equal(t, 2, m.SelectedIdx)

	updated, _ = m.Update(keyMsg("g"))
	m = updated.(AppModel)
	assert.Equal(t, 0, m.SelectedIdx)

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(AppModel)
	assert.Equal(t, 0, m.SelectedIdx)
}

func TestUpdateQuit(t *testing.T) {
	m := InitialModel()

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdateError(t *testing.T) {
	m := InitialModel()

	updated, _ := m.Update(MsgError(assert.AnError))
	got := updated.(AppModel)

	assert.False(t, got.Loading)
	assert.Equal(t, assert.AnError, got.Err)
}
