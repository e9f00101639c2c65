package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/juren53/pathmanager/internal/model"
	"github.com/juren53/pathmanager/internal/resolve"
)

// MsgSnapshotReady indicates that the resolver has finished.
type MsgSnapshotReady *model.Snapshot

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case MsgSnapshotReady:
		m.Loading = false
		m.Snapshot = msg
		m.resetFilter()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performSearch()
				return m, nil
			case tea.KeyEsc:
				// Exit search mode and clear search
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch() // Reset filter to all
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch()
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "g", "home":
			m.SelectedIdx = 0
		case "G", "end":
			if len(m.FilteredIndices) > 0 {
				m.SelectedIdx = len(m.FilteredIndices) - 1
			}
		case "w":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m *AppModel) resetFilter() {
	if m.Snapshot == nil {
		m.FilteredIndices = nil
		return
	}
	m.FilteredIndices = make([]int, len(m.Snapshot.Entries))
	for i := range m.Snapshot.Entries {
		m.FilteredIndices[i] = i
	}
	if m.SelectedIdx >= len(m.FilteredIndices) {
		m.SelectedIdx = 0
	}
}

// performSearch filters entries to directories that contain a binary
// whose name starts with the typed term.
func (m *AppModel) performSearch() {
	if m.Snapshot == nil {
		return
	}
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		// Reset
		m.SearchActive = false
		m.resetFilter()
	} else {
		m.SearchActive = true
		var result []int
		for i, entry := range m.Snapshot.Entries {
			// Missing directories can't contain the binary; skip them.
			files, err := os.ReadDir(entry.Path)
			if err != nil {
				continue
			}

			for _, f := range files {
				if f.IsDir() {
					continue
				}
				if strings.HasPrefix(strings.ToLower(f.Name()), term) {
					result = append(result, i)
					break
				}
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

// InitResolveCmd runs the resolver in the background.
func InitResolveCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := resolve.NewResolver().Resolve()
		if err != nil {
			return MsgError(err)
		}
		return MsgSnapshotReady(snap)
	}
}
