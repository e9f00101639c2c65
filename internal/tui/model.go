package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/juren53/pathmanager/internal/model"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Snapshot *model.Snapshot
	Loading  bool
	Err      error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of entries to show
	SearchActive    bool
}

// InitialModel returns the initial state.
func InitialModel() AppModel {
	ti := textinput.New()
	ti.Placeholder = "Binary name..."
	ti.CharLimit = 50
	ti.Width = 20

	return AppModel{
		Loading:     true,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
}

// Init starts the background resolve.
func (m AppModel) Init() tea.Cmd {
	return InitResolveCmd()
}
