package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/juren53/pathmanager/internal/model"
)

const dirPreviewLimit = 50

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Reading PATH configuration... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	// Layout dimensions
	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	// Subtracting 6 for vertical margin (title, footer, borders)
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}

	leftWidth := netWidth * 3 / 5
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}

	// Interior height (excluding borders)
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	// Styles
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimmedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	missingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)

	borderColor := lipgloss.Color("63")
	activeColor := lipgloss.Color("205")

	// LEFT PANEL: PATH List
	var leftView strings.Builder
	title := "PATH Entries"
	if m.SearchActive {
		title = fmt.Sprintf("PATH Entries matching %q", m.InputBuffer.Value())
	}
	leftView.WriteString(titleStyle.Render(title))
	leftView.WriteString("\n\n")

	// Windowing Logic for Left Panel
	// Header is 2 lines (Title + 1 blank line)
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)

	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		idx := m.FilteredIndices[i]
		entry := m.Snapshot.Entries[idx]

		statusIcon := model.IconOK
		if !entry.Exists {
			statusIcon = model.IconMissing
		} else if entry.Provenance == model.ProvenanceUser {
			statusIcon = model.IconUser
		} else if entry.Provenance == model.ProvenanceMachine {
			statusIcon = model.IconMachine
		}

		line := fmt.Sprintf("%2d. %s %s", entry.Index+1, statusIcon, entry.Path)
		if !entry.Exists {
			line += " (not found)"
		} else if m.Snapshot.IsScoped() && entry.Provenance != model.ProvenanceAmbient {
			line += fmt.Sprintf(" (%s)", entry.Provenance)
		}

		// Priority indicators
		if entry.Index == 0 {
			line += " (highest priority " + model.IconPriorityHigh + ")"
		} else if entry.Index == len(m.Snapshot.Entries)-1 {
			line += " (lowest priority " + model.IconPriorityLow + ")"
		}

		// Truncate
		if len(line) > leftWidth-2 {
			line = line[:leftWidth-5] + "..."
		}

		var style lipgloss.Style
		if i == m.SelectedIdx {
			style = selectedStyle
		} else if !entry.Exists {
			style = missingStyle
		} else {
			style = normalStyle
		}

		leftView.WriteString(style.Render(line))
		leftView.WriteString("\n")
	}

	if len(m.FilteredIndices) == 0 {
		leftView.WriteString(dimmedStyle.Render("  (no entries)"))
		leftView.WriteString("\n")
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(activeColor).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: Entry Details
	var rightView strings.Builder
	rightView.WriteString(titleStyle.Render("Details"))
	rightView.WriteString("\n\n")

	if m.SelectedIdx < len(m.FilteredIndices) {
		entry := m.Snapshot.Entries[m.FilteredIndices[m.SelectedIdx]]

		rightView.WriteString(labelStyle.Render("Path: "))
		rightView.WriteString(entry.Path + "\n")
		rightView.WriteString(labelStyle.Render("Position: "))
		rightView.WriteString(fmt.Sprintf("%d of %d\n", entry.Index+1, len(m.Snapshot.Entries)))

		if m.Snapshot.IsScoped() {
			rightView.WriteString(labelStyle.Render("Source: "))
			rightView.WriteString(string(entry.Provenance) + "\n")
		}

		rightView.WriteString(labelStyle.Render("Exists: "))
		if entry.Exists {
			rightView.WriteString("yes\n")
		} else {
			rightView.WriteString(missingStyle.Render("no "+model.IconMissing) + "\n")
		}

		// Directory preview for existing entries
		if entry.Exists {
			rightView.WriteString("\n")
			preview := model.GetDirPreview(entry.Path, dirPreviewLimit)
			if preview.ErrorMsg != "" {
				rightView.WriteString(dimmedStyle.Render(preview.ErrorMsg))
				rightView.WriteString("\n")
			} else {
				rightView.WriteString(labelStyle.Render(fmt.Sprintf("Contents (%d):", preview.Total)))
				rightView.WriteString("\n")

				// Fill remaining panel space only
				previewLines := interiorHeight - 10
				if previewLines < 1 {
					previewLines = 1
				}
				for i, name := range preview.Names {
					if i >= previewLines {
						rightView.WriteString(dimmedStyle.Render("  ..."))
						rightView.WriteString("\n")
						break
					}
					line := "  " + name
					if len(line) > rightWidth-2 {
						line = line[:rightWidth-5] + "..."
					}
					rightView.WriteString(dimmedStyle.Render(line))
					rightView.WriteString("\n")
				}
			}
		}
	} else {
		rightView.WriteString(dimmedStyle.Render("  (nothing selected)"))
		rightView.WriteString("\n")
	}

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(strings.TrimSuffix(rightView.String(), "\n"))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	// Header line
	host := m.Snapshot.Host
	header := titleStyle.Render("PathManager") + dimmedStyle.Render(
		fmt.Sprintf("  %s | %s %s | %s", host.MachineName, host.OSName, host.OSVersion, host.Hardware))

	// Footer: summary counts + key help (or the search input)
	var footer string
	if m.InputMode {
		footer = "Find binary: " + m.InputBuffer.View()
	} else {
		summary := fmt.Sprintf("Total: %d", len(m.Snapshot.Entries))
		if m.Snapshot.IsScoped() {
			summary += fmt.Sprintf(" | User: %d | Machine: %d",
				len(m.Snapshot.UserScope), len(m.Snapshot.MachineScope))
		}
		if missing := m.Snapshot.Missing(); missing > 0 {
			summary += fmt.Sprintf(" | Missing: %d", missing)
		}
		footer = dimmedStyle.Render(summary + "   ↑/↓ navigate · w find binary · esc clear · q quit")
	}

	return header + "\n" + panels + "\n" + footer
}
