package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// SheetInfo describes a worksheet shown in the picker.
type SheetInfo struct {
	Name string
	Rows int
}

// SheetListModel is the bubbletea model for interactive worksheet selection.
type SheetListModel struct {
	Sheets   []SheetInfo
	Cursor   int
	Selected *SheetInfo
	Height   int
	Offset   int
}

// NewSheetListModel creates a new worksheet list model.
func NewSheetListModel(sheets []SheetInfo) SheetListModel {
	return SheetListModel{
		Sheets: sheets,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m SheetListModel) Init() tea.Cmd {
	return nil
}

func (m SheetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Sheets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			sheet := m.Sheets[m.Cursor]
			if sheet.Rows == 0 {
				return m, nil
			}
			m.Selected = &sheet
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SheetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Worksheet"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Sheets) {
		end = len(m.Sheets)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Sheets[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		count := "—"
		if s.Rows > 0 {
			count = fmt.Sprintf("%d", s.Rows)
		}

		rows = append(rows, []string{cursor, s.Name, count})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Worksheet", "Rows").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Sheets) {
				return lipgloss.NewStyle()
			}
			s := m.Sheets[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if isCurrent {
				if s.Rows > 0 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Foreground(colorDim).Bold(true)
			}
			if s.Rows == 0 {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Sheets))))

	return b.String()
}
