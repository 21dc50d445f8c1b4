package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kata/pkg/catalog"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickCommand creates the pick command.
func (c *CLI) pickCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [args...]",
		Short: "Choose a kata interactively and run it on the given arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.newCatalog()
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewKataListModel(cat.All()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
				tea.WithContext(cmd.Context()),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("kata picker: %w", err)
			}

			m, ok := final.(KataListModel)
			if !ok || m.Selected == nil {
				printInfo(cmd.ErrOrStderr(), "No kata selected")
				return nil
			}
			printSuccess(cmd.ErrOrStderr(), "Running %s", m.Selected.Name)
			return c.runKata(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), m.Selected.Name, args)
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// =============================================================================
// KataListModel - Interactive kata selection
// =============================================================================

// KataListModel is the bubbletea model for interactive kata selection.
type KataListModel struct {
	Entries  []catalog.Entry
	Cursor   int
	Selected *catalog.Entry
	Height   int
	Offset   int
}

// NewKataListModel creates a new kata list model.
func NewKataListModel(entries []catalog.Entry) KataListModel {
	return KataListModel{
		Entries: entries,
		Height:  15,
	}
}

func (m KataListModel) Init() tea.Cmd {
	return nil
}

func (m KataListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Entries) == 0 {
				return m, tea.Quit
			}
			e := m.Entries[m.Cursor]
			m.Selected = &e
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m KataListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Kata"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Entries))
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-20s %-9s %s", cursor, e.Name, e.Kind, listDimStyle.Render(e.Summary))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Entries)), len(m.Entries))))

	return b.String()
}
