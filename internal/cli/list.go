package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kata/pkg/catalog"
	"github.com/matzehuels/kata/pkg/errors"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every kata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := c.newCatalog()
			if err != nil {
				return err
			}

			entries := cat.All()
			if kind != "" {
				k, err := parseKind(kind)
				if err != nil {
					return err
				}
				entries = cat.ByKind(k)
			}
			renderEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only list one kind: text, tally, sequence, classify")
	_ = cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		kinds := make([]string, len(catalog.Kinds))
		for i, k := range catalog.Kinds {
			kinds[i] = string(k)
		}
		return kinds, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func parseKind(s string) (catalog.Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	accepted := make([]string, len(catalog.Kinds))
	for i, k := range catalog.Kinds {
		if string(k) == norm {
			return k, nil
		}
		accepted[i] = string(k)
	}
	return "", &errors.UnrecognizedError{Kind: "kind", Input: s, Accepted: accepted}
}

// renderEntries prints entries as a bordered table.
func renderEntries(w io.Writer, entries []catalog.Entry) {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, string(e.Kind), e.Usage, e.Summary}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kata", "Kind", "Args", "Summary").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1: // header
				return headerStyle.Padding(0, 1)
			case col == 0:
				return base.Foreground(colorCyan)
			case col == 3:
				return StyleValue.Padding(0, 1)
			}
			return base.Foreground(colorGray)
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%d katas", len(entries))))
}
