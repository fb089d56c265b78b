package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"genuary/internal/calendar"
)

func newCalendarCmd() *cobra.Command {
	var completed, sketches bool
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List the daily prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cal, err := calendar.Load()
			if err != nil {
				return err
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Day", "Prompt", "Credit", "Status", "Sketch")
			days := cal.Challenges
			if sketches {
				days = cal.WithSketch()
			}
			for _, c := range days {
				if completed && !c.Completed {
					continue
				}
				t.Row(strconv.Itoa(c.Day), c.Prompt, c.Credit, c.Status(), strings.Join(c.Sketches, ","))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, t.String())
			fmt.Fprintf(out, "%d/%d completed\n", cal.Completed(), len(cal.Challenges))
			return nil
		},
	}
	cmd.Flags().BoolVar(&completed, "completed", false, "only completed days")
	cmd.Flags().BoolVar(&sketches, "sketches", false, "only days with a terminal sketch")
	return cmd
}
