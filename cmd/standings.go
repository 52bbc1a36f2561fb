package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/jhancoach/mundial-stats/internal/aggregate"
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Print the team standings table",
	Args:  cobra.NoArgs,
	RunE:  runStandings,
}

func runStandings(cmd *cobra.Command, args []string) error {
	b, err := fetchBundle(cmd.Context())
	if err != nil {
		return err
	}

	stats := aggregate.BuildTeamStats(b, flagFilter())
	if len(stats) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found for the given filter.")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("#", "TEAM", "PTS", "PLACE PTS", "KILLS", "BOOYAHS", "MATCHES", "AVG PTS")
	for i, s := range stats {
		table.Append(
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.TotalPoints),
			fmt.Sprintf("%d", s.PlacementPoints),
			fmt.Sprintf("%d", s.Kills),
			fmt.Sprintf("%d", s.Booyahs),
			fmt.Sprintf("%d", s.Matches),
			fmt.Sprintf("%.2f", s.AvgPoints),
		)
	}
	table.Render()
	return nil
}
