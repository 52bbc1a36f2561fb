package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/jhancoach/mundial-stats/internal/aggregate"
)

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Print the player kill ranking",
	Args:  cobra.NoArgs,
	RunE:  runRanking,
}

func runRanking(cmd *cobra.Command, args []string) error {
	b, err := fetchBundle(cmd.Context())
	if err != nil {
		return err
	}

	rows := aggregate.BuildPlayerRanking(b, flagFilter())
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No player stats found for the given filter.")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("#", "PLAYER", "TEAM", "KILLS", "MATCHES", "AVG")
	for i, r := range rows {
		table.Append(
			fmt.Sprintf("%d", i+1),
			r.Name,
			r.Team,
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%d", r.Matches),
			r.Avg,
		)
	}
	table.Render()
	return nil
}
