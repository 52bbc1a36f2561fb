package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/jhancoach/mundial-stats/internal/aggregate"
)

var killfeedDeaths bool

var killfeedCmd = &cobra.Command{
	Use:   "killfeed",
	Short: "Print kill-feed frequency tables",
	Args:  cobra.NoArgs,
	RunE:  runKillfeed,
}

func init() {
	killfeedCmd.Flags().BoolVar(&killfeedDeaths, "deaths", false, "count victims instead of killers")
}

func runKillfeed(cmd *cobra.Command, args []string) error {
	b, err := fetchBundle(cmd.Context())
	if err != nil {
		return err
	}

	mode := aggregate.ModeKills
	if killfeedDeaths {
		mode = aggregate.ModeDeaths
	}

	breakdown := aggregate.BuildKillBreakdown(b, flagFilter(), mode)
	fmt.Fprintf(os.Stdout, "\nTotal events: %d\n", breakdown.Total)
	printFreqTable("Weapons", breakdown.Weapons)
	printFreqTable("Safe Zones", breakdown.Safes)
	printFreqTable("Players", breakdown.Players)
	return nil
}

func printFreqTable(title string, entries []aggregate.FreqEntry) {
	fmt.Fprintf(os.Stdout, "\n--- %s ---\n\n", title)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "No data.")
		return
	}
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("NAME", "COUNT", "SHARE")
	for _, e := range entries {
		table.Append(e.Name, fmt.Sprintf("%d", e.Count), fmt.Sprintf("%.1f%%", e.Percent))
	}
	table.Render()
}
