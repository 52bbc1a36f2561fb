package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/jhancoach/mundial-stats/internal/aggregate"
)

var usageTopN int

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Print ability, pet and item usage tables",
	Args:  cobra.NoArgs,
	RunE:  runUsage,
}

func init() {
	usageCmd.Flags().IntVar(&usageTopN, "top", aggregate.DefaultUsageCutoff, "entries per table")
}

func runUsage(cmd *cobra.Command, args []string) error {
	b, err := fetchBundle(cmd.Context())
	if err != nil {
		return err
	}

	report := aggregate.BuildUsageReport(b, flagFilter(), usageTopN)
	printUsageTable("Active Abilities", report.Active)
	printUsageTable("Passive Abilities", report.Passive)
	printUsageTable("Pets", report.Pets)
	printUsageTable("Items", report.Items)
	return nil
}

func printUsageTable(title string, entries []aggregate.UsageEntry) {
	fmt.Fprintf(os.Stdout, "\n--- %s ---\n\n", title)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "No data.")
		return
	}
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("NAME", "COUNT")
	for _, e := range entries {
		table.Append(e.Name, fmt.Sprintf("%d", e.Count))
	}
	table.Render()
}
