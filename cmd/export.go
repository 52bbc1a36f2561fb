package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhancoach/mundial-stats/internal/config"
	"github.com/jhancoach/mundial-stats/internal/logging"
	"github.com/jhancoach/mundial-stats/internal/source"
	"github.com/jhancoach/mundial-stats/internal/tabular"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <dataset>",
	Short: "Fetch one dataset and emit it as normalized CSV",
	Long: `Fetch a single dataset from its effective source location, parse it
with the tolerant reader and re-emit it as clean RFC-style CSV. Useful
for inspecting what the engine actually sees, including rows that only
parse via the fallback path.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	ds := source.Dataset(args[0])
	known := false
	for _, d := range source.All() {
		if d == ds {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown dataset %q, expected one of %v", args[0], source.All())
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	store, client, err := newOverrideStore(cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	locs := store.Locations(cmd.Context())
	text, err := source.NewFetcher(cfg.FetchTimeout).FetchText(cmd.Context(), locs[ds])
	if err != nil {
		return fmt.Errorf("fetch %s: %w", ds, err)
	}

	t := tabular.ParseCSV(text)
	if t.FallbackRows > 0 {
		logging.Logger().Warnf("%d rows parsed via fallback split", t.FallbackRows)
	}

	out := tabular.Encode(t.Headers, t.Rows, ',')
	if exportOut == "" {
		fmt.Fprint(os.Stdout, out)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %d rows to %s\n", len(t.Rows), exportOut)
	return nil
}
