package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/jhancoach/mundial-stats/internal/aggregate"
	"github.com/jhancoach/mundial-stats/internal/bundle"
	"github.com/jhancoach/mundial-stats/internal/config"
	"github.com/jhancoach/mundial-stats/internal/model"
	"github.com/jhancoach/mundial-stats/internal/source"
)

var (
	flagTeam          string
	flagPlayers       []string
	flagMap           string
	flagRound         string
	flagConfrontation string
)

var rootCmd = &cobra.Command{
	Use:   "mundial-stats",
	Short: "Tournament stats engine",
	Long:  "Fetch tournament sheet exports, normalize them and serve or print aggregate statistics.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagTeam, "team", "", "restrict to one team")
	rootCmd.PersistentFlags().StringSliceVar(&flagPlayers, "player", nil, "restrict to these players")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "restrict to one map")
	rootCmd.PersistentFlags().StringVar(&flagRound, "round", "", "restrict to one round")
	rootCmd.PersistentFlags().StringVar(&flagConfrontation, "confrontation", "", "restrict to one confrontation")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(killfeedCmd)
	rootCmd.AddCommand(exportCmd)
}

func flagFilter() aggregate.Filter {
	return aggregate.Filter{
		Team:          flagTeam,
		Players:       flagPlayers,
		Map:           flagMap,
		Round:         flagRound,
		Confrontation: flagConfrontation,
	}
}

// newOverrideStore builds the redis-backed override store, or a
// disabled one when no redis URL is configured.
func newOverrideStore(cfg *config.Config) (*source.OverrideStore, *redis.Client, error) {
	if cfg.RedisURL == "" {
		return source.NewOverrideStore(nil), nil, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	return source.NewOverrideStore(client), client, nil
}

// fetchBundle performs a one-shot refresh cycle for the report commands.
func fetchBundle(ctx context.Context) (*model.Bundle, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	store, client, err := newOverrideStore(cfg)
	if err != nil {
		return nil, err
	}
	if client != nil {
		defer client.Close()
	}

	assembler := bundle.NewAssembler(source.NewFetcher(cfg.FetchTimeout))
	refresher := bundle.NewRefresher(assembler, store, bundle.NewHolder())
	b, _ := refresher.Refresh(ctx)
	if len(b.Details) == 0 && len(b.KillFeed) == 0 {
		return b, fmt.Errorf("no data retrieved, check source locations")
	}
	return b, nil
}
