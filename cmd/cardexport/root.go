package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/milk9111/papercards/prefabs"
)

// Flags left unset on the command line fall back to these variables, which
// may come from a .env file in the working directory.
const (
	envDeck  = "PAPERCARDS_DECK"
	envOut   = "PAPERCARDS_OUT"
	envName  = "PAPERCARDS_NAME"
	envScale = "PAPERCARDS_SCALE"
	envSeed  = "PAPERCARDS_SEED"
)

type exportConfig struct {
	deck    string
	out     string
	name    string
	scale   float64
	seed    uint64
	reveal  bool
	verbose bool
}

func newRootCommand() *cobra.Command {
	cfg := exportConfig{}

	rootCmd := &cobra.Command{
		Use:           "cardexport",
		Short:         "Export every card of a deck as PNGs in a zip archive",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return applyEnv(cmd, &cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			res, err := runExport(cfg, logger, func(done, total, percent int) {
				fmt.Fprintf(cmd.OutOrStdout(), "card %d of %d (%d%%)\n", done, total, percent)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d cards)\n", res.path, res.cards)
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.deck, "deck", prefabs.DefaultDeck, "deck file in prefabs/ (or an absolute path)")
	flags.StringVarP(&cfg.out, "out", "o", ".", "directory the archive is written to")
	flags.StringVar(&cfg.name, "name", "", "archive file name (defaults to the deck's export.file_name)")
	flags.Float64Var(&cfg.scale, "scale", 0, "pixel scale (defaults to the deck's export.scale)")
	flags.Uint64Var(&cfg.seed, "seed", 1, "random seed for card rotations")
	flags.BoolVar(&cfg.reveal, "reveal", false, "include the hidden signature in the export")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every export step")

	return rootCmd
}

func applyEnv(cmd *cobra.Command, cfg *exportConfig) error {
	flags := cmd.Flags()
	if v := os.Getenv(envDeck); v != "" && !flags.Changed("deck") {
		cfg.deck = v
	}
	if v := os.Getenv(envOut); v != "" && !flags.Changed("out") {
		cfg.out = v
	}
	if v := os.Getenv(envName); v != "" && !flags.Changed("name") {
		cfg.name = v
	}
	if v := os.Getenv(envScale); v != "" && !flags.Changed("scale") {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envScale, err)
		}
		cfg.scale = scale
	}
	if v := os.Getenv(envSeed); v != "" && !flags.Changed("seed") {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.seed = seed
	}
	return nil
}
