package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ArjunSarkar1/ClipsMaker/internal/config"
	"github.com/ArjunSarkar1/ClipsMaker/internal/pipeline"
)

func run(cmd *cobra.Command, podcast, gameplay string) error {
	outDir, _ := cmd.Flags().GetString("out")
	clipsN, _ := cmd.Flags().GetInt("clips")
	cfgPath, _ := cmd.Flags().GetString("config")
	burnSubs, _ := cmd.Flags().GetBool("burn-subs")
	verbose, _ := cmd.Flags().GetBool("verbose")
	cacheDir, _ := cmd.Flags().GetString("cache")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	settings, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Hour)
	defer cancel()

	cfg := pipeline.Config{
		PodcastInput:  podcast,
		GameplayInput: gameplay,
		OutDir:        outDir,
		CacheDir:      cacheDir,
		ClipsN:        clipsN,
		BurnSubtitles: burnSubs,
		Settings:      settings,
		Logger:        logger,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(ctx, cfg)
}

func sampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample-config",
		Short: "Print an annotated settings file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.Sample())
			return nil
		},
	}
}
