package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "clipsmaker <podcast> <gameplay>",
		Short:        "Cut a podcast + gameplay pairing into vertical short clips",
		Long: "clipsmaker transcribes the podcast track, scores the transcript and audio\n" +
			"for viewer engagement, and renders the top segments as 9:16 split-screen\n" +
			"clips with animated subtitles. Inputs are local files or YouTube URLs.",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("out", "out", "Output directory")
	root.Flags().Int("clips", 5, "Number of clips to generate")
	root.Flags().String("config", "", "Path to a TOML settings file")
	root.Flags().Bool("burn-subs", true, "Burn animated subtitles into each clip")
	root.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	// Hidden tuning flag (internal)
	root.Flags().String("cache", ".cache", "Cache directory for intermediate artifacts")
	_ = root.Flags().MarkHidden("cache")

	root.AddCommand(sampleConfigCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
