package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "veo-cli",
		Short: "Generate videos with Veo and print a signed download URL",
		Long: `veo-cli submits a Veo video generation job, waits for it to finish,
and prints a time-limited signed URL for the generated video.

Configuration is read from the environment (and .env), the same way as the server.

Examples:
  veo-cli generate --prompt "a cat surfing at sunset"
  veo-cli generate --prompt "city lights" --minutes 30 --poll-interval 20s`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newGenerateCmd())
	return rootCmd
}
