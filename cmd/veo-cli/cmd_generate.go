package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"veo-dream-web/internal/builder"
	"veo-dream-web/internal/config"
	"veo-dream-web/internal/domain"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	prompt       string
	pollInterval time.Duration
	minutes      int
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a video and print its signed URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.prompt) == "" {
				return fmt.Errorf("%w: --prompt is required", domain.ErrInvalidRequest)
			}
			if opts.pollInterval <= 0 {
				return fmt.Errorf("--poll-interval must be positive (got %s)", opts.pollInterval)
			}
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), opts, cmd.Flags().Changed("minutes"))
		},
	}

	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "", "Text prompt for the video")
	cmd.Flags().DurationVar(&opts.pollInterval, "poll-interval", config.CLIPollInterval, "Interval between status polls")
	cmd.Flags().IntVar(&opts.minutes, "minutes", 0, "Signed URL validity in minutes (default SIGNED_URL_MINUTES)")
	return cmd
}

func runGenerate(parent context.Context, out io.Writer, opts *generateOptions, minutesSet bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	cfg.PollInterval = opts.pollInterval
	cfg.QueueID = ""
	if minutesSet {
		cfg.SignedURLMinutes = opts.minutes
	}
	if err := config.ValidateEssentialConfig(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if err := config.ValidateOutputURI(cfg.OutputGCSURI); err != nil {
		return err
	}

	container, err := builder.BuildContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build application container: %w", err)
	}
	defer container.Close()

	result, err := container.Pipeline.Generate(ctx, opts.prompt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted; the remote job keeps running: %w", err)
		}
		return err
	}

	printResult(out, result)
	return nil
}

func printResult(out io.Writer, result *domain.VideoResult) {
	fmt.Fprintf(out, "Video:      %s\n", result.Location.String())
	fmt.Fprintf(out, "Signed URL: %s\n", result.Link.URL)
	fmt.Fprintf(out, "Expires at: %s\n", result.Link.ExpiresAt.Format(time.RFC3339))
}
