package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/dinemenu/internal/logger"
	"github.com/kailas-cloud/dinemenu/internal/tui"
)

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive menu browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logpkg.NewFileLogger(opts.logFile, opts.logLevel)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			client, err := opts.client(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			logger.Info("Starting menu browser", zap.String("source_url", opts.sourceURL))
			if err := tui.Run(ctx, client, logger); err != nil {
				return fmt.Errorf("browser: %w", err)
			}
			return nil
		},
	}
}
