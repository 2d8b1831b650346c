// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/librarydesk/internal/backend"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the library backend answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.APITimeout)
		defer cancel()

		client := backend.NewClient(cfg.APIBaseURL, cfg.APITimeout, log)
		if err := client.Ping(ctx); err != nil {
			return fmt.Errorf("backend %s unreachable: %w", cfg.APIBaseURL, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "backend %s is reachable\n", cfg.APIBaseURL)
		return nil
	},
}
