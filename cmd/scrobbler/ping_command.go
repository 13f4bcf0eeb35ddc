package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Verify JSON-RPC connectivity with the Kodi host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.kodiClient()
			if err != nil {
				return err
			}
			if err := client.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("ping %s: %w", cfg.Kodi.URL, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Kodi at %s is reachable\n", cfg.Kodi.URL)
			return nil
		},
	}
}
