package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scrobbler/internal/diag"
	"scrobbler/internal/localization"
)

func newStringsCommand(ctx *commandContext) *cobra.Command {
	stringsCmd := &cobra.Command{
		Use:   "strings",
		Short: "Inspect and maintain the localized string mapping",
	}

	lookupCmd := &cobra.Command{
		Use:   "lookup <canonical-string>",
		Short: "Resolve a canonical English string to its localized text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			return diag.Observe(logger, "cli", func() error {
				mapper, err := ctx.newMapper()
				if err != nil {
					return err
				}
				text, err := mapper.Gettext(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			})
		},
	}

	rebuildCmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Discard the mapping cache and rebuild it from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := localization.InvalidateCache(cfg.MappingCachePath()); err != nil {
				return err
			}
			mapper, err := ctx.newMapper()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rebuilt mapping cache with %d strings\n", mapper.Count())
			return nil
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the canonical string to ID mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapper, err := ctx.newMapper()
			if err != nil {
				return err
			}
			rows := make([][]string, 0, mapper.Count())
			for _, entry := range mapper.Entries() {
				rows = append(rows, []string{strconv.Itoa(entry.ID), entry.Text})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Canonical string"},
				rows,
				[]columnAlignment{alignRight, alignLeft},
			))
			return nil
		},
	}

	stringsCmd.AddCommand(lookupCmd)
	stringsCmd.AddCommand(rebuildCmd)
	stringsCmd.AddCommand(dumpCmd)
	return stringsCmd
}
