package app

import (
	"fmt"

	"github.com/phillarmonic/lpsc/internal/cache"
	"github.com/spf13/cobra"
)

// Domain: Compile Cache Maintenance
// This file contains the cmd:cache subcommand for inspecting the cache

// cacheCommand creates the cmd:cache subcommand
func (a *App) cacheCommand() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cmd:cache",
		Short: "Inspect and maintain the compile cache",
		Long: `Inspect and maintain the compile cache stored under ~/.lpsc.

Compiled output is cached by source hash, so recompiling an unchanged
program is a lookup instead of a full pipeline run.

Note: The 'cmd:' prefix is reserved for built-in commands.`,
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show compile cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cache.Open(cache.DefaultExpiration, false)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stats := store.Stats()
			fmt.Printf("Keys:         %d\n", stats.Keys)
			fmt.Printf("File bytes:   %d\n", stats.FileBytes)
			fmt.Printf("Live records: %d\n", stats.LiveRecords)
			return nil
		},
	})

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached compile result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cache.Open(cache.DefaultExpiration, false)
			if err != nil {
				return err
			}

			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Println("🧹 Compile cache cleared")
			return nil
		},
	})

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "compact",
		Short: "Compact the cache database to reclaim disk space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cache.Open(cache.DefaultExpiration, false)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Compact(); err != nil {
				return err
			}
			fmt.Println("✅ Compile cache compacted")
			return nil
		},
	})

	return cacheCmd
}
