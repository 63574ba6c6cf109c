package cli

import (
	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/cache"
	"github.com/carbonhub-app/carbonhub/internal/config"
)

// NewCacheInfoCmd creates the cache info command.
func NewCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache location, TTL and size",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := newCacheStore(cmd, config.GetGlobalConfig())
			if err != nil {
				return err
			}
			if !store.IsEnabled() {
				cmd.Println("Cache: disabled")
				return nil
			}

			stats, err := store.Stats()
			if err != nil {
				return err
			}
			cmd.Printf("Cache:     enabled\n")
			cmd.Printf("Directory: %s\n", store.Directory())
			cmd.Printf("TTL:       %s\n", cache.FormatDuration(store.TTL()))
			cmd.Printf("Entries:   %d (%d expired)\n", stats.Entries, stats.Expired)
			cmd.Printf("Size:      %d bytes\n", stats.Bytes)
			return nil
		},
	}
}

// NewCacheClearCmd creates the cache clear command.
func NewCacheClearCmd() *cobra.Command {
	var expiredOnly bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached API responses",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := newCacheStore(cmd, config.GetGlobalConfig())
			if err != nil {
				return err
			}
			if !store.IsEnabled() {
				cmd.Println("Cache is disabled, nothing to clear")
				return nil
			}

			var removed int
			if expiredOnly {
				removed, err = store.CleanupExpired()
			} else {
				removed, err = store.Clear()
			}
			if err != nil {
				return err
			}
			cmd.Printf("Removed %d cache entries\n", removed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&expiredOnly, "expired", false, "only remove expired entries")
	return cmd
}
