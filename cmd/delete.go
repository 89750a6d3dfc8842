package cmd

import (
	"fmt"

	"github.com/iksnae/activity-recap/internal"
	"github.com/spf13/cobra"
)

// deleteCmd removes a stored session and its cached recaps
var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a stored session",
	Long: `Delete a session and its events from the event store, then drop every
cached recap generated for it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		storage, closeStorage, err := openStorage()
		if err != nil {
			return err
		}
		defer closeStorage()

		if err := storage.DeleteSession(cmd.Context(), id); err != nil {
			return err
		}

		cache := internal.NewCacheManager(cfg.CacheDir)
		if err := cache.Invalidate(id); err != nil {
			internal.LogWarn("Failed to drop cached recaps in %s: %v", cache.GetCacheDir(), err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
