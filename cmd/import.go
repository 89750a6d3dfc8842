package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iksnae/activity-recap/internal"
	"github.com/spf13/cobra"
)

var (
	importProfile  string
	importName     string
	importNoDedupe bool
)

// importCmd stores a recorder export file as a new session
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a recorder export into the event store",
	Long: `Import a JSON or YAML recorder export as a new session.

Timestamps may be epoch milliseconds or RFC 3339 strings. A bare array of
events is accepted as well. Exact duplicate events are dropped unless
--no-dedupe is given. The new session id is printed on success.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		var override internal.ProfileType
		if importProfile != "" {
			var err error
			override, err = internal.ParseProfileType(importProfile)
			if err != nil {
				return err
			}
		}

		storage, closeStorage, err := openStorage()
		if err != nil {
			return err
		}
		defer closeStorage()

		var (
			raw     *internal.RawRecording
			session *internal.RecordingSession
		)
		ctx := cmd.Context()
		err = internal.ShowProgressWithSteps(ctx, []internal.ProgressStep{
			{
				Message: fmt.Sprintf("Reading %s", filepath.Base(path)),
				Fn: func() error {
					raw, err = internal.ParseRecordingFile(path)
					return err
				},
			},
			{
				Message: "Normalizing events",
				Fn: func() error {
					profile := override
					if profile == "" && raw.ProfileType == "" {
						profile = cfg.ProfileType()
					}
					session, err = internal.NewNormalizer().NormalizeRecording(raw, profile)
					if err != nil {
						return err
					}
					if importName != "" {
						session.Name = importName
					}
					if session.Name == "" {
						session.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
					}
					if !importNoDedupe {
						before := len(session.Events)
						session.Events = internal.NewDeduplicator().Deduplicate(session.Events)
						if removed := before - len(session.Events); removed > 0 {
							internal.LogInfo("Dropped %d duplicate event(s)", removed)
						}
					}
					return nil
				},
			},
			{
				Message: "Saving session",
				Fn: func() error {
					return storage.SaveSession(ctx, session)
				},
			},
		})
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), session.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importProfile, "profile", "p", "", "Profile for the session (student, developer, support, researcher, custom)")
	importCmd.Flags().StringVar(&importName, "name", "", "Session name (defaults to the file's name or base name)")
	importCmd.Flags().BoolVar(&importNoDedupe, "no-dedupe", false, "Keep exact duplicate events")
}
