package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/iksnae/activity-recap/internal"
	"github.com/iksnae/activity-recap/internal/export"
	"github.com/iksnae/activity-recap/internal/recap"
	"github.com/spf13/cobra"
)

var (
	generateProfile string
	generateFormat  string
	generateNoCache bool
)

// generateCmd renders the recap of one stored session
var generateCmd = &cobra.Command{
	Use:   "generate <session-id>",
	Short: "Generate the recap of a stored session",
	Long: `Generate the recap of a session and print it.

Without --format the recap is rendered as Markdown for the terminal. With
--format (md, html, json, yaml, jsonl) the raw export is written to stdout.
Recaps are cached until the session's events change; --no-cache forces
regeneration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var exporter export.Exporter
		if generateFormat != "" {
			var err error
			exporter, err = export.NewExporter(generateFormat)
			if err != nil {
				return err
			}
		}

		var profile internal.ProfileType
		if generateProfile != "" {
			var err error
			profile, err = internal.ParseProfileType(generateProfile)
			if err != nil {
				return err
			}
		}

		storage, closeStorage, err := openStorage()
		if err != nil {
			return err
		}
		defer closeStorage()

		session, err := storage.LoadSession(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		generator := &recap.CachedGenerator{}
		if !generateNoCache {
			generator.Cache = internal.NewCacheManager(cfg.CacheDir)
		}

		content, cached, err := generator.Generate(session, profile)
		if err != nil {
			return fmt.Errorf("failed to generate recap: %w", err)
		}
		internal.LogDebug("Recap for %s (cached: %v)", session.ID, cached)

		out := cmd.OutOrStdout()
		if exporter != nil {
			return exporter.Export(content, out)
		}

		rendered, err := renderTerminal(export.Markdown(content))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	},
}

// renderTerminal styles Markdown for the terminal
func renderTerminal(markdown string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render recap: %w", err)
	}

	return rendered, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateProfile, "profile", "p", "", "Recap profile override")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "Output format (md, html, json, yaml, jsonl); default renders for the terminal")
	generateCmd.Flags().BoolVar(&generateNoCache, "no-cache", false, "Regenerate instead of using the recap cache")
}
