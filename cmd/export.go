package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/activity-recap/internal"
	"github.com/iksnae/activity-recap/internal/export"
	"github.com/iksnae/activity-recap/internal/recap"
	"github.com/spf13/cobra"
)

var (
	format        string
	outputDir     string
	sessionID     string
	exportProfile string
	clearCache    bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session recaps to files",
	Long: `Export recaps to various formats (md, html, json, yaml, jsonl).

Every stored session is exported unless --session-id names one. Files are
written as <out>/recap_<session-id>.<ext>. jsonl writes one timeline entry
per line. Use 'activity-recap list' to see available session IDs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if format == "" {
			format = cfg.Format
		}
		if outputDir == "" {
			outputDir = cfg.OutputDir
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		var profile internal.ProfileType
		if exportProfile != "" {
			profile, err = internal.ParseProfileType(exportProfile)
			if err != nil {
				return err
			}
		}

		cache := internal.NewCacheManager(cfg.CacheDir)
		if clearCache {
			if err := cache.ClearCache(); err != nil {
				internal.LogWarn("Failed to clear cache: %v", err)
			} else {
				internal.LogInfo("Cache cleared: %s", cache.GetCacheDir())
			}
		}

		storage, closeStorage, err := openStorage()
		if err != nil {
			return err
		}
		defer closeStorage()

		ctx := cmd.Context()
		ids := []string{sessionID}
		if sessionID == "" {
			summaries, err := storage.ListSessions(ctx)
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			ids = ids[:0]
			for _, s := range summaries {
				ids = append(ids, s.ID)
			}
		}
		if len(ids) == 0 {
			internal.PrintWarning("No sessions to export")
			return nil
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return &internal.ExportError{Format: format, Path: outputDir, Err: err}
		}

		generator := &recap.CachedGenerator{Cache: cache}
		exported := 0
		err = internal.ShowProgress(ctx, fmt.Sprintf("Exporting %d recap(s) to %s", len(ids), outputDir), func() error {
			for _, id := range ids {
				session, err := storage.LoadSession(ctx, id)
				if err != nil {
					if sessionID != "" {
						return err
					}
					internal.LogError("Failed to load session %s: %v", id, err)
					continue
				}

				content, _, err := generator.Generate(session, profile)
				if err != nil {
					internal.LogError("Failed to generate recap for %s: %v", id, err)
					continue
				}

				path := filepath.Join(outputDir, fmt.Sprintf("recap_%s.%s", id, exporter.Extension()))
				if err := writeExport(exporter, content, path); err != nil {
					internal.LogError("%v", err)
					continue
				}
				exported++
			}
			return nil
		})
		if err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Export complete: %d recap(s) exported to %s", exported, outputDir))
		return nil
	},
}

func writeExport(exporter export.Exporter, content *internal.GeneratedContent, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}

	if err := exporter.Export(content, file); err != nil {
		_ = file.Close()
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}

	if err := file.Close(); err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "", "Export format (md, html, json, yaml, jsonl); defaults to config format")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory; defaults to config output_dir")
	exportCmd.Flags().StringVar(&sessionID, "session-id", "", "Export a specific session by ID")
	exportCmd.Flags().StringVarP(&exportProfile, "profile", "p", "", "Recap profile override")
	exportCmd.Flags().BoolVar(&clearCache, "clear-cache", false, "Clear the recap cache before running")
}
