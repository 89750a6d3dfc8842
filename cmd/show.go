package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/activity-recap/internal"
	"github.com/spf13/cobra"
)

var (
	limit int
	since string
)

var (
	// Styles for show command
	sessionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	sessionMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)

	eventTypeStyles = map[internal.EventType]lipgloss.Style{
		internal.EventTab:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		internal.EventAction:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		internal.EventNote:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		internal.EventApp:     lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
		internal.EventMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	}

	eventContentStyle = lipgloss.NewStyle().
				Padding(0, 2)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the events of a stored session",
	Long:  `Display the captured events of a session in recorded order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sinceTime time.Time
		if since != "" {
			t, err := time.Parse(time.RFC3339, since)
			if err != nil {
				return fmt.Errorf("invalid --since timestamp (want RFC 3339): %w", err)
			}
			sinceTime = t
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

		events := filterEvents(session.Events, sinceTime, limit)
		displaySession(cmd.OutOrStdout(), session, events)
		return nil
	},
}

// filterEvents keeps events at or after since, then the last limit of them
func filterEvents(events []internal.ActivityEvent, since time.Time, limit int) []internal.ActivityEvent {
	filtered := events
	if !since.IsZero() {
		filtered = make([]internal.ActivityEvent, 0, len(events))
		for _, e := range events {
			if !e.Timestamp.Before(since) {
				filtered = append(filtered, e)
			}
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}
	return filtered
}

func displaySession(out io.Writer, session *internal.RecordingSession, events []internal.ActivityEvent) {
	name := session.Name
	if name == "" {
		name = "Untitled"
	}
	fmt.Fprintln(out, sessionHeaderStyle.Render(name))
	fmt.Fprintln(out, sessionMetaStyle.Render(fmt.Sprintf("ID: %s | Profile: %s | Started: %s | Events: %d of %d",
		session.ID, session.ProfileType, session.StartTime.Local().Format("2006-01-02 15:04"), len(events), len(session.Events))))

	for _, e := range events {
		style, ok := eventTypeStyles[e.Type]
		if !ok {
			style = lipgloss.NewStyle().Bold(true)
		}
		fmt.Fprintf(out, "%s %s %s: %s\n",
			timestampStyle.Render(e.Timestamp.Local().Format("15:04:05")),
			style.Render(fmt.Sprintf("[%s]", e.Type)),
			e.Source,
			e.Title,
		)
		if text := e.ContentText(); text != "" {
			fmt.Fprintln(out, eventContentStyle.Render(truncate(strings.TrimSpace(text), 200)))
		}
		if e.HasCode() {
			fmt.Fprintln(out, eventContentStyle.Render(fmt.Sprintf("(code snippet, %d chars)", internal.CharCount(e.CodeText()))))
		}
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the last N events")
	showCmd.Flags().StringVar(&since, "since", "", "Show events since timestamp (RFC 3339)")
}
