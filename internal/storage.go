package internal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Storage persists recording sessions and their events
type Storage struct {
	db *sql.DB
}

// NewStorage creates a new Storage instance
func NewStorage(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// SessionSummary is a session row without its events
type SessionSummary struct {
	ID          string
	Name        string
	ProfileType ProfileType
	StartTime   time.Time
	CreatedAt   time.Time
	EventCount  int
}

// SaveSession stores a session and its events in one transaction, replacing
// any session with the same id. An empty id is filled with a new UUID.
func (s *Storage) SaveSession(ctx context.Context, session *RecordingSession) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM events WHERE session_id = ?", session.ID); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, name, profile_type, start_time, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			profile_type = excluded.profile_type,
			start_time = excluded.start_time
	`,
		session.ID,
		session.Name,
		string(session.ProfileType),
		session.StartTime.UnixMilli(),
		session.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO events (session_id, seq, timestamp, type, source, title, description, content)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare event insert: %w", err)
	}
	defer stmt.Close()

	for i, event := range session.Events {
		var content sql.NullString
		if event.Content != nil {
			data, err := json.Marshal(event.Content)
			if err != nil {
				return fmt.Errorf("failed to encode content of event %d: %w", i, err)
			}
			content = sql.NullString{String: string(data), Valid: true}
		}

		if _, err := stmt.ExecContext(ctx,
			session.ID,
			i,
			event.Timestamp.UnixMilli(),
			string(event.Type),
			event.Source,
			event.Title,
			event.Description,
			content,
		); err != nil {
			return fmt.Errorf("failed to save event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	LogDebug("Saved session %s with %d events", session.ID, len(session.Events))
	return nil
}

// LoadSession loads a session and its events in recorded order
func (s *Storage) LoadSession(ctx context.Context, id string) (*RecordingSession, error) {
	var (
		session   RecordingSession
		profile   string
		startTime int64
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, profile_type, start_time, created_at FROM sessions WHERE id = ?", id,
	).Scan(&session.ID, &session.Name, &profile, &startTime, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	session.ProfileType = ProfileType(profile)
	session.StartTime = formatMillis(startTime)
	session.CreatedAt = formatMillis(createdAt)

	rows, err := s.db.QueryContext(ctx, `
		SELECT timestamp, type, source, title, description, content
		FROM events WHERE session_id = ? ORDER BY seq
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	session.Events = []ActivityEvent{}
	for rows.Next() {
		var (
			event     ActivityEvent
			ts        int64
			eventType string
			content   sql.NullString
		)
		if err := rows.Scan(&ts, &eventType, &event.Source, &event.Title, &event.Description, &content); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		event.Timestamp = formatMillis(ts)
		event.Type = EventType(eventType)
		if content.Valid {
			var c EventContent
			if err := json.Unmarshal([]byte(content.String), &c); err != nil {
				LogWarn("Skipping unreadable content for event %d of session %s: %v", len(session.Events), id, err)
			} else {
				event.Content = &c
			}
		}
		session.Events = append(session.Events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return &session, nil
}

// ListSessions returns every stored session, newest first
func (s *Storage) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.profile_type, s.start_time, s.created_at, COUNT(e.seq)
		FROM sessions s
		LEFT JOIN events e ON e.session_id = s.id
		GROUP BY s.id
		ORDER BY s.start_time DESC, s.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	summaries := make([]SessionSummary, 0)
	for rows.Next() {
		var (
			summary   SessionSummary
			profile   string
			startTime int64
			createdAt int64
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &profile, &startTime, &createdAt, &summary.EventCount); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		summary.ProfileType = ProfileType(profile)
		summary.StartTime = formatMillis(startTime)
		summary.CreatedAt = formatMillis(createdAt)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return summaries, nil
}

// DeleteSession removes a session and its events
func (s *Storage) DeleteSession(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM events WHERE session_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return tx.Commit()
}
