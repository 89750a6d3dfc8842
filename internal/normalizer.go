package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Normalizer converts recorder exports into RecordingSessions
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a new Normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NormalizeRecording validates and converts a raw recording. A non-empty
// profile overrides the one stored in the file; custom is used when neither
// is set.
func (n *Normalizer) NormalizeRecording(raw *RawRecording, profile ProfileType) (*RecordingSession, error) {
	if raw == nil {
		return nil, fmt.Errorf("recording is nil")
	}

	if profile == "" {
		if raw.ProfileType == "" {
			profile = ProfileCustom
		} else {
			parsed, err := ParseProfileType(raw.ProfileType)
			if err != nil {
				return nil, err
			}
			profile = parsed
		}
	}
	if !profile.Valid() {
		return nil, &ValidationError{Field: "profileType", Index: -1, Reason: fmt.Sprintf("unknown profile %q", profile)}
	}

	events := make([]ActivityEvent, 0, len(raw.Events))
	for i, re := range raw.Events {
		event, err := n.normalizeEvent(re)
		if err != nil {
			if verr, ok := err.(*ValidationError); ok {
				verr.Index = i
			}
			return nil, err
		}
		events = append(events, event)
	}

	var start time.Time
	if raw.StartTime != nil {
		t, err := parseTimestampValue(raw.StartTime)
		if err != nil {
			return nil, &ValidationError{Field: "startTime", Index: -1, Reason: err.Error()}
		}
		start = t
	} else if len(events) > 0 {
		start = events[0].Timestamp
		for _, e := range events[1:] {
			if e.Timestamp.Before(start) {
				start = e.Timestamp
			}
		}
	} else {
		start = n.now().UTC()
	}

	return &RecordingSession{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(raw.Name),
		ProfileType: profile,
		StartTime:   start,
		CreatedAt:   n.now().UTC(),
		Events:      events,
	}, nil
}

// normalizeEvent converts one raw event, rejecting unknown types and bad timestamps
func (n *Normalizer) normalizeEvent(re RawEvent) (ActivityEvent, error) {
	ts, err := parseTimestampValue(re.Timestamp)
	if err != nil {
		return ActivityEvent{}, &ValidationError{Field: "timestamp", Index: -1, Reason: err.Error()}
	}

	event := ActivityEvent{
		Timestamp:   ts,
		Type:        EventType(strings.ToLower(strings.TrimSpace(re.Type))),
		Source:      strings.TrimSpace(re.Source),
		Title:       strings.TrimSpace(re.Title),
		Description: re.Description,
		Content:     normalizeContent(re.Content),
	}
	if err := event.Validate(); err != nil {
		return ActivityEvent{}, err
	}
	return event, nil
}

// normalizeContent drops payloads that carry nothing
func normalizeContent(c *EventContent) *EventContent {
	if c == nil {
		return nil
	}
	if c.Text == "" && c.Code == "" && c.Summary == "" && len(c.Highlights) == 0 {
		return nil
	}
	out := *c
	if c.Highlights != nil {
		out.Highlights = append([]string(nil), c.Highlights...)
	}
	return &out
}

// parseTimestampValue accepts epoch milliseconds (number or numeric string)
// and RFC 3339 strings
func parseTimestampValue(v interface{}) (time.Time, error) {
	switch ts := v.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("missing timestamp")
	case time.Time:
		return ts.UTC(), nil
	case float64:
		if math.IsNaN(ts) || math.IsInf(ts, 0) || ts <= 0 {
			return time.Time{}, fmt.Errorf("invalid epoch timestamp %v", ts)
		}
		return formatMillis(int64(ts)), nil
	case int:
		return parseTimestampValue(int64(ts))
	case int64:
		if ts <= 0 {
			return time.Time{}, fmt.Errorf("invalid epoch timestamp %d", ts)
		}
		return formatMillis(ts), nil
	case uint64:
		return parseTimestampValue(int64(ts))
	case string:
		s := strings.TrimSpace(ts)
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return parseTimestampValue(ms)
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("unrecognized timestamp %q", ts)
		}
		return t.UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

// formatMillis converts a Unix timestamp in milliseconds to UTC time
func formatMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
