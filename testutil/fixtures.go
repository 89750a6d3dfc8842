package testutil

import (
	"testing"
)

// RecordingJSON is a developer recorder export with epoch millisecond
// timestamps and one exact duplicate event
const RecordingJSON = `{
  "name": "Storage refactor",
  "profileType": "developer",
  "events": [
    {"timestamp": 1773479100000, "type": "tab", "source": "GitHub", "title": "Review pull request",
     "content": {"text": "Refactor the storage layer to use transactions."}},
    {"timestamp": 1773479100000, "type": "tab", "source": "GitHub", "title": "Review pull request",
     "content": {"text": "Refactor the storage layer to use transactions."}},
    {"timestamp": 1773479700000, "type": "action", "source": "VS Code", "title": "Commit changes",
     "content": {"code": "git commit -m \"storage: wrap saves in transactions\""}},
    {"timestamp": 1773480300000, "type": "note", "source": "Notes", "title": "Remember to update the changelog",
     "content": {"summary": "Follow up on the release notes", "highlights": ["transactions wrap every save"]}}
  ]
}`

// RecordingYAML is a bare event list with RFC 3339 timestamps and no profile
const RecordingYAML = `- timestamp: "2026-03-14T10:00:00Z"
  type: tab
  source: Wikipedia
  title: Photosynthesis
  content:
    text: Photosynthesis converts light energy into chemical energy.
- timestamp: "2026-03-14T10:20:00Z"
  type: note
  source: Notes
  title: Chlorophyll absorbs red and blue light
`

// InvalidRecordingJSON has an event with an unknown type at index 1
const InvalidRecordingJSON = `[
  {"timestamp": 1773479100000, "type": "tab", "source": "GitHub", "title": "Issues"},
  {"timestamp": 1773479200000, "type": "scroll", "source": "GitHub", "title": "Issues"}
]`

// WriteRecordingFixture writes a recorder export into a temp dir and returns its path
func WriteRecordingFixture(t *testing.T, name, content string) string {
	t.Helper()
	return WriteFile(t, CreateTempDir(t), name, []byte(content))
}
