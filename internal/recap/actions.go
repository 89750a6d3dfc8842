package recap

import "github.com/iksnae/activity-recap/internal"

const (
	maxActionItems    = 5
	cannedActionCount = 2
	busySessionEvents = 10

	// ActionDocumentCode is suggested when code was captured without any docs
	ActionDocumentCode = "Document the code changes made during this session"
	// ActionConsolidate is suggested for long sessions
	ActionConsolidate = "Review and consolidate key findings from this session"
	// ActionStartCapturing is the only action of an empty recap
	ActionStartCapturing = "Start capturing activities to generate your first recap"
)

func synthesizeActionItems(events []internal.ActivityEvent, profile internal.ProfileType) []string {
	items := make([]string, 0, maxActionItems)

	hasCode := false
	for i := range events {
		if events[i].HasCode() {
			hasCode = true
			break
		}
	}
	hasDocs := anySourceContains(events, "doc", "notion")

	if hasCode && !hasDocs && profile == internal.ProfileDeveloper {
		items = append(items, ActionDocumentCode)
	}
	if len(events) > busySessionEvents {
		items = append(items, ActionConsolidate)
	}

	canned := profileFor(profile).actions
	if len(canned) > cannedActionCount {
		canned = canned[:cannedActionCount]
	}
	items = append(items, canned...)

	return capList(items, maxActionItems)
}
