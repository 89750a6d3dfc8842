package export

import "github.com/iksnae/activity-recap/internal"

func sampleRecap() *internal.GeneratedContent {
	return &internal.GeneratedContent{
		Title:   "Development Session: GitHub & VS Code - Mar 14, 2026",
		Summary: "This development workflow captured 3 events across 2 sources.",
		Insights: []string{
			"Key themes: storage, transactions",
			"Active code collaboration on GitHub detected",
		},
		KeyTakeaways:  []string{"Refactor the storage layer to use transactions."},
		ActionItems:   []string{"Document the code changes made during this session"},
		RelatedTopics: []string{"Testing strategies and test automation"},
		Timeline: []internal.TimelineEntry{
			{Time: "9:00:00 AM", Event: "Review pull request", Importance: internal.ImportanceHigh},
			{Time: "9:05:00 AM", Event: "Commit a|b changes", Importance: internal.ImportanceMedium},
		},
		Tags:       []string{"storage", "transactions"},
		Confidence: 57,
	}
}

func emptyRecap() *internal.GeneratedContent {
	return &internal.GeneratedContent{
		Title:         "No Activity Captured",
		Summary:       "No activities were captured during this session.",
		Insights:      []string{},
		KeyTakeaways:  []string{},
		ActionItems:   []string{"Start capturing activities to generate your first recap"},
		RelatedTopics: []string{},
		Timeline:      []internal.TimelineEntry{},
		Tags:          []string{},
	}
}
