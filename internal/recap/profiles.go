package recap

import "github.com/iksnae/activity-recap/internal"

// profileCopy holds the fixed wording used for one profile
type profileCopy struct {
	label     string   // recap title prefix
	noun      string   // how the summary refers to the session
	takeaways []string // appended after extracted takeaways
	actions   []string // only the first two are used
}

var profiles = map[internal.ProfileType]profileCopy{
	internal.ProfileStudent: {
		label: "Study Session",
		noun:  "learning session",
		takeaways: []string{
			"Review the key concepts covered in this session",
			"Practice applying what you learned with a short exercise",
			"Connect the new material to topics you already know",
		},
		actions: []string{
			"Create flashcards for the main concepts",
			"Schedule a review session within the next two days",
			"Ask about anything that is still unclear",
		},
	},
	internal.ProfileDeveloper: {
		label: "Development Session",
		noun:  "development workflow",
		takeaways: []string{
			"Keep commits small and focused on a single change",
			"Write tests alongside new functionality",
		},
		actions: []string{
			"Run the full test suite before merging",
			"Open a pull request for review",
			"Update the changelog",
		},
	},
	internal.ProfileSupport: {
		label: "Support Session",
		noun:  "support case investigation",
		takeaways: []string{
			"Document the resolution steps for future reference",
			"Follow up with the customer to confirm the fix",
		},
		actions: []string{
			"Update the support ticket with the findings",
			"Add the solution to the knowledge base",
			"Escalate unresolved issues to engineering",
		},
	},
	internal.ProfileResearcher: {
		label: "Research Session",
		noun:  "research exploration",
		takeaways: []string{
			"Cross-reference findings across multiple sources",
			"Record citations while the context is fresh",
			"Summarize open questions for the next session",
		},
		actions: []string{
			"Organize sources into a reference manager",
			"Draft a summary of the key findings",
			"Identify gaps that need further investigation",
		},
	},
	internal.ProfileCustom: {
		label: "Work Session",
		noun:  "work session",
		takeaways: []string{
			"Capture the most important outcomes of this session",
			"Share relevant findings with your team",
		},
		actions: []string{
			"Review the captured activities",
			"Plan the next steps",
			"Share the recap with stakeholders",
		},
	},
}

func profileFor(p internal.ProfileType) profileCopy {
	if c, ok := profiles[p]; ok {
		return c
	}
	return profiles[internal.ProfileCustom]
}
