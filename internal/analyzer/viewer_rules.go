package analyzer

import "github.com/streamlens/content-analysis/internal/domain"

// engagementWords are tokens that signal a user is seeking interaction.
// Exact token match after tokenization, same as the sentiment sets.
var engagementWords = wordSet(
	"how", "why", "what", "when", "where", "explain", "tell", "show",
	"help", "please", "thanks", "thank", "appreciate", "interested",
)

// viewerProfile carries the fixed label data attached to a viewer bucket.
type viewerProfile struct {
	viewerType      string
	engagementLevel string
	characteristics []string
}

// Profiles for each bucket of the decision tree. The tree itself lives in
// classify; these tables only name the labels.
var (
	powerUserProfile = viewerProfile{
		viewerType:      domain.ViewerPowerUser,
		engagementLevel: "high",
		characteristics: []string{"frequent_interactor", "detailed_messages", "highly_engaged"},
	}
	curiousLearnerProfile = viewerProfile{
		viewerType:      domain.ViewerCuriousLearner,
		engagementLevel: "medium-high",
		characteristics: []string{"asks_questions", "seeks_information", "engaged"},
	}
	activeParticipantProfile = viewerProfile{
		viewerType:      domain.ViewerActiveParticipant,
		engagementLevel: "medium",
		characteristics: []string{"provides_input", "moderate_engagement"},
	}
	casualViewerProfile = viewerProfile{
		viewerType:      domain.ViewerCasualViewer,
		engagementLevel: "low-medium",
		characteristics: []string{"occasional_interaction", "brief_messages"},
	}
	passiveObserverProfile = viewerProfile{
		viewerType:      domain.ViewerPassiveObserver,
		engagementLevel: "low",
		characteristics: []string{"minimal_interaction", "lurker"},
	}
)
