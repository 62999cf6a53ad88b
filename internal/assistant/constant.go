package assistant

// Marker phrases the confirmation gate looks for in the previous bot turn.
// The meeting confirmation prompt emitted by the orchestrator must contain
// one of these, or the gate can never fire on the follow-up "yes".
var ConfirmationMarkers = []string{
	"want to have a meeting",
	"want to schedule a meeting",
}

// AffirmationKeywords are accepted as a bare confirmation when they match
// the whole message or its first/last word. Mid-sentence occurrences (and
// words merely containing a keyword, like "yesterday") do not count.
var AffirmationKeywords = []string{
	"yes", "yeah", "sure", "confirm", "ok", "okay", "yep",
}

// FallbackTopic stands in when the confirmation-prompt text yields no
// "about ..." capture.
const FallbackTopic = "the discussed topic"

// Fixed user-facing replies. The chat UI receives only these or LLM text,
// never raw errors.
const (
	MsgNoCredential = "My owner hasn't connected an AI key yet, so I can't chat right now. Please try again later."

	MsgRegistrationRequired = "I'd love to set that up, but I can only create tasks for registered visitors. Please register or sign in first, then ask me again."

	MsgTaskCreationFailed = "Sorry, something went wrong while saving that task. Please try asking again in a moment."

	MsgAnswerFailed = "Sorry, I couldn't generate a response right now. Please try again."

	MsgInvalidCredential = "My owner's AI key seems to be invalid or expired. I can't generate responses until it is fixed."
)
