package user

import (
	"assistant-widget/internal/model"
)

// RegisterInput is the input for registering a new owning user.
type RegisterInput struct {
	Name         string
	Email        string
	MobileNo     string
	Username     string
	Password     string
	GeminiAPIKey string
	Google       model.GoogleLink
}

// RegisterOutput is the result of a successful registration.
type RegisterOutput struct {
	Username string
}

// LoginInput is the input for password login.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Username string
	Plan     model.Plan
}

// LinkGoogleInput finishes the calendar-linking flow with the
// authorization code from Google's consent callback.
type LinkGoogleInput struct {
	Username string
	Code     string
}

// UpdatePromptInput updates one of the owner's free-text prompt fields.
type UpdatePromptInput struct {
	Username string
	Content  string
}

// UpdateDailyTasksInput replaces the owner's daily agenda.
type UpdateDailyTasksInput struct {
	Username string
	Content  string
}

// SubmitContributionInput is a visitor-submitted Q&A pair.
type SubmitContributionInput struct {
	Username string // owning user the contribution targets
	Name     string // contributor display name
	Question string
	Answer   string
}

// ReviewContributionInput moves a contribution through review.
type ReviewContributionInput struct {
	Username       string
	ContributionID string
	Status         model.ContributionStatus
}
