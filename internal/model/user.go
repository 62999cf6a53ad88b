package model

import "time"

// Plan is the owning user's subscription tier.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// ContributionStatus is the review state of a visitor-submitted Q&A pair.
type ContributionStatus string

const (
	ContributionPending  ContributionStatus = "pending"
	ContributionApproved ContributionStatus = "approved"
	ContributionRejected ContributionStatus = "rejected"
)

// Contribution is a visitor-submitted question/answer pair. Approved
// contributions feed the assistant's grounding context.
type Contribution struct {
	ID        string             `json:"id" firestore:"-"`
	Name      string             `json:"name" firestore:"name"`
	Question  string             `json:"question" firestore:"question"`
	Answer    string             `json:"answer" firestore:"answer"`
	Status    ContributionStatus `json:"status" firestore:"status"`
	CreatedAt time.Time          `json:"createdAt" firestore:"createdAt"`
}

// DailyTasks is the owner's free-text daily agenda, injected into the
// assistant's grounding prompt.
type DailyTasks struct {
	Content     string    `json:"content" firestore:"content"`
	LastUpdated time.Time `json:"lastUpdated" firestore:"lastUpdated"`
}

// GoogleLink holds the owner's Google OAuth linkage used by the meeting
// scheduler. The refresh token is the durable credential; the access token
// is re-minted on demand.
type GoogleLink struct {
	ID           string    `json:"id,omitempty" firestore:"id,omitempty"`
	AccessToken  string    `json:"accessToken,omitempty" firestore:"accessToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty" firestore:"refreshToken,omitempty"`
	TokenExpiry  time.Time `json:"tokenExpiryDate,omitempty" firestore:"tokenExpiryDate,omitempty"`
}

// User is the owning user: the profile whose assistant is being chatted
// with. Tasks and contributions live in per-user sub-collections; this
// struct carries only the document fields.
type User struct {
	Name         string     `json:"name" firestore:"name"`
	Email        string     `json:"email" firestore:"email"`
	MobileNo     string     `json:"mobileNo" firestore:"mobileNo"`
	Username     string     `json:"username" firestore:"username"`
	PasswordHash string     `json:"-" firestore:"passwordHash"`
	GeminiAPIKey string     `json:"geminiApiKey,omitempty" firestore:"geminiApiKey"`
	Plan         Plan       `json:"plan" firestore:"plan"`
	Prompt       string     `json:"prompt" firestore:"prompt"`
	UserPrompt   string     `json:"userPrompt" firestore:"userPrompt"`
	DailyTasks   DailyTasks `json:"dailyTasks" firestore:"dailyTasks"`
	Google       GoogleLink `json:"google,omitempty" firestore:"google,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" firestore:"createdAt"`
}

// HasGeminiKey reports whether the owner can run LLM calls at all.
func (u User) HasGeminiKey() bool {
	return u.GeminiAPIKey != ""
}

// CalendarLinked reports whether the meeting scheduler can act for this
// user as organizer.
func (u User) CalendarLinked() bool {
	return u.Google.RefreshToken != ""
}

// Snapshot produces the denormalized asker copy embedded in tasks.
func (u User) Snapshot() *UserSnapshot {
	return &UserSnapshot{
		Name:     u.Name,
		Email:    u.Email,
		MobileNo: u.MobileNo,
		Username: u.Username,
		Prompt:   u.Prompt,
	}
}
