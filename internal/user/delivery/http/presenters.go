package http

import (
	"time"

	"assistant-widget/internal/model"
	"assistant-widget/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Name         string `json:"name"         binding:"required,min=1,max=255"`
	Email        string `json:"email"        binding:"required,email"`
	MobileNo     string `json:"mobileNo"     binding:"max=20"`
	Username     string `json:"username"     binding:"required,min=3,max=64"`
	Password     string `json:"password"     binding:"required,min=6"`
	GeminiAPIKey string `json:"geminiApiKey"`
	RefreshToken string `json:"refreshToken"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:         r.Name,
		Email:        r.Email,
		MobileNo:     r.MobileNo,
		Username:     r.Username,
		Password:     r.Password,
		GeminiAPIKey: r.GeminiAPIKey,
		Google:       model.GoogleLink{RefreshToken: r.RefreshToken},
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Username: r.Username, Password: r.Password}
}

type updateContentReq struct {
	Content string `json:"content"`
}

type submitContributionReq struct {
	Name     string `json:"name"     binding:"required,min=1,max=255"`
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"   binding:"required"`
}

type reviewContributionReq struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// --- Response DTOs ---

type registerResp struct {
	Username string `json:"username"`
}

type loginResp struct {
	Username string `json:"username"`
	Plan     string `json:"plan"`
}

type verifyUserResp struct {
	Exists bool `json:"exists"`
}

type countResp struct {
	Count int64 `json:"count"`
}

type googleAuthURLResp struct {
	URL string `json:"url"`
}

type contentResp struct {
	Content string `json:"content"`
}

type dailyTasksResp struct {
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type contributionResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func newContributionResp(c model.Contribution) contributionResp {
	return contributionResp{
		ID:        c.ID,
		Name:      c.Name,
		Question:  c.Question,
		Answer:    c.Answer,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}

type listContributionsResp struct {
	Contributions []contributionResp `json:"contributions"`
}

func newListContributionsResp(cs []model.Contribution) listContributionsResp {
	out := make([]contributionResp, len(cs))
	for i, c := range cs {
		out[i] = newContributionResp(c)
	}
	return listContributionsResp{Contributions: out}
}
