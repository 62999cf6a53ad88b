package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"assistant-widget/internal/model"
	"assistant-widget/internal/user"
	pkgErrors "assistant-widget/pkg/errors"
	"assistant-widget/pkg/response"
)

// Register godoc
// @Summary     Register a new owning user
// @Description Creates the owner profile document keyed by username.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Registration data"
// @Success     200 {object} registerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - username taken"
// @Router      /api/v1/users/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, registerResp{Username: output.Username})
}

// Login godoc
// @Summary     Password login
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/users/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, loginResp{Username: output.Username, Plan: string(output.Plan)})
}

// VerifyPassword godoc
// @Summary     Verify a password without logging in
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/users/verify-password [POST]
func (h *handler) VerifyPassword(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.VerifyPassword(ctx, req.toInput()); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// VerifyUser godoc
// @Summary     Check whether a username is registered
// @Tags        User
// @Produce     json
// @Param       username path string true "Owner username"
// @Success     200 {object} verifyUserResp
// @Router      /api/v1/users/{username}/verify [GET]
func (h *handler) VerifyUser(c *gin.Context) {
	ctx := c.Request.Context()

	username, err := usernameParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	exists, err := h.uc.Exists(ctx, username)
	if err != nil {
		h.l.Errorf(ctx, "uc.Exists: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, verifyUserResp{Exists: exists})
}

// Count godoc
// @Summary     Total registered users
// @Tags        User
// @Produce     json
// @Success     200 {object} countResp
// @Router      /api/v1/users/count [GET]
func (h *handler) Count(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.uc.Count(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Count: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, countResp{Count: count})
}

// GoogleAuthURL godoc
// @Summary     Start the Google Calendar linking flow
// @Description Returns the consent-screen URL the owner opens to grant
// @Description calendar access. The flow finishes on the callback route.
// @Tags        User
// @Produce     json
// @Param       username path string true "Owner username"
// @Success     200 {object} googleAuthURLResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "OAuth client not configured"
// @Router      /api/v1/users/{username}/google/auth-url [GET]
func (h *handler) GoogleAuthURL(c *gin.Context) {
	ctx := c.Request.Context()

	username, err := usernameParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	url, err := h.uc.GoogleAuthURL(ctx, username)
	if err != nil {
		h.l.Errorf(ctx, "uc.GoogleAuthURL: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, googleAuthURLResp{URL: url})
}

// GoogleCallback godoc
// @Summary     Google OAuth consent callback
// @Description Exchanges the authorization code and stores the owner's
// @Description calendar tokens. The state parameter carries the username
// @Description the flow was started for.
// @Tags        User
// @Produce     json
// @Param       code query string true "Authorization code"
// @Param       state query string true "Owner username"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad code"
// @Router      /api/v1/users/google/callback [GET]
func (h *handler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	username := c.Query("state")
	if code == "" || username == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "code and state are required"), nil)
		return
	}

	if err := h.uc.LinkGoogle(ctx, user.LinkGoogleInput{Username: username, Code: code}); err != nil {
		h.l.Errorf(ctx, "uc.LinkGoogle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"linked": true})
}

// GetPrompt godoc
// @Summary     Get the owner's assistant grounding prompt
// @Tags        User
// @Produce     json
// @Param       username path string true "Owner username"
// @Success     200 {object} contentResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/prompt [GET]
func (h *handler) GetPrompt(c *gin.Context) {
	h.getContent(c, h.uc.GetPrompt)
}

// UpdatePrompt godoc
// @Summary     Replace the owner's assistant grounding prompt
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       username path string true "Owner username"
// @Param       body body updateContentReq true "New content"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/prompt [PUT]
func (h *handler) UpdatePrompt(c *gin.Context) {
	h.updateContent(c, func(ctx *gin.Context, ip user.UpdatePromptInput) error {
		return h.uc.UpdatePrompt(ctx.Request.Context(), ip)
	})
}

// GetUserPrompt godoc
// @Summary     Get the owner's personal style prompt
// @Tags        User
// @Produce     json
// @Param       username path string true "Owner username"
// @Success     200 {object} contentResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/user-prompt [GET]
func (h *handler) GetUserPrompt(c *gin.Context) {
	h.getContent(c, h.uc.GetUserPrompt)
}

// UpdateUserPrompt godoc
// @Summary     Replace the owner's personal style prompt
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       username path string true "Owner username"
// @Param       body body updateContentReq true "New content"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/user-prompt [PUT]
func (h *handler) UpdateUserPrompt(c *gin.Context) {
	h.updateContent(c, func(ctx *gin.Context, ip user.UpdatePromptInput) error {
		return h.uc.UpdateUserPrompt(ctx.Request.Context(), ip)
	})
}

// GetDailyTasks godoc
// @Summary     Get the owner's daily agenda
// @Tags        User
// @Produce     json
// @Param       username path string true "Owner username"
// @Success     200 {object} dailyTasksResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/daily-tasks [GET]
func (h *handler) GetDailyTasks(c *gin.Context) {
	ctx := c.Request.Context()

	username, err := usernameParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	dt, err := h.uc.GetDailyTasks(ctx, username)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDailyTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, dailyTasksResp{Content: dt.Content, LastUpdated: dt.LastUpdated})
}

// UpdateDailyTasks godoc
// @Summary     Replace the owner's daily agenda
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       username path string true "Owner username"
// @Param       body body updateContentReq true "New agenda content"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/daily-tasks [PUT]
func (h *handler) UpdateDailyTasks(c *gin.Context) {
	ctx := c.Request.Context()

	username, err := usernameParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processUpdateContentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpdateDailyTasks(ctx, user.UpdateDailyTasksInput{Username: username, Content: req.Content}); err != nil {
		h.l.Errorf(ctx, "uc.UpdateDailyTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// SubmitContribution godoc
// @Summary     Submit a visitor Q&A contribution
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       username path string true "Owner username"
// @Param       body body submitContributionReq true "Contribution"
// @Success     200 {object} contributionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/contributions [POST]
func (h *handler) SubmitContribution(c *gin.Context) {
	ctx := c.Request.Context()

	username, err := usernameParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processSubmitContributionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	contribution, err := h.uc.SubmitContribution(ctx, user.SubmitContributionInput{
		Username: username,
		Name:     req.Name,
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitContribution: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newContributionResp(contribution))
}

// ListContributions godoc
// @Summary     List an owner's contributions newest first
// @Tags        User
// @Produce     json
// @Param       username path string true "Owner username"
// @Success     200 {object} listContributionsResp
// @Router      /api/v1/users/{username}/contributions [GET]
func (h *handler) ListContributions(c *gin.Context) {
	ctx := c.Request.Context()

	username, err := usernameParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	contributions, err := h.uc.ListContributions(ctx, username)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListContributions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListContributionsResp(contributions))
}

// ReviewContribution godoc
// @Summary     Approve or reject a contribution
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       username path string true "Owner username"
// @Param       id path string true "Contribution ID"
// @Param       body body reviewContributionReq true "New status"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{username}/contributions/{id} [PATCH]
func (h *handler) ReviewContribution(c *gin.Context) {
	ctx := c.Request.Context()

	username, err := usernameParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processReviewContributionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ReviewContribution(ctx, user.ReviewContributionInput{
		Username:       username,
		ContributionID: c.Param("id"),
		Status:         model.ContributionStatus(req.Status),
	}); err != nil {
		h.l.Errorf(ctx, "uc.ReviewContribution: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

func (h *handler) getContent(c *gin.Context, get func(ctx context.Context, username string) (string, error)) {
	ctx := c.Request.Context()

	username, err := usernameParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	content, err := get(ctx, username)
	if err != nil {
		h.l.Errorf(ctx, "uc get content: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, contentResp{Content: content})
}

func (h *handler) updateContent(c *gin.Context, update func(c *gin.Context, ip user.UpdatePromptInput) error) {
	username, err := usernameParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processUpdateContentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := update(c, user.UpdatePromptInput{Username: username, Content: req.Content}); err != nil {
		h.l.Errorf(c.Request.Context(), "uc update content: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
