package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "assistant-widget/pkg/errors"
)

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, nil
}

func (h *handler) processUpdateContentReq(c *gin.Context) (updateContentReq, error) {
	var req updateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, nil
}

func (h *handler) processSubmitContributionReq(c *gin.Context) (submitContributionReq, error) {
	var req submitContributionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, nil
}

func (h *handler) processReviewContributionReq(c *gin.Context) (reviewContributionReq, error) {
	var req reviewContributionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, nil
}

// usernameParam pulls the owner username out of the route.
func usernameParam(c *gin.Context) (string, error) {
	username := c.Param("username")
	if username == "" {
		return "", pkgErrors.NewHTTPError(400, "username is required")
	}
	return username, nil
}
