package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "github.com/g3lasio/Andy-AI-by-Claude/pkg/errors"
)

func (h *handler) processMessageReq(c *gin.Context) (*processMessageReq, error) {
	ctx := c.Request.Context()

	var req processMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.processMessageReq: bind: %v", err)
		return nil, pkgErrors.NewHTTPError(400, "validation_failed", "invalid request body")
	}

	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, pkgErrors.NewHTTPError(400, "validation_failed", "user_id and message are required")
	}

	for _, att := range req.Attachments {
		if !att.validKind() {
			return nil, pkgErrors.NewHTTPError(400, "validation_failed", "unsupported attachment kind: "+att.Kind)
		}
	}

	return &req, nil
}

func (h *handler) processCreateSessionReq(c *gin.Context) (*createSessionReq, error) {
	ctx := c.Request.Context()

	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.processCreateSessionReq: bind: %v", err)
		return nil, pkgErrors.NewHTTPError(400, "validation_failed", "invalid request body")
	}

	if strings.TrimSpace(req.UserID) == "" {
		return nil, pkgErrors.NewHTTPError(400, "validation_failed", "user_id is required")
	}
	if !req.validType() {
		return nil, pkgErrors.NewHTTPError(400, "validation_failed", "unsupported session type: "+req.Type)
	}

	return &req, nil
}
