package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/g3lasio/Andy-AI-by-Claude/pkg/response"
)

// ProcessMessage runs one user message through the orchestration pipeline
// and returns the assistant's reply with any parsed actions.
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ProcessMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// History returns the user's rolling conversation window.
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	convCtx := h.contexts.GetContext(ctx, userID)
	response.OK(c, h.newHistoryResp(convCtx))
}

// CreateSession starts an explicit session for a workflow.
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.sessions.CreateSession(ctx, req.UserID, req.sessionType())
	if err != nil {
		h.l.Errorf(ctx, "sessions.CreateSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(session))
}

// ListSessions returns the user's sessions inside the retention window.
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	sessions, err := h.sessions.ListSessions(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "sessions.ListSessions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListSessionsResp(sessions))
}

// SessionDetail returns a single session by ID.
func (h *handler) SessionDetail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	session, err := h.sessions.GetSession(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "sessions.GetSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	if session == nil {
		response.Error(c, errSessionNotFound)
		return
	}

	response.OK(c, h.newSessionResp(session))
}
