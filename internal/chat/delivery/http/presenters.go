package http

import (
	"github.com/g3lasio/Andy-AI-by-Claude/internal/chat"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/response"
)

type attachmentReq struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Data []byte `json:"data"` // base64 in JSON
}

func (a attachmentReq) validKind() bool {
	switch model.AttachmentKind(a.Kind) {
	case model.AttachmentPDF, model.AttachmentImage, model.AttachmentGeneric:
		return true
	default:
		return false
	}
}

type processMessageReq struct {
	UserID      string          `json:"user_id"`
	Message     string          `json:"message"`
	Attachments []attachmentReq `json:"attachments,omitempty"`
}

func (r processMessageReq) toInput() chat.ProcessInput {
	attachments := make([]model.Attachment, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		attachments = append(attachments, model.Attachment{
			Kind: model.AttachmentKind(a.Kind),
			Name: a.Name,
			Data: a.Data,
		})
	}
	return chat.ProcessInput{
		UserID:      r.UserID,
		Message:     r.Message,
		Attachments: attachments,
	}
}

type actionResp struct {
	Type    string `json:"type"`
	Payload string `json:"payload"`
}

type processMessageResp struct {
	Content      string       `json:"content"`
	Source       string       `json:"source"`
	Actions      []actionResp `json:"actions,omitempty"`
	ProcessingMS int64        `json:"processing_ms"`
}

func (h *handler) newProcessResp(resp *model.ChatResponse) processMessageResp {
	actions := make([]actionResp, 0, len(resp.Actions))
	for _, a := range resp.Actions {
		actions = append(actions, actionResp{Type: string(a.Type), Payload: a.Payload})
	}
	return processMessageResp{
		Content:      resp.Content,
		Source:       string(resp.Source),
		Actions:      actions,
		ProcessingMS: resp.ProcessingMS,
	}
}

type messageResp struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Timestamp int64          `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type historyResp struct {
	UserID            string        `json:"user_id"`
	Messages          []messageResp `json:"messages"`
	TotalInteractions int           `json:"total_interactions"`
}

func (h *handler) newHistoryResp(convCtx *model.Context) historyResp {
	messages := make([]messageResp, 0, len(convCtx.ConversationHistory))
	for _, m := range convCtx.ConversationHistory {
		messages = append(messages, messageResp{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
			Metadata:  m.Metadata,
		})
	}
	return historyResp{
		UserID:            convCtx.UserID,
		Messages:          messages,
		TotalInteractions: convCtx.Metrics.TotalInteractions,
	}
}

type createSessionReq struct {
	UserID string `json:"user_id"`
	Type   string `json:"type"`
}

func (r createSessionReq) sessionType() model.SessionType {
	return model.SessionType(r.Type)
}

func (r createSessionReq) validType() bool {
	switch model.SessionType(r.Type) {
	case model.SessionChat, model.SessionTaxFiling, model.SessionDocumentReview:
		return true
	case "":
		// Defaults to chat downstream.
		return true
	default:
		return false
	}
}

type sessionResp struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (h *handler) newSessionResp(s *model.Session) sessionResp {
	return sessionResp{
		ID:        s.ID,
		UserID:    s.UserID,
		Type:      string(s.Type),
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt.Format(response.DateTimeFormat),
		UpdatedAt: s.UpdatedAt.Format(response.DateTimeFormat),
	}
}

type listSessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
}

func (h *handler) newListSessionsResp(sessions []*model.Session) listSessionsResp {
	out := make([]sessionResp, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, h.newSessionResp(s))
	}
	return listSessionsResp{Sessions: out}
}
