package http

import (
	"github.com/gin-gonic/gin"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/chat"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/conversation"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	ProcessMessage(c *gin.Context)
	History(c *gin.Context)
	CreateSession(c *gin.Context)
	ListSessions(c *gin.Context)
	SessionDetail(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	contexts conversation.Store
	sessions conversation.Service
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, contexts conversation.Store, sessions conversation.Service) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		contexts: contexts,
		sessions: sessions,
	}
}
