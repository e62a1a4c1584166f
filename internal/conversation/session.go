package conversation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/docstore"
	pkgLog "github.com/g3lasio/Andy-AI-by-Claude/pkg/log"
)

type implService struct {
	l         pkgLog.Logger
	docs      docstore.Store
	retention time.Duration

	mu       sync.RWMutex
	sessions map[string]*model.Session
	byUser   map[string][]string
}

// NewService creates the session service. retentionDays <= 0 falls back to
// the default window.
func NewService(l pkgLog.Logger, docs docstore.Store, retentionDays int) *implService {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return &implService{
		l:         l,
		docs:      docs,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		sessions:  make(map[string]*model.Session),
		byUser:    make(map[string][]string),
	}
}

var _ Service = (*implService)(nil)

// CreateSession writes the session document durably before exposing it.
// Session creation is load-bearing: a failed write fails the call, the
// opposite durability policy from lightweight context updates.
func (s *implService) CreateSession(ctx context.Context, userID string, sessionType model.SessionType) (*model.Session, error) {
	if userID == "" {
		return nil, ErrInvalidUpdate
	}
	if sessionType == "" {
		sessionType = model.SessionChat
	}

	now := time.Now()
	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      sessionType,
		Status:    model.SessionActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.docs.Put(ctx, CollectionSessions, session.ID, session); err != nil {
		s.l.Errorf(ctx, "%s: durable write failed for user %s: %v", LogPrefixCreateSession, userID, err)
		return nil, fmt.Errorf("%w: %v", ErrSessionPersist, err)
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.byUser[userID] = append(s.byUser[userID], session.ID)
	s.mu.Unlock()

	return session, nil
}

// GetSession returns nil when the session does not exist, falling back to
// the durable store for sessions created by an earlier process.
func (s *implService) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		copied := *session
		return &copied, nil
	}

	var stored model.Session
	err := s.docs.Get(ctx, CollectionSessions, sessionID, &stored)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.sessions[stored.ID] = &stored
	s.byUser[stored.UserID] = append(s.byUser[stored.UserID], stored.ID)
	s.mu.Unlock()

	copied := stored
	return &copied, nil
}

// ListSessions returns the user's sessions created inside the retention
// window, newest first. Expired sessions stay in storage but are excluded.
func (s *implService) ListSessions(ctx context.Context, userID string) ([]*model.Session, error) {
	cutoff := time.Now().Add(-s.retention)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Session
	for _, id := range s.byUser[userID] {
		session, ok := s.sessions[id]
		if !ok || session.CreatedAt.Before(cutoff) {
			continue
		}
		copied := *session
		result = append(result, &copied)
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}
