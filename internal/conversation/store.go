package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/docstore"
	pkgLog "github.com/g3lasio/Andy-AI-by-Claude/pkg/log"
)

type implStore struct {
	l            pkgLog.Logger
	docs         docstore.Store
	historyLimit int

	mu       sync.RWMutex
	contexts map[string]*model.Context
}

// NewStore creates the in-memory context store backed by docs for durable
// mirroring. historyLimit <= 0 falls back to the default cap.
func NewStore(l pkgLog.Logger, docs docstore.Store, historyLimit int) *implStore {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &implStore{
		l:            l,
		docs:         docs,
		historyLimit: historyLimit,
		contexts:     make(map[string]*model.Context),
	}
}

var _ Store = (*implStore)(nil)

// GetContext returns a snapshot of the user's context so callers cannot
// mutate the store's copy. A user without history gets an empty default.
func (s *implStore) GetContext(ctx context.Context, userID string) *model.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current, ok := s.contexts[userID]
	if !ok {
		return &model.Context{UserID: userID}
	}

	snapshot := *current
	snapshot.ConversationHistory = make([]model.Message, len(current.ConversationHistory))
	copy(snapshot.ConversationHistory, current.ConversationHistory)
	return &snapshot
}

// UpdateContext appends one user/assistant message pair, truncates the
// history window, updates metrics, and mirrors the context asynchronously.
// Concurrent updates for the same user interleave last-writer-wins at the
// business level; the map itself is mutex-guarded.
func (s *implStore) UpdateContext(ctx context.Context, userID, message string, resp *model.ChatResponse) error {
	if userID == "" || message == "" {
		return ErrInvalidUpdate
	}

	now := time.Now().UnixMilli()

	userMsg := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleUser,
		Content:   message,
		Timestamp: now,
	}
	assistantMsg := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleAssistant,
		Timestamp: now,
	}
	if resp != nil {
		assistantMsg.Content = resp.Content
		assistantMsg.Metadata = map[string]any{
			MetaSource:       string(resp.Source),
			MetaConfidence:   resp.Confidence,
			MetaProcessingMS: resp.ProcessingMS,
		}
	}

	s.mu.Lock()
	current, ok := s.contexts[userID]
	if !ok {
		current = &model.Context{UserID: userID}
		s.contexts[userID] = current
	}

	current.ConversationHistory = append(current.ConversationHistory, userMsg, assistantMsg)
	if overflow := len(current.ConversationHistory) - s.historyLimit; overflow > 0 {
		current.ConversationHistory = current.ConversationHistory[overflow:]
	}

	current.LastMessage = message
	current.LastResponse = resp
	current.Timestamp = now
	current.Metrics.TotalInteractions++
	current.Metrics.LastUpdateTime = now

	snapshot := *current
	snapshot.ConversationHistory = make([]model.Message, len(current.ConversationHistory))
	copy(snapshot.ConversationHistory, current.ConversationHistory)
	s.mu.Unlock()

	go s.persist(userID, &snapshot)

	return nil
}

// persist mirrors a context snapshot to the durable store. Availability wins
// over durability here: failures are logged and swallowed.
func (s *implStore) persist(userID string, snapshot *model.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), PersistTimeout)
	defer cancel()

	if err := s.docs.Put(ctx, CollectionContexts, userID, snapshot); err != nil {
		s.l.Warnf(ctx, "%s: durable write failed for user %s: %v", LogPrefixPersist, userID, err)
	}
}
