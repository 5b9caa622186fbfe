package conversation

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// SessionStore keeps dialog sessions keyed by chat ID.
type SessionStore interface {
	Get(chatID int64) (*Session, bool)
	Put(chatID int64, s *Session)
	Delete(chatID int64)
}

// NewSessionStore creates an LRU-backed store. Eviction of an idle
// session simply forgets the dialog; the user restarts with /start.
func NewSessionStore(logger *zap.Logger, size int) (SessionStore, error) {
	cache, err := lru.New[int64, *Session](size)
	if err != nil {
		return nil, err
	}

	return &lruSessionStore{
		logger: logger.Named("session_store"),
		cache:  cache,
	}, nil
}

type lruSessionStore struct {
	logger *zap.Logger
	cache  *lru.Cache[int64, *Session]
}

func (s *lruSessionStore) Get(chatID int64) (*Session, bool) {
	return s.cache.Get(chatID)
}

func (s *lruSessionStore) Put(chatID int64, sess *Session) {
	if evicted := s.cache.Add(chatID, sess); evicted {
		s.logger.Debug("Evicted an idle session", zap.Int64("chatID", chatID))
	}
}

func (s *lruSessionStore) Delete(chatID int64) {
	s.cache.Remove(chatID)
}
