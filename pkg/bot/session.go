package bot

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	tele "gopkg.in/telebot.v3"

	"escrowbot/pkg/models"
)

const (
	StateIdle               = "idle"
	StateWaitingWallet      = "waiting_wallet"
	StateWaitingCard        = "waiting_card"
	StateWaitingAmount      = "waiting_deal_amount"
	StateWaitingDescription = "waiting_deal_description"
)

// DealDraft accumulates the create-deal form across its steps before a
// Deal row is persisted.
type DealDraft struct {
	Method   models.PaymentMethod
	Currency string
	Amount   decimal.Decimal
}

type session struct {
	State       string
	Draft       *DealDraft
	LastMessage *tele.Message
	lastSeen    time.Time
}

// SessionStore keeps per-user conversation state. Entries are evicted after
// sitting idle for the configured TTL, so abandoned flows do not accumulate.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*session),
		ttl:      ttl,
	}
}

func (s *SessionStore) get(userID int64) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{State: StateIdle}
		s.sessions[userID] = sess
	}
	sess.lastSeen = time.Now()
	return sess
}

func (s *SessionStore) State(userID int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess.State
	}
	return StateIdle
}

func (s *SessionStore) SetState(userID int64, state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).State = state
}

func (s *SessionStore) Draft(userID int64) *DealDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess.Draft
	}
	return nil
}

func (s *SessionStore) SetDraft(userID int64, draft *DealDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).Draft = draft
}

func (s *SessionStore) LastMessage(userID int64) *tele.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess.LastMessage
	}
	return nil
}

func (s *SessionStore) SetLastMessage(userID int64, msg *tele.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).LastMessage = msg
}

// Clear drops the whole session: waiting state, draft and message handle.
func (s *SessionStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

func (s *SessionStore) evictIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// RunJanitor evicts idle sessions until stop is closed.
func (s *SessionStore) RunJanitor(stop <-chan struct{}) {
	interval := s.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			s.evictIdle(now)
		}
	}
}
