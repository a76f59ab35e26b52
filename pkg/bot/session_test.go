package bot

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"escrowbot/pkg/models"
)

func TestSessionStoreDefaults(t *testing.T) {
	s := NewSessionStore(time.Hour)

	assert.Equal(t, StateIdle, s.State(1))
	assert.Nil(t, s.Draft(1))
	assert.Nil(t, s.LastMessage(1))
}

func TestSessionStoreStateAndDraft(t *testing.T) {
	s := NewSessionStore(time.Hour)

	s.SetState(1, StateWaitingAmount)
	s.SetDraft(1, &DealDraft{Method: models.MethodWallet, Currency: "USDT"})

	assert.Equal(t, StateWaitingAmount, s.State(1))
	assert.Equal(t, models.MethodWallet, s.Draft(1).Method)

	// draft survives a state change within the same flow
	s.Draft(1).Amount = decimal.RequireFromString("100.5")
	s.SetState(1, StateWaitingDescription)
	assert.Equal(t, "100.5", s.Draft(1).Amount.String())

	// other users are unaffected
	assert.Equal(t, StateIdle, s.State(2))
	assert.Nil(t, s.Draft(2))
}

func TestSessionStoreClear(t *testing.T) {
	s := NewSessionStore(time.Hour)

	s.SetState(1, StateWaitingWallet)
	s.SetDraft(1, &DealDraft{Method: models.MethodCard})
	s.Clear(1)

	assert.Equal(t, StateIdle, s.State(1))
	assert.Nil(t, s.Draft(1))
}

func TestSessionStoreEviction(t *testing.T) {
	s := NewSessionStore(time.Minute)

	s.SetState(1, StateWaitingCard)
	s.SetState(2, StateWaitingAmount)

	assert.Equal(t, 0, s.evictIdle(time.Now()))
	assert.Equal(t, StateWaitingCard, s.State(1))

	evicted := s.evictIdle(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 2, evicted)
	assert.Equal(t, StateIdle, s.State(1))
	assert.Equal(t, StateIdle, s.State(2))
}
