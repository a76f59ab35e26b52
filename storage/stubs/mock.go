package stubs

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"escrowbot/pkg/models"
	"escrowbot/storage"
)

// MockStorage is an in-memory implementation of storage.IStorage for tests.
type MockStorage struct {
	mu        sync.RWMutex
	users     map[int64]*models.User
	referrals []models.Referral
	deals     map[string]*models.Deal
	reminders map[int64]*models.Reminder
	nextID    int64

	// CreateDealErrs is drained one error per Deal().Create call before the
	// insert proceeds, to simulate token collisions.
	CreateDealErrs []error
}

func NewMockStorage() *MockStorage {
	return &MockStorage{
		users:     make(map[int64]*models.User),
		referrals: make([]models.Referral, 0),
		deals:     make(map[string]*models.Deal),
		reminders: make(map[int64]*models.Reminder),
	}
}

func (m *MockStorage) User() storage.IUserStorage         { return &mockUsers{m} }
func (m *MockStorage) Referral() storage.IReferralStorage { return &mockReferrals{m} }
func (m *MockStorage) Deal() storage.IDealStorage         { return &mockDeals{m} }
func (m *MockStorage) Reminder() storage.IReminderStorage { return &mockReminders{m} }
func (m *MockStorage) Close()                             {}
func (m *MockStorage) GetPool() *pgxpool.Pool             { return nil }

type mockUsers struct{ m *MockStorage }

func (r *mockUsers) GetOrCreate(ctx context.Context, teleID int64) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if u, ok := r.m.users[teleID]; ok {
		return cloneUser(u), nil
	}
	u := &models.User{
		TelegramID: teleID,
		Language:   "ru",
		Earnings:   "0",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	r.m.users[teleID] = u
	return cloneUser(u), nil
}

func (r *mockUsers) Get(ctx context.Context, teleID int64) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	u, ok := r.m.users[teleID]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *mockUsers) UpdateLanguage(ctx context.Context, teleID int64, lang string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if u, ok := r.m.users[teleID]; ok {
		u.Language = lang
	}
	return nil
}

func (r *mockUsers) UpdateWallet(ctx context.Context, teleID int64, address string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if u, ok := r.m.users[teleID]; ok {
		u.WalletAddress = &address
	}
	return nil
}

func (r *mockUsers) UpdateCard(ctx context.Context, teleID int64, details string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if u, ok := r.m.users[teleID]; ok {
		u.CardDetails = &details
	}
	return nil
}

func (r *mockUsers) SetReferrer(ctx context.Context, teleID, referrerID int64) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[teleID]
	if !ok || u.ReferrerID != nil {
		return false, nil
	}
	u.ReferrerID = &referrerID
	return true, nil
}

func (r *mockUsers) SetSuccessfulDeals(ctx context.Context, teleID int64, count int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if u, ok := r.m.users[teleID]; ok {
		u.SuccessfulDeals = count
	}
	return nil
}

type mockReferrals struct{ m *MockStorage }

func (r *mockReferrals) Add(ctx context.Context, referrerID, referredID int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextID++
	r.m.referrals = append(r.m.referrals, models.Referral{
		ID:         r.m.nextID,
		ReferrerID: referrerID,
		ReferredID: referredID,
		CreatedAt:  time.Now(),
	})
	return nil
}

func (r *mockReferrals) CountByReferrer(ctx context.Context, referrerID int64) (int, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	count := 0
	for _, ref := range r.m.referrals {
		if ref.ReferrerID == referrerID {
			count++
		}
	}
	return count, nil
}

type mockDeals struct{ m *MockStorage }

func (r *mockDeals) Create(ctx context.Context, deal *models.Deal) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if len(r.m.CreateDealErrs) > 0 {
		err := r.m.CreateDealErrs[0]
		r.m.CreateDealErrs = r.m.CreateDealErrs[1:]
		if err != nil {
			return err
		}
	}
	if _, ok := r.m.deals[deal.DealID]; ok {
		return storage.ErrTokenCollision
	}
	for _, d := range r.m.deals {
		if d.Memo == deal.Memo {
			return storage.ErrTokenCollision
		}
	}
	deal.CreatedAt = time.Now()
	r.m.deals[deal.DealID] = cloneDeal(deal)
	return nil
}

func (r *mockDeals) GetByID(ctx context.Context, dealID string) (*models.Deal, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	d, ok := r.m.deals[dealID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneDeal(d), nil
}

func (r *mockDeals) AdvanceStatus(ctx context.Context, dealID string, from, to models.DealStatus) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	d, ok := r.m.deals[dealID]
	if !ok || d.Status != from {
		return storage.ErrStatusConflict
	}
	d.Status = to
	return nil
}

func (r *mockDeals) ConfirmPaymentByMemo(ctx context.Context, memo string) (*models.Deal, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, d := range r.m.deals {
		if d.Memo == memo && d.Status == models.StatusActive {
			d.Status = models.StatusPaymentConfirmed
			return cloneDeal(d), nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *mockDeals) SetBuyer(ctx context.Context, dealID string, buyerID int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if d, ok := r.m.deals[dealID]; ok {
		d.BuyerID = &buyerID
	}
	return nil
}

func (r *mockDeals) ClearBuyer(ctx context.Context, dealID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if d, ok := r.m.deals[dealID]; ok {
		d.BuyerID = nil
	}
	return nil
}

func (r *mockDeals) DeleteActive(ctx context.Context, dealID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	d, ok := r.m.deals[dealID]
	if !ok || d.Status != models.StatusActive {
		return storage.ErrStatusConflict
	}
	delete(r.m.deals, dealID)
	return nil
}

type mockReminders struct{ m *MockStorage }

func (r *mockReminders) Create(ctx context.Context, dealID string, buyerID int64, dueAt time.Time) (*models.Reminder, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextID++
	rem := &models.Reminder{
		ID:      r.m.nextID,
		DealID:  dealID,
		BuyerID: buyerID,
		DueAt:   dueAt,
	}
	r.m.reminders[rem.ID] = rem
	out := *rem
	return &out, nil
}

func (r *mockReminders) GetPending(ctx context.Context) ([]*models.Reminder, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var pending []*models.Reminder
	for _, rem := range r.m.reminders {
		if !rem.Sent {
			out := *rem
			pending = append(pending, &out)
		}
	}
	return pending, nil
}

func (r *mockReminders) MarkSent(ctx context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if rem, ok := r.m.reminders[id]; ok {
		rem.Sent = true
	}
	return nil
}

func cloneUser(u *models.User) *models.User {
	out := *u
	return &out
}

func cloneDeal(d *models.Deal) *models.Deal {
	out := *d
	return &out
}
