package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/shopspring/decimal"

	"escrowbot/pkg/logger"
	"escrowbot/pkg/models"
	"escrowbot/storage"
)

const (
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	dealIDLength = 8
	memoLength   = 10

	// maxCreateAttempts bounds token regeneration on unique-key collisions.
	maxCreateAttempts = 5
)

type DealService interface {
	Create(ctx context.Context, sellerID int64, method models.PaymentMethod, currency string, amount decimal.Decimal, description string) (*models.Deal, error)
	GetByID(ctx context.Context, dealID string) (*models.Deal, error)
	Join(ctx context.Context, dealID string, buyerID int64) (*models.Deal, error)
	ConfirmPayment(ctx context.Context, memo string) (*models.Deal, error)
	ConfirmTransfer(ctx context.Context, dealID string) (*models.Deal, error)
	Complete(ctx context.Context, dealID string) (*models.Deal, error)
	Cancel(ctx context.Context, dealID string) error
	Leave(ctx context.Context, dealID string, buyerID int64) (*models.Deal, error)
}

type dealService struct {
	deals storage.IDealStorage
	log   logger.ILogger
}

func NewDealService(stg storage.IStorage, log logger.ILogger) DealService {
	return &dealService{
		deals: stg.Deal(),
		log:   log,
	}
}

func newToken(length int) string {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}
	return string(buf)
}

// Create persists a new active deal under freshly generated id and memo
// tokens. A unique-key collision regenerates both tokens and retries.
func (s *dealService) Create(ctx context.Context, sellerID int64, method models.PaymentMethod, currency string, amount decimal.Decimal, description string) (*models.Deal, error) {
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		deal := &models.Deal{
			DealID:        newToken(dealIDLength),
			SellerID:      sellerID,
			PaymentMethod: method,
			Currency:      currency,
			Amount:        amount,
			Description:   description,
			Memo:          newToken(memoLength),
			Status:        models.StatusActive,
		}
		err := s.deals.Create(ctx, deal)
		if errors.Is(err, storage.ErrTokenCollision) {
			s.log.Warning("deal token collision, regenerating", logger.Int("attempt", attempt+1))
			continue
		}
		if err != nil {
			return nil, err
		}
		return deal, nil
	}
	return nil, storage.ErrTokenCollision
}

func (s *dealService) GetByID(ctx context.Context, dealID string) (*models.Deal, error) {
	return s.deals.GetByID(ctx, dealID)
}

// Join records the arriving buyer on the deal and returns the current view.
func (s *dealService) Join(ctx context.Context, dealID string, buyerID int64) (*models.Deal, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if err := s.deals.SetBuyer(ctx, dealID, buyerID); err != nil {
		return nil, err
	}
	deal.BuyerID = &buyerID
	return deal, nil
}

func (s *dealService) ConfirmPayment(ctx context.Context, memo string) (*models.Deal, error) {
	return s.deals.ConfirmPaymentByMemo(ctx, memo)
}

func (s *dealService) ConfirmTransfer(ctx context.Context, dealID string) (*models.Deal, error) {
	return s.advance(ctx, dealID, models.StatusTransferConfirmed)
}

func (s *dealService) Complete(ctx context.Context, dealID string) (*models.Deal, error) {
	return s.advance(ctx, dealID, models.StatusCompleted)
}

// advance moves a deal to the requested status through the transition table.
// The store re-checks the observed status, so a concurrent advance of the
// same deal fails with ErrStatusConflict instead of double-applying.
func (s *dealService) advance(ctx context.Context, dealID string, to models.DealStatus) (*models.Deal, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if !deal.Status.CanAdvanceTo(to) {
		return nil, storage.ErrStatusConflict
	}
	if err := s.deals.AdvanceStatus(ctx, dealID, deal.Status, to); err != nil {
		return nil, err
	}
	deal.Status = to
	return deal, nil
}

func (s *dealService) Cancel(ctx context.Context, dealID string) error {
	return s.deals.DeleteActive(ctx, dealID)
}

// Leave releases the deal back to unclaimed when the recorded buyer exits.
func (s *dealService) Leave(ctx context.Context, dealID string, buyerID int64) (*models.Deal, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.BuyerID == nil || *deal.BuyerID != buyerID {
		return deal, nil
	}
	if err := s.deals.ClearBuyer(ctx, dealID); err != nil {
		return nil, err
	}
	deal.BuyerID = nil
	return deal, nil
}
