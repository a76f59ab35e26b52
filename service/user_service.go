package service

import (
	"context"
	"errors"

	"escrowbot/pkg/logger"
	"escrowbot/pkg/models"
	"escrowbot/storage"
)

// ErrNegativeCount rejects /set_my_deals values below zero.
var ErrNegativeCount = errors.New("deals count cannot be negative")

type UserService interface {
	Register(ctx context.Context, teleID int64) (*models.User, error)
	Get(ctx context.Context, teleID int64) (*models.User, error)
	SetLanguage(ctx context.Context, teleID int64, lang string) error
	SetWallet(ctx context.Context, teleID int64, address string) error
	SetCard(ctx context.Context, teleID int64, details string) error
	RegisterReferral(ctx context.Context, referrerID, referredID int64) (bool, error)
	ReferralCount(ctx context.Context, teleID int64) (int, error)
	SetSuccessfulDeals(ctx context.Context, teleID int64, count int) error
}

type userService struct {
	users     storage.IUserStorage
	referrals storage.IReferralStorage
	log       logger.ILogger
}

func NewUserService(stg storage.IStorage, log logger.ILogger) UserService {
	return &userService{
		users:     stg.User(),
		referrals: stg.Referral(),
		log:       log,
	}
}

func (s *userService) Register(ctx context.Context, teleID int64) (*models.User, error) {
	return s.users.GetOrCreate(ctx, teleID)
}

func (s *userService) Get(ctx context.Context, teleID int64) (*models.User, error) {
	return s.users.Get(ctx, teleID)
}

func (s *userService) SetLanguage(ctx context.Context, teleID int64, lang string) error {
	return s.users.UpdateLanguage(ctx, teleID, lang)
}

func (s *userService) SetWallet(ctx context.Context, teleID int64, address string) error {
	return s.users.UpdateWallet(ctx, teleID, address)
}

func (s *userService) SetCard(ctx context.Context, teleID int64, details string) error {
	return s.users.UpdateCard(ctx, teleID, details)
}

// RegisterReferral records a referral edge once per referred user. Self
// referrals and repeat arrivals via a referral link are silently ignored.
func (s *userService) RegisterReferral(ctx context.Context, referrerID, referredID int64) (bool, error) {
	if referrerID == referredID {
		return false, nil
	}
	set, err := s.users.SetReferrer(ctx, referredID, referrerID)
	if err != nil || !set {
		return false, err
	}
	if err := s.referrals.Add(ctx, referrerID, referredID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *userService) ReferralCount(ctx context.Context, teleID int64) (int, error) {
	return s.referrals.CountByReferrer(ctx, teleID)
}

func (s *userService) SetSuccessfulDeals(ctx context.Context, teleID int64, count int) error {
	if count < 0 {
		return ErrNegativeCount
	}
	return s.users.SetSuccessfulDeals(ctx, teleID, count)
}
