package service

import (
	"escrowbot/pkg/logger"
	"escrowbot/storage"
)

type IServiceManager interface {
	User() UserService
	Deal() DealService
}

type service struct {
	userService UserService
	dealService DealService
}

func New(stg storage.IStorage, log logger.ILogger) IServiceManager {
	return &service{
		userService: NewUserService(stg, log),
		dealService: NewDealService(stg, log),
	}
}

func (s *service) User() UserService {
	return s.userService
}

func (s *service) Deal() DealService {
	return s.dealService
}
