package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	policyRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/policy"
	"github.com/m04kA/SMC-ScheduleService/internal/service/policy/models"
)

// Service сервис для работы с политиками планирования
type Service struct {
	policyRepo PolicyRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(policyRepo PolicyRepository, logger Logger) *Service {
	return &Service{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Get получает политику планирования пользователя
// Приоритет: политика пользователя > общая политика мастерской > встроенная по умолчанию
func (s *Service) Get(ctx context.Context, userID int64) (*models.PolicyResponse, error) {
	s.logger.Info("Get: fetching scheduling policy for user=%d", userID)

	policy, err := s.policyRepo.GetWithFallback(ctx, userID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Info("Get: no stored policy for user=%d, using built-in default", userID)
			return models.FromDomainPolicy(domain.DefaultSchedulingPolicy()), nil
		}
		s.logger.Error("Get: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched policy id=%d for user=%d", policy.ID, userID)
	return models.FromDomainPolicy(policy), nil
}

// GetDomain получает политику пользователя как domain модель
// Используется usecase-слоем, где политика нужна для расчётов, а не для ответа
func (s *Service) GetDomain(ctx context.Context, userID int64) (*domain.SchedulingPolicy, error) {
	policy, err := s.policyRepo.GetWithFallback(ctx, userID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return domain.DefaultSchedulingPolicy(), nil
		}
		return nil, fmt.Errorf("%w: GetDomain - repository error: %v", ErrInternal, err)
	}
	return policy, nil
}

// Save сохраняет политику планирования пользователя
// Отклоняет политику целиком при первом невалидном поле; частичное применение
// настроек не выполняется
func (s *Service) Save(ctx context.Context, req *models.SavePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Save: saving scheduling policy for user=%d", req.UserID)

	domainPolicy := req.ToDomainPolicy()

	if err := domainPolicy.Validate(); err != nil {
		s.logger.Warn("Save: validation failed for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.policyRepo.Upsert(ctx, domainPolicy)
	if err != nil {
		s.logger.Error("Save: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: successfully saved policy id=%d for user=%d", saved.ID, req.UserID)
	return models.FromDomainPolicy(saved), nil
}
