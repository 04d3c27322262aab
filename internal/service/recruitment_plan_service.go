package service

import (
	"errors"
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/repository"
	"hr_training_backend/internal/util"

	"gorm.io/gorm"
)

type RecruitmentPlanService struct {
	PlanRepo    *repository.RecruitmentPlanRepository
	RequestRepo *repository.HRRequestRepository
}

func NewRecruitmentPlanService(planRepo *repository.RecruitmentPlanRepository, requestRepo *repository.HRRequestRepository) *RecruitmentPlanService {
	return &RecruitmentPlanService{
		PlanRepo:    planRepo,
		RequestRepo: requestRepo,
	}
}

// Create lập kế hoạch từ một yêu cầu đã được duyệt.
func (s *RecruitmentPlanService) Create(plan *model.RecruitmentPlan) error {
	req, err := s.RequestRepo.FindByID(plan.RequestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrRequestNotFound
	}
	if err != nil {
		return err
	}
	if req.Status != model.RequestApproved {
		return util.ErrRequestNotApproved
	}

	plan.Status = model.PlanNew
	return s.PlanRepo.Create(plan)
}

func (s *RecruitmentPlanService) GetByID(id uint) (*model.RecruitmentPlan, error) {
	plan, err := s.PlanRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPlanNotFound
	}
	return plan, err
}

func (s *RecruitmentPlanService) List(status model.PlanStatus) ([]model.RecruitmentPlan, error) {
	return s.PlanRepo.FindAll(status)
}

func (s *RecruitmentPlanService) UpdateStatus(id uint, status model.PlanStatus) (*model.RecruitmentPlan, error) {
	plan, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	plan.Status = status
	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *RecruitmentPlanService) Update(id uint, name string, quantity *int) (*model.RecruitmentPlan, error) {
	plan, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		plan.Name = name
	}
	if quantity != nil {
		plan.Quantity = *quantity
	}
	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}
