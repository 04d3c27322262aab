package repository

import (
	"hr_training_backend/internal/model"

	"gorm.io/gorm"
)

type RecruitmentPlanRepository struct {
	DB *gorm.DB
}

func NewRecruitmentPlanRepository(db *gorm.DB) *RecruitmentPlanRepository {
	return &RecruitmentPlanRepository{DB: db}
}

func (r *RecruitmentPlanRepository) Create(plan *model.RecruitmentPlan) error {
	return r.DB.Create(plan).Error
}

func (r *RecruitmentPlanRepository) FindByID(id uint) (*model.RecruitmentPlan, error) {
	var plan model.RecruitmentPlan
	err := r.DB.First(&plan, id).Error
	return &plan, err
}

func (r *RecruitmentPlanRepository) FindAll(status model.PlanStatus) ([]model.RecruitmentPlan, error) {
	var plans []model.RecruitmentPlan
	q := r.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&plans).Error
	return plans, err
}

func (r *RecruitmentPlanRepository) FindByRequest(requestID uint) ([]model.RecruitmentPlan, error) {
	var plans []model.RecruitmentPlan
	err := r.DB.Where("request_id = ?", requestID).Find(&plans).Error
	return plans, err
}

func (r *RecruitmentPlanRepository) Update(plan *model.RecruitmentPlan) error {
	return r.DB.Save(plan).Error
}

func (r *RecruitmentPlanRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.RecruitmentPlan{}).Count(&count).Error
	return count, err
}
