package repository

import (
	"hr_training_backend/internal/model"

	"gorm.io/gorm"
)

type CandidateRepository struct {
	DB *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{DB: db}
}

func (r *CandidateRepository) Create(candidate *model.Candidate) error {
	return r.DB.Create(candidate).Error
}

func (r *CandidateRepository) FindByID(id uint) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.DB.First(&candidate, id).Error
	return &candidate, err
}

func (r *CandidateRepository) FindAll(planID uint, status model.CandidateStatus) ([]model.Candidate, error) {
	var candidates []model.Candidate
	q := r.DB.Order("interview_date ASC")
	if planID != 0 {
		q = q.Where("plan_id = ?", planID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&candidates).Error
	return candidates, err
}

func (r *CandidateRepository) Update(candidate *model.Candidate) error {
	return r.DB.Save(candidate).Error
}

func (r *CandidateRepository) CountByPlanAndStatus(planID uint, status model.CandidateStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Candidate{}).
		Where("plan_id = ? AND status = ?", planID, status).
		Count(&count).Error
	return count, err
}

func (r *CandidateRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Candidate{}).Count(&count).Error
	return count, err
}
