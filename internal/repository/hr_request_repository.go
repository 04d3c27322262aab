package repository

import (
	"hr_training_backend/internal/model"

	"gorm.io/gorm"
)

type HRRequestRepository struct {
	DB *gorm.DB
}

func NewHRRequestRepository(db *gorm.DB) *HRRequestRepository {
	return &HRRequestRepository{DB: db}
}

func (r *HRRequestRepository) Create(req *model.HRRequest) error {
	return r.DB.Create(req).Error
}

func (r *HRRequestRepository) FindByID(id uint) (*model.HRRequest, error) {
	var req model.HRRequest
	err := r.DB.First(&req, id).Error
	return &req, err
}

func (r *HRRequestRepository) FindAll(status model.RequestStatus) ([]model.HRRequest, error) {
	var reqs []model.HRRequest
	q := r.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&reqs).Error
	return reqs, err
}

func (r *HRRequestRepository) FindByCreator(userID uint) ([]model.HRRequest, error) {
	var reqs []model.HRRequest
	err := r.DB.Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *HRRequestRepository) Update(req *model.HRRequest) error {
	return r.DB.Save(req).Error
}

func (r *HRRequestRepository) CountByStatus(status model.RequestStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.HRRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
