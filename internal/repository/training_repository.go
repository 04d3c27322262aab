package repository

import (
	"errors"
	"hr_training_backend/internal/model"

	"gorm.io/gorm"
)

type TrainingRepository struct {
	DB *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{DB: db}
}

func (r *TrainingRepository) Create(training *model.Training) error {
	return r.DB.Create(training).Error
}

func (r *TrainingRepository) FindByID(id uint) (*model.Training, error) {
	var training model.Training
	err := r.DB.Preload("Scores").First(&training, id).Error
	return &training, err
}

func (r *TrainingRepository) FindByCandidate(candidateID uint) (*model.Training, error) {
	var training model.Training
	err := r.DB.Preload("Scores").
		Where("candidate_id = ?", candidateID).
		First(&training).Error
	return &training, err
}

func (r *TrainingRepository) FindAll(planID uint, status model.TrainingStatus) ([]model.Training, error) {
	var trainings []model.Training
	q := r.DB.Preload("Scores").Order("start_date ASC")
	if planID != 0 {
		q = q.Where("recruitment_plan_id = ?", planID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&trainings).Error
	return trainings, err
}

func (r *TrainingRepository) Update(training *model.Training) error {
	return r.DB.Save(training).Error
}

// UpsertScore ghi điểm một môn cho một TTS, tạo mới nếu chưa có bản ghi.
func (r *TrainingRepository) UpsertScore(score *model.TrainingScore) error {
	var existing model.TrainingScore
	err := r.DB.Where("training_id = ? AND course_id = ?", score.TrainingID, score.CourseID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(score).Error
	}
	if err != nil {
		return err
	}

	existing.CourseName = score.CourseName
	existing.TheoryScore = score.TheoryScore
	existing.PracticeScore = score.PracticeScore
	existing.AttitudeScore = score.AttitudeScore
	return r.DB.Save(&existing).Error
}

func (r *TrainingRepository) CountByStatus(status model.TrainingStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Training{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *TrainingRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Training{}).Count(&count).Error
	return count, err
}
