package service

import (
	"errors"
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/repository"
	"hr_training_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type TrainingService struct {
	TrainingRepo *repository.TrainingRepository
	CourseRepo   *repository.CourseRepository
}

func NewTrainingService(trainingRepo *repository.TrainingRepository, courseRepo *repository.CourseRepository) *TrainingService {
	return &TrainingService{
		TrainingRepo: trainingRepo,
		CourseRepo:   courseRepo,
	}
}

func (s *TrainingService) GetByID(id uint) (*model.Training, error) {
	training, err := s.TrainingRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTrainingNotFound
	}
	return training, err
}

func (s *TrainingService) List(planID uint, status model.TrainingStatus) ([]model.Training, error) {
	return s.TrainingRepo.FindAll(planID, status)
}

func validScore(v *float64) bool {
	return v == nil || (*v >= 0 && *v <= 10)
}

// SetScore ghi điểm một môn cho TTS. Từng thành phần có thể để trống,
// nhưng đã nhập thì phải trong khoảng 0-10.
func (s *TrainingService) SetScore(trainingID, courseID uint, theory, practice, attitude *float64) (*model.Training, error) {
	training, err := s.GetByID(trainingID)
	if err != nil {
		return nil, err
	}
	if training.Status == model.TrainingStopped {
		return nil, util.ErrTrainingStopped
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if !validScore(theory) || !validScore(practice) || !validScore(attitude) {
		return nil, util.ErrScoreOutOfRange
	}

	score := &model.TrainingScore{
		TrainingID:    training.ID,
		CourseID:      course.ID,
		CourseName:    course.CourseName,
		TheoryScore:   theory,
		PracticeScore: practice,
		AttitudeScore: attitude,
	}
	if err := s.TrainingRepo.UpsertScore(score); err != nil {
		return nil, err
	}

	return s.GetByID(trainingID)
}

// Stop dừng thực tập. Số ngày thực tập chốt tại thời điểm dừng.
func (s *TrainingService) Stop(id uint, reason string) (*model.Training, error) {
	training, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if training.Status == model.TrainingStopped {
		return nil, util.ErrTrainingStopped
	}

	now := time.Now()
	training.StoppedAt = &now
	training.StopReason = reason
	training.Status = model.TrainingStopped
	if err := s.TrainingRepo.Update(training); err != nil {
		return nil, err
	}
	return training, nil
}

func (s *TrainingService) UpdateStatus(id uint, status model.TrainingStatus) (*model.Training, error) {
	training, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	training.Status = status
	if err := s.TrainingRepo.Update(training); err != nil {
		return nil, err
	}
	return training, nil
}
