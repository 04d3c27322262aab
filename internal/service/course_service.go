package service

import (
	"errors"
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/repository"
	"hr_training_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

func (s *CourseService) List() ([]model.Course, error) {
	return s.CourseRepo.FindAllOrdered()
}

func (s *CourseService) GetByID(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

// Create thêm môn mới vào cuối lộ trình.
func (s *CourseService) Create(course *model.Course) error {
	max, err := s.CourseRepo.MaxOrderIndex()
	if err != nil {
		return err
	}
	course.OrderIndex = max + 1
	return s.CourseRepo.Create(course)
}

func (s *CourseService) Update(id uint, name, description string, durationDays *int) (*model.Course, error) {
	course, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		course.CourseName = name
	}
	if description != "" {
		course.Description = description
	}
	if durationDays != nil {
		course.DurationDays = *durationDays
	}
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.CourseRepo.Delete(id)
}

// Reorder nhận danh sách ID theo thứ tự mới. Danh sách phải là hoán vị
// đúng của toàn bộ môn hiện có.
func (s *CourseService) Reorder(orderedIDs []uint) error {
	courses, err := s.CourseRepo.FindAllOrdered()
	if err != nil {
		return err
	}
	if len(orderedIDs) != len(courses) {
		return util.ErrReorderListMismatch
	}

	existing := make(map[uint]bool, len(courses))
	for _, c := range courses {
		existing[c.ID] = true
	}
	seen := make(map[uint]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !existing[id] || seen[id] {
			return util.ErrReorderListMismatch
		}
		seen[id] = true
	}

	return s.CourseRepo.Reorder(orderedIDs)
}
