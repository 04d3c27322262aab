package repository

import (
	"hr_training_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

// FindAllOrdered trả về curriculum theo đúng thứ tự lộ trình.
func (r *CourseRepository) FindAllOrdered() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("order_index ASC, id ASC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

func (r *CourseRepository) MaxOrderIndex() (int, error) {
	var max int
	err := r.DB.Model(&model.Course{}).
		Select("COALESCE(MAX(order_index), 0)").
		Scan(&max).Error
	return max, err
}

// Reorder ghi lại order_index cho toàn bộ môn học trong một transaction.
// orderedIDs là danh sách ID theo thứ tự mới.
func (r *CourseRepository) Reorder(orderedIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&model.Course{}).
				Where("id = ?", id).
				Update("order_index", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}
