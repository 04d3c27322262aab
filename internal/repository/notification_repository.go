package repository

import (
	"hr_training_backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(notification *model.Notification) error {
	return r.DB.Create(notification).Error
}

func (r *NotificationRepository) FindByUser(userID uint, unreadOnly bool) ([]model.Notification, error) {
	var notifications []model.Notification
	q := r.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	err := q.Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) MarkRead(id, userID uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).
		Error
}

func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).
		Error
}

func (r *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// NotifyRole gửi cùng một thông báo tới tất cả user của một vai trò.
func (r *NotificationRepository) NotifyRole(role model.UserRole, title, content string) error {
	var users []model.User
	if err := r.DB.Where("role = ?", role).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		n := model.Notification{UserID: u.ID, Title: title, Content: content}
		if err := r.DB.Create(&n).Error; err != nil {
			return err
		}
	}
	return nil
}
