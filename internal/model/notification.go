package model

// Notification là thông báo trong app (yêu cầu được duyệt, ứng viên mới...).
// swagger:model Notification
type Notification struct {
	BaseModel
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Title   string `gorm:"size:255;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	IsRead  bool   `gorm:"default:false;index" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
