package model

// Course là một môn trong lộ trình đào tạo TTS. OrderIndex quyết định thứ
// tự curriculum; trợ lý dựng lộ trình cộng dồn theo thứ tự này.
// swagger:model Course
type Course struct {
	BaseModel
	CourseName   string `gorm:"size:255;not null" json:"courseName"`
	Description  string `gorm:"type:text" json:"description"`
	DurationDays int    `gorm:"not null;default:0" json:"durationDays"`
	OrderIndex   int    `gorm:"not null;default:0;index" json:"orderIndex"`
}

func (Course) TableName() string {
	return "courses"
}
