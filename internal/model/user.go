package model

import "time"

type UserRole string

const (
	// SuperAdmin quản trị hệ thống, có mọi quyền.
	SuperAdmin UserRole = "SUPER_ADMIN"
	// HR tạo yêu cầu tuyển dụng, quản lý ứng viên.
	HR UserRole = "HR"
	// Lead duyệt yêu cầu tuyển dụng và kế hoạch.
	Lead UserRole = "LEAD"
	// QLDT (quản lý đào tạo) theo dõi thực tập sinh, chấm điểm.
	QLDT UserRole = "QLDT"
)

// swagger:model User
type User struct {
	BaseModel
	FullName string   `gorm:"size:255;not null" json:"fullName"`
	Email    string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"size:255;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'HR'" json:"role"`
	IsLocked bool     `gorm:"default:false" json:"isLocked"`

	EmailVerified bool   `gorm:"default:false" json:"emailVerified"`
	VerifyToken   string `gorm:"size:36;index" json:"-"`

	ResetToken       string     `gorm:"size:36;index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
}

func (User) TableName() string {
	return "users"
}
