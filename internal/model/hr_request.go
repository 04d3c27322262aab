package model

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// HRRequest là yêu cầu tuyển dụng do HR tạo, chờ LEAD duyệt. Yêu cầu được
// duyệt mới lập được kế hoạch tuyển dụng.
// swagger:model HRRequest
type HRRequest struct {
	BaseModel
	Position     string        `gorm:"size:255;not null" json:"position"`
	Quantity     int           `gorm:"not null;default:1" json:"quantity"`
	Reason       string        `gorm:"type:text" json:"reason"`
	Deadline     *time.Time    `json:"deadline,omitempty"`
	Status       RequestStatus `gorm:"size:20;default:'PENDING';index" json:"status"`
	RejectReason string        `gorm:"type:text" json:"rejectReason,omitempty"`
	CreatedBy    uint          `gorm:"index" json:"createdBy"`
}

func (HRRequest) TableName() string {
	return "hr_requests"
}
