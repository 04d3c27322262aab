package model

import "time"

type PlanStatus string

const (
	PlanNew      PlanStatus = "NEW"
	PlanApproved PlanStatus = "APPROVED"
	PlanDone     PlanStatus = "DONE"
	PlanCanceled PlanStatus = "CANCELED"
)

// RecruitmentPlan là kế hoạch tuyển dụng lập từ một yêu cầu đã duyệt.
// Tên kế hoạch là thứ người dùng gõ cho trợ lý ("chậm tháng 12").
// swagger:model RecruitmentPlan
type RecruitmentPlan struct {
	BaseModel
	Name      string     `gorm:"size:255;not null" json:"name"`
	RequestID uint       `gorm:"index" json:"requestId"`
	Quantity  int        `gorm:"not null;default:1" json:"quantity"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Status    PlanStatus `gorm:"size:20;default:'NEW';index" json:"status"`
	CreatedBy uint       `gorm:"index" json:"createdBy"`
}

func (RecruitmentPlan) TableName() string {
	return "recruitment_plans"
}
