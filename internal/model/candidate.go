package model

import "time"

type CandidateStatus string

const (
	CandidateNew         CandidateStatus = "NEW"
	CandidateInterviewed CandidateStatus = "INTERVIEWED"
	CandidatePassed      CandidateStatus = "PASSED"
	CandidateFailed      CandidateStatus = "FAILED"
	CandidateCanceled    CandidateStatus = "CANCELED"
)

// Candidate là ứng viên trong một kế hoạch tuyển dụng. Ứng viên PASSED
// được chuyển thành thực tập sinh (Training).
// swagger:model Candidate
type Candidate struct {
	BaseModel
	FullName      string          `gorm:"size:255;not null" json:"fullName"`
	Email         string          `gorm:"size:255;not null" json:"email"`
	PhoneNumber   string          `gorm:"size:20;not null" json:"phoneNumber"`
	InterviewDate time.Time       `gorm:"not null" json:"interviewDate"`
	CVLink        string          `gorm:"size:512" json:"cvLink,omitempty"`
	PlanID        uint            `gorm:"index;not null" json:"planId"`
	Status        CandidateStatus `gorm:"size:20;default:'NEW';index" json:"status"`
	Note          string          `gorm:"type:text" json:"note,omitempty"`
}

func (Candidate) TableName() string {
	return "candidates"
}
