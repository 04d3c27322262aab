package model

import "time"

type TrainingStatus string

const (
	TrainingActive    TrainingStatus = "TRAINING"
	TrainingGraduated TrainingStatus = "GRADUATED"
	TrainingFailed    TrainingStatus = "FAILED"
	TrainingStopped   TrainingStatus = "STOPPED"
)

// Training là hồ sơ thực tập của một ứng viên đã đậu phỏng vấn. Số ngày
// thực tập tính từ StartDate tới khi dừng (hoặc hiện tại).
// swagger:model Training
type Training struct {
	BaseModel
	CandidateID       uint            `gorm:"index;not null" json:"candidateId"`
	TraineeName       string          `gorm:"size:255;not null" json:"traineeName"`
	RecruitmentPlanID uint            `gorm:"index;not null" json:"recruitmentPlanId"`
	StartDate         time.Time       `gorm:"not null" json:"startDate"`
	StoppedAt         *time.Time      `json:"stoppedAt,omitempty"`
	StopReason        string          `gorm:"type:text" json:"stopReason,omitempty"`
	Status            TrainingStatus  `gorm:"size:20;default:'TRAINING';index" json:"status"`
	Scores            []TrainingScore `gorm:"foreignKey:TrainingID" json:"scores"`
}

func (Training) TableName() string {
	return "trainings"
}

// TrainingDays trả về số ngày thực tập tính đến thời điểm now (hoặc đến
// lúc dừng nếu đã dừng). Ngày bắt đầu tính là ngày 1.
func (t *Training) TrainingDays(now time.Time) int {
	end := now
	if t.StoppedAt != nil {
		end = *t.StoppedAt
	}
	if end.Before(t.StartDate) {
		return 0
	}
	return int(end.Sub(t.StartDate).Hours()/24) + 1
}

// TrainingScore là điểm một môn của một TTS. Ba thành phần đều nullable:
// môn chỉ được coi là hoàn thành khi đủ cả ba.
// swagger:model TrainingScore
type TrainingScore struct {
	BaseModel
	TrainingID    uint     `gorm:"index;not null;uniqueIndex:idx_training_course" json:"trainingId"`
	CourseID      uint     `gorm:"not null;uniqueIndex:idx_training_course" json:"courseId"`
	CourseName    string   `gorm:"size:255" json:"courseName"`
	TheoryScore   *float64 `json:"theoryScore"`
	PracticeScore *float64 `json:"practiceScore"`
	AttitudeScore *float64 `json:"attitudeScore"`
}

func (TrainingScore) TableName() string {
	return "training_scores"
}
