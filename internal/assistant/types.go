package assistant

// Gói assistant chứa toàn bộ logic của Trợ lý Phúc: dựng lộ trình môn học,
// đánh giá tiến độ thực tập sinh, gom nhóm TTS chậm theo kế hoạch và máy
// trạng thái hội thoại. Không phụ thuộc gin/gorm để test độc lập.

// Course là một môn trong lộ trình đào tạo, theo đúng thứ tự curriculum.
type Course struct {
	ID           string
	Name         string
	DurationDays float64
}

// TimelineEntry là một mốc trong lộ trình đã cộng dồn số ngày.
type TimelineEntry struct {
	CourseID       string  `json:"courseId"`
	Name           string  `json:"name"`
	DurationDays   float64 `json:"durationDays"`
	CumulativeDays float64 `json:"cumulativeDays"`
}

// ScoreRecord là điểm của một TTS cho một môn. Ba thành phần đều nullable;
// môn chỉ được coi là hoàn thành khi đủ cả ba.
type ScoreRecord struct {
	CourseID   string
	CourseName string
	Theory     *float64
	Practice   *float64
	Attitude   *float64
}

// Trainee là bản ghi thực tập sinh mà engine đọc (read-only).
type Trainee struct {
	ID           string
	Name         string
	PlanID       string
	TrainingDays *float64
	Scores       []ScoreRecord
}

// Plan dùng để tra tên kế hoạch từ id.
type Plan struct {
	ID   string
	Name string
}

// Snapshot là toàn bộ dữ liệu engine cần cho một phiên: trainings, danh sách
// kế hoạch và lộ trình môn. Engine không bao giờ mutate snapshot.
type Snapshot struct {
	Trainees []Trainee
	Plans    []Plan
	Courses  []Course
}

// PaceStatus phân loại tiến độ của TTS so với mốc cộng dồn.
type PaceStatus string

const (
	StatusOnTime PaceStatus = "ON_TIME"
	StatusLate   PaceStatus = "LATE"
	StatusEarly  PaceStatus = "EARLY"
)

// Label trả về nhãn tiếng Việt hiển thị cho người dùng.
func (s PaceStatus) Label() string {
	switch s {
	case StatusLate:
		return "CHẬM"
	case StatusEarly:
		return "NHANH"
	default:
		return "ĐÚNG TIẾN ĐỘ"
	}
}

// ProgressPhase là kết quả đánh giá một TTS. nil nghĩa là chưa đủ dữ liệu
// để đánh giá. Khi InvalidSequence = true chỉ các trường của nhánh lệch
// thứ tự có nghĩa; ngược lại chỉ nhánh tiến độ có nghĩa.
type ProgressPhase struct {
	TrainingDays    float64
	InvalidSequence bool

	// Nhánh lệch thứ tự học
	MustCompleteCourseName string
	CompletedOutOfOrder    []string
	PrefixCompletedNames   []string

	// Nhánh tiến độ
	CurrentCourseName string
	Status            PaceStatus
	TargetDays        float64
}

// LateIntern là một dòng trong bảng TTS chậm của một kế hoạch.
type LateIntern struct {
	Name              string  `json:"name"`
	CurrentCourseName string  `json:"currentCourseName"`
	TrainingDays      float64 `json:"trainingDays"`
	DelayDays         float64 `json:"delayDays"`
}

// DelayGroup gom các TTS chậm của cùng một kế hoạch, sort giảm dần theo
// số ngày chậm.
type DelayGroup struct {
	PlanID   string       `json:"planId"`
	PlanName string       `json:"planName"`
	Interns  []LateIntern `json:"interns"`
}

// MismatchRow là một TTS bị lệch thứ tự học, kèm snapshot điểm theo từng môn.
type MismatchRow struct {
	Name         string            `json:"name"`
	MustLearn    string            `json:"mustLearn"`
	CourseScores map[string]string `json:"courseScores"`
}

// MismatchPlan gom các dòng lệch thứ tự của một kế hoạch, sort theo tên.
type MismatchPlan struct {
	PlanID   string        `json:"planId"`
	PlanName string        `json:"planName"`
	Rows     []MismatchRow `json:"rows"`
}

// DelayResult là đầu ra của BuildDelayOverview.
type DelayResult struct {
	Groups []DelayGroup

	// MatchedPlanIDs: các plan id khớp keyword. MismatchPlanIDs: các plan
	// có ít nhất một TTS lệch thứ tự. Hai tập này cho phép caller phân biệt
	// "sai tên kế hoạch" với "kế hoạch có nhưng chưa có dữ liệu chấm".
	MatchedPlanIDs  map[string]bool
	MismatchPlanIDs map[string]bool
	MismatchByPlan  map[string]*MismatchPlan
}

// PlanRef là một lựa chọn trong menu chọn kế hoạch theo số.
type PlanRef struct {
	PlanID   string `json:"planId"`
	PlanName string `json:"planName"`
}
