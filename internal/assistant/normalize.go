package assistant

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// normalize.go chuẩn hoá payload JSON kiểu cũ (các field alias lẫn lộn giữa
// các màn hình) về record nội bộ, thực hiện đúng MỘT lần ở biên. Thuật toán
// trong engine không bao giờ phải dò alias.

// toNumber ép một giá trị JSON bất kỳ về float64. Giá trị thiếu trả về
// (0, false); giá trị có nhưng không phải số trả về (NaN, true) để tầng
// trên loại đúng theo chính sách "degrade im lặng".
func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return math.NaN(), true
		}
		return f, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return math.NaN(), true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), true
		}
		return f, true
	default:
		return math.NaN(), true
	}
}

// toID ép một giá trị JSON về id dạng chuỗi: số nguyên giữ nguyên dạng số,
// chuỗi được trim. Trả về "" khi thiếu.
func toID(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case json.Number:
		return x.String()
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return ""
	}
}

func toText(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// firstPresent trả về giá trị đầu tiên khác nil theo chuỗi alias.
func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// firstText trả về chuỗi khác rỗng đầu tiên theo chuỗi alias.
func firstText(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := toText(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func optionalScore(v any) *float64 {
	if v == nil {
		return nil
	}
	f, ok := toNumber(v)
	if !ok {
		return nil
	}
	return &f
}

// NormalizeCourse đọc một môn học từ payload cũ. Duration lấy theo chuỗi
// alias durationDays → courseDuration → expectedDays → duration, mặc định 0;
// giá trị rác thành NaN để BuildTimeline loại môn đó.
func NormalizeCourse(m map[string]any) Course {
	duration := 0.0
	if v := firstPresent(m, "durationDays", "courseDuration", "expectedDays", "duration"); v != nil {
		duration, _ = toNumber(v)
	}

	name := firstText(m, "courseName", "name")
	if name == "" {
		name = "Môn không tên"
	}

	return Course{
		ID:           toID(firstPresent(m, "courseId", "id")),
		Name:         name,
		DurationDays: duration,
	}
}

// NormalizePlan đọc một plan option từ payload cũ.
func NormalizePlan(m map[string]any) Plan {
	return Plan{
		ID:   toID(firstPresent(m, "id", "planId", "recruitmentPlanId")),
		Name: firstText(m, "name", "planName"),
	}
}

func normalizeScore(m map[string]any) ScoreRecord {
	return ScoreRecord{
		CourseID:   toID(firstPresent(m, "courseId", "id")),
		CourseName: firstText(m, "courseName", "name"),
		Theory:     optionalScore(firstPresent(m, "theoryScore")),
		Practice:   optionalScore(firstPresent(m, "practiceScore")),
		Attitude:   optionalScore(firstPresent(m, "attitudeScore")),
	}
}

// NormalizeTraining đọc một bản ghi thực tập sinh từ payload cũ:
//
//   - số ngày thực tập: trainingDays → soNgayThucTap → soNgayTT;
//   - tham chiếu kế hoạch: recruitmentPlanId → planId → recruitmentPlan.id
//     → recruitmentPlan.planId;
//   - tên: traineeName → fullName → name.
func NormalizeTraining(m map[string]any) Trainee {
	var days *float64
	if v := firstPresent(m, "trainingDays", "soNgayThucTap", "soNgayTT"); v != nil {
		if f, ok := toNumber(v); ok {
			days = &f
		}
	}

	planID := toID(firstPresent(m, "recruitmentPlanId", "planId"))
	if planID == "" {
		if nested, ok := m["recruitmentPlan"].(map[string]any); ok {
			planID = toID(firstPresent(nested, "id", "planId"))
		}
	}

	var scores []ScoreRecord
	if raw, ok := m["scores"].([]any); ok {
		for _, item := range raw {
			if sm, ok := item.(map[string]any); ok {
				scores = append(scores, normalizeScore(sm))
			}
		}
	}

	return Trainee{
		ID:           toID(firstPresent(m, "internId", "id")),
		Name:         firstText(m, "traineeName", "fullName", "name"),
		PlanID:       planID,
		TrainingDays: days,
		Scores:       scores,
	}
}

// NormalizeSnapshot chuẩn hoá trọn bộ ba danh sách mà host cung cấp. Đường
// đi này dành cho payload JSON từ hệ cũ (bản dump của front-end trước đây
// hoặc host ngoài nhúng engine); dữ liệu đọc từ gorm đã có kiểu cụ thể nên
// được convert thẳng trong AssistantService.Snapshot, không qua đây.
func NormalizeSnapshot(trainings, plans, courses []map[string]any) Snapshot {
	snap := Snapshot{}
	for _, m := range trainings {
		snap.Trainees = append(snap.Trainees, NormalizeTraining(m))
	}
	for _, m := range plans {
		snap.Plans = append(snap.Plans, NormalizePlan(m))
	}
	for _, m := range courses {
		snap.Courses = append(snap.Courses, NormalizeCourse(m))
	}
	return snap
}
