package assistant

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// viCollator so chuỗi theo locale tiếng Việt, dùng cho mọi sort theo tên.
var viCollator = collate.New(language.Vietnamese)

// PlanNameByID tra tên hiển thị của kế hoạch, rơi về "Kế hoạch #<id>" khi
// không tìm thấy trong danh sách plan options.
func PlanNameByID(plans []Plan, planID string) string {
	if planID == "" {
		return ""
	}
	for _, p := range plans {
		if p.ID == planID {
			if p.Name != "" {
				return p.Name
			}
			break
		}
	}
	return fmt.Sprintf("Kế hoạch #%s", planID)
}

// isAllDigits báo keyword chỉ gồm chữ số (sau khi trim).
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// matchPlansByID khớp chính xác theo plan id: so nguyên chuỗi hoặc so sau
// khi chuẩn hoá số (bỏ số 0 đứng đầu). "12" không khớp "120".
func matchPlansByID(planIDs []string, key string) map[string]bool {
	matched := make(map[string]bool)
	normalized := key
	if n, err := strconv.ParseUint(key, 10, 64); err == nil {
		normalized = strconv.FormatUint(n, 10)
	}
	for _, pid := range planIDs {
		if pid == key || pid == normalized {
			matched[pid] = true
		}
	}
	return matched
}

// matchPlansByName khớp substring không phân biệt hoa thường trên tên kế
// hoạch đã resolve.
func matchPlansByName(planIDs []string, plans []Plan, key string) map[string]bool {
	matched := make(map[string]bool)
	for _, pid := range planIDs {
		name := strings.ToLower(PlanNameByID(plans, pid))
		if strings.Contains(name, key) {
			matched[pid] = true
		}
	}
	return matched
}

// planIDsFromTrainees liệt kê các plan id có mặt trong dữ liệu trainings,
// giữ thứ tự lần gặp đầu tiên.
func planIDsFromTrainees(trainees []Trainee) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, t := range trainees {
		if t.PlanID == "" || seen[t.PlanID] {
			continue
		}
		seen[t.PlanID] = true
		ids = append(ids, t.PlanID)
	}
	return ids
}

// PlansFromTrainees dựng danh sách kế hoạch duy nhất từ trainings, sort theo
// tên để menu chọn số luôn ổn định.
func PlansFromTrainees(snap Snapshot) []PlanRef {
	ids := planIDsFromTrainees(snap.Trainees)
	refs := make([]PlanRef, 0, len(ids))
	for _, pid := range ids {
		refs = append(refs, PlanRef{
			PlanID:   pid,
			PlanName: PlanNameByID(snap.Plans, pid),
		})
	}
	sort.SliceStable(refs, func(i, j int) bool {
		return viCollator.CompareString(refs[i].PlanName, refs[j].PlanName) < 0
	})
	return refs
}

// BuildDelayOverview chạy đánh giá tiến độ cho mọi TTS thuộc các kế hoạch
// khớp keyword và gom kết quả:
//
//   - keyword rỗng => khớp mọi kế hoạch có trong trainings;
//   - keyword toàn số => khớp chính xác theo plan id;
//   - ngược lại => khớp substring theo tên kế hoạch.
//
// TTS lệch thứ tự học đi vào bảng mismatch của kế hoạch (kèm snapshot điểm
// từng môn); TTS CHẬM đi vào bảng chậm; các trường hợp còn lại bị bỏ qua.
// Bảng chậm sort giảm dần theo số ngày chậm, bảng mismatch sort theo tên.
func BuildDelayOverview(snap Snapshot, timeline []TimelineEntry, keywordRaw string) DelayResult {
	result := DelayResult{
		MatchedPlanIDs:  make(map[string]bool),
		MismatchPlanIDs: make(map[string]bool),
		MismatchByPlan:  make(map[string]*MismatchPlan),
	}

	if len(snap.Trainees) == 0 || len(timeline) == 0 {
		return result
	}

	key := strings.ToLower(strings.TrimSpace(keywordRaw))
	planIDs := planIDsFromTrainees(snap.Trainees)

	switch {
	case key == "":
		for _, pid := range planIDs {
			result.MatchedPlanIDs[pid] = true
		}
	case isAllDigits(key):
		result.MatchedPlanIDs = matchPlansByID(planIDs, key)
	default:
		result.MatchedPlanIDs = matchPlansByName(planIDs, snap.Plans, key)
	}

	byPlan := make(map[string]*DelayGroup)
	var groupOrder []string

	for _, t := range snap.Trainees {
		if t.PlanID == "" {
			continue
		}
		if key != "" && !result.MatchedPlanIDs[t.PlanID] {
			continue
		}

		phase := EvaluateProgress(t, timeline)

		internName := t.Name
		if internName == "" {
			internName = "Không rõ tên"
		}

		if phase != nil && phase.InvalidSequence {
			result.MismatchPlanIDs[t.PlanID] = true

			mp := result.MismatchByPlan[t.PlanID]
			if mp == nil {
				mp = &MismatchPlan{
					PlanID:   t.PlanID,
					PlanName: PlanNameByID(snap.Plans, t.PlanID),
				}
				result.MismatchByPlan[t.PlanID] = mp
			}

			courseScores := make(map[string]string, len(timeline))
			for _, entry := range timeline {
				courseScores[entry.Name] = DisplayScore(t, entry)
			}

			mustLearn := phase.MustCompleteCourseName
			if mustLearn == "" {
				mustLearn = "—"
			}
			mp.Rows = append(mp.Rows, MismatchRow{
				Name:         internName,
				MustLearn:    mustLearn,
				CourseScores: courseScores,
			})
			continue
		}

		if phase == nil || phase.Status != StatusLate {
			continue
		}

		g := byPlan[t.PlanID]
		if g == nil {
			g = &DelayGroup{
				PlanID:   t.PlanID,
				PlanName: PlanNameByID(snap.Plans, t.PlanID),
			}
			byPlan[t.PlanID] = g
			groupOrder = append(groupOrder, t.PlanID)
		}

		g.Interns = append(g.Interns, LateIntern{
			Name:              internName,
			CurrentCourseName: phase.CurrentCourseName,
			TrainingDays:      phase.TrainingDays,
			DelayDays:         phase.DelayDays(),
		})
	}

	for _, pid := range groupOrder {
		g := byPlan[pid]
		sort.SliceStable(g.Interns, func(i, j int) bool {
			return g.Interns[i].DelayDays > g.Interns[j].DelayDays
		})
		result.Groups = append(result.Groups, *g)
	}

	for _, mp := range result.MismatchByPlan {
		rows := mp.Rows
		sort.SliceStable(rows, func(i, j int) bool {
			return viCollator.CompareString(rows[i].Name, rows[j].Name) < 0
		})
	}

	return result
}
