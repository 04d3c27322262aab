package assistant

import (
	"fmt"
	"math"
	"strings"
)

// matchScore kiểm tra một dòng điểm có thuộc về môn trong lộ trình không.
// Ưu tiên so theo courseId khi cả hai bên có id, ngược lại so tên môn
// không phân biệt hoa thường.
func matchScore(sc ScoreRecord, entry TimelineEntry) bool {
	if sc.CourseID != "" && entry.CourseID != "" {
		return sc.CourseID == entry.CourseID
	}
	scName := strings.ToLower(sc.CourseName)
	cName := strings.ToLower(entry.Name)
	return scName != "" && cName != "" && scName == cName
}

func findScore(scores []ScoreRecord, entry TimelineEntry) *ScoreRecord {
	for i := range scores {
		if matchScore(scores[i], entry) {
			return &scores[i]
		}
	}
	return nil
}

// isCompleted: một môn được coi là hoàn thành khi có dòng điểm khớp và đủ
// cả 3 điểm thành phần.
func isCompleted(scores []ScoreRecord, entry TimelineEntry) bool {
	s := findScore(scores, entry)
	return s != nil && s.Theory != nil && s.Practice != nil && s.Attitude != nil
}

// DisplayScore trả về điểm hiển thị của một TTS cho một môn: trung bình cộng
// 3 thành phần làm tròn 2 chữ số, hoặc "N/A" khi thiếu điểm.
func DisplayScore(t Trainee, entry TimelineEntry) string {
	s := findScore(t.Scores, entry)
	if s == nil || s.Theory == nil || s.Practice == nil || s.Attitude == nil {
		return "N/A"
	}
	avg := (*s.Theory + *s.Practice + *s.Attitude) / 3
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", avg)
}

// EvaluateProgress đánh giá một TTS so với lộ trình:
//
//   - Đếm prefixCompleted: số môn hoàn thành liên tục từ đầu lộ trình.
//   - Gặp môn chưa hoàn thành đầu tiên thì dừng đếm prefix; nếu SAU đó còn
//     môn nào đã hoàn thành thì TTS bị lệch thứ tự học. Quét hết lộ trình
//     để gom đủ danh sách môn học vượt.
//   - Không lệch thứ tự thì so số ngày thực tập với mốc cộng dồn của môn
//     hoàn thành liên tục cuối cùng: lớn hơn là CHẬM, nhỏ hơn là NHANH,
//     bằng nhau là ĐÚNG TIẾN ĐỘ.
//
// Trả về nil khi không đủ cơ sở đánh giá: thiếu số ngày thực tập, lộ trình
// rỗng, hoặc chưa hoàn thành môn nào theo thứ tự.
func EvaluateProgress(t Trainee, timeline []TimelineEntry) *ProgressPhase {
	if t.TrainingDays == nil {
		return nil
	}
	trainingDays := *t.TrainingDays
	if trainingDays == 0 || math.IsNaN(trainingDays) {
		return nil
	}
	if len(timeline) == 0 {
		return nil
	}

	prefixCompleted := 0
	metIncompleteAt := -1
	invalidSequence := false

	var completedOutOfOrder []string
	var prefixCompletedNames []string

	for i, entry := range timeline {
		done := isCompleted(t.Scores, entry)

		if metIncompleteAt == -1 {
			if done {
				prefixCompleted++
				prefixCompletedNames = append(prefixCompletedNames, entry.Name)
			} else {
				metIncompleteAt = i
			}
			continue
		}

		if done {
			invalidSequence = true
			completedOutOfOrder = append(completedOutOfOrder, entry.Name)
		}
	}

	if invalidSequence {
		mustComplete := ""
		if metIncompleteAt >= 0 {
			mustComplete = timeline[metIncompleteAt].Name
		}
		return &ProgressPhase{
			TrainingDays:           trainingDays,
			InvalidSequence:        true,
			MustCompleteCourseName: mustComplete,
			CompletedOutOfOrder:    completedOutOfOrder,
			PrefixCompletedNames:   prefixCompletedNames,
		}
	}

	if prefixCompleted <= 0 {
		return nil
	}

	current := timeline[prefixCompleted-1]

	// Mốc cộng dồn bằng 0 (lộ trình toàn môn 0 ngày) thì không có gì để so,
	// rơi về chính số ngày thực tập => ĐÚNG TIẾN ĐỘ.
	targetDays := current.CumulativeDays
	if !(targetDays > 0) {
		targetDays = trainingDays
	}

	status := StatusOnTime
	if trainingDays > targetDays {
		status = StatusLate
	} else if trainingDays < targetDays {
		status = StatusEarly
	}

	return &ProgressPhase{
		TrainingDays:      trainingDays,
		InvalidSequence:   false,
		CurrentCourseName: current.Name,
		Status:            status,
		TargetDays:        targetDays,
	}
}

// DelayDays là số ngày chậm so với mốc, chặn dưới 0.
func (p *ProgressPhase) DelayDays() float64 {
	if p == nil || p.InvalidSequence {
		return 0
	}
	d := p.TrainingDays - p.TargetDays
	if d < 0 {
		return 0
	}
	return d
}
