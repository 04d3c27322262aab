package assistant

import "math"

// BuildTimeline dựng lộ trình cộng dồn từ danh sách môn theo đúng thứ tự
// đầu vào. Môn có duration không hữu hạn hoặc âm bị loại hẳn khỏi lộ trình
// và không đóng góp vào tổng cộng dồn; các môn hợp lệ phía sau vẫn cộng
// tiếp từ mốc trước đó.
func BuildTimeline(courses []Course) []TimelineEntry {
	if len(courses) == 0 {
		return nil
	}

	timeline := make([]TimelineEntry, 0, len(courses))
	cumulative := 0.0

	for _, c := range courses {
		days := c.DurationDays
		if math.IsNaN(days) || math.IsInf(days, 0) || days < 0 {
			continue
		}

		cumulative += days
		timeline = append(timeline, TimelineEntry{
			CourseID:       c.ID,
			Name:           c.Name,
			DurationDays:   days,
			CumulativeDays: cumulative,
		})
	}

	return timeline
}
