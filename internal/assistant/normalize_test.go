package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCourse_DurationAliases(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
		want float64
	}{
		{"durationDays", map[string]any{"durationDays": 5.0}, 5},
		{"courseDuration", map[string]any{"courseDuration": 6.0}, 6},
		{"expectedDays", map[string]any{"expectedDays": 7.0}, 7},
		{"duration", map[string]any{"duration": 8.0}, 8},
		{"priority order", map[string]any{"duration": 8.0, "durationDays": 5.0}, 5},
		{"string number", map[string]any{"durationDays": "9"}, 9},
		{"missing defaults to zero", map[string]any{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeCourse(tc.in).DurationDays)
		})
	}
}

func TestNormalizeCourse_GarbageDurationDropsFromTimeline(t *testing.T) {
	c := NormalizeCourse(map[string]any{"name": "A", "durationDays": "vài ngày"})

	// Giá trị rác thành NaN, BuildTimeline sẽ loại môn này.
	assert.Empty(t, BuildTimeline([]Course{c}))
}

func TestNormalizeCourse_NameFallback(t *testing.T) {
	assert.Equal(t, "Java", NormalizeCourse(map[string]any{"courseName": "Java"}).Name)
	assert.Equal(t, "Java", NormalizeCourse(map[string]any{"name": "Java"}).Name)
	assert.Equal(t, "Môn không tên", NormalizeCourse(map[string]any{}).Name)
}

func TestNormalizeTraining_DayAliases(t *testing.T) {
	for _, key := range []string{"trainingDays", "soNgayThucTap", "soNgayTT"} {
		tr := NormalizeTraining(map[string]any{key: 12.0})
		require.NotNil(t, tr.TrainingDays, key)
		assert.Equal(t, 12.0, *tr.TrainingDays, key)
	}

	assert.Nil(t, NormalizeTraining(map[string]any{}).TrainingDays)
}

func TestNormalizeTraining_PlanAliases(t *testing.T) {
	assert.Equal(t, "3", NormalizeTraining(map[string]any{"recruitmentPlanId": 3.0}).PlanID)
	assert.Equal(t, "4", NormalizeTraining(map[string]any{"planId": "4"}).PlanID)
	assert.Equal(t, "5", NormalizeTraining(map[string]any{
		"recruitmentPlan": map[string]any{"id": 5.0},
	}).PlanID)
	assert.Equal(t, "6", NormalizeTraining(map[string]any{
		"recruitmentPlan": map[string]any{"planId": "6"},
	}).PlanID)
}

func TestNormalizeTraining_NameAndScores(t *testing.T) {
	tr := NormalizeTraining(map[string]any{
		"fullName": "Ngô Thị Hà",
		"scores": []any{
			map[string]any{
				"courseId":      1.0,
				"courseName":    "A",
				"theoryScore":   8.0,
				"practiceScore": 7.0,
			},
		},
	})

	assert.Equal(t, "Ngô Thị Hà", tr.Name)
	require.Len(t, tr.Scores, 1)
	assert.Equal(t, "1", tr.Scores[0].CourseID)
	require.NotNil(t, tr.Scores[0].Theory)
	assert.Equal(t, 8.0, *tr.Scores[0].Theory)
	assert.Nil(t, tr.Scores[0].Attitude)
}

func TestNormalizePlan_Aliases(t *testing.T) {
	assert.Equal(t, Plan{ID: "2", Name: "Tháng 2"},
		NormalizePlan(map[string]any{"id": 2.0, "name": "Tháng 2"}))
	assert.Equal(t, "3", NormalizePlan(map[string]any{"planId": "3"}).ID)
	assert.Equal(t, "Đợt xuân", NormalizePlan(map[string]any{"planName": "Đợt xuân"}).Name)
}

func TestNormalizeSnapshot_EndToEnd(t *testing.T) {
	snap := NormalizeSnapshot(
		[]map[string]any{{
			"traineeName":       "An",
			"soNgayTT":          20.0,
			"recruitmentPlanId": 12.0,
			"scores": []any{
				map[string]any{"courseId": 1.0, "theoryScore": 8.0, "practiceScore": 8.0, "attitudeScore": 8.0},
			},
		}},
		[]map[string]any{{"id": 12.0, "name": "Tháng 12"}},
		[]map[string]any{
			{"courseId": 1.0, "courseName": "A", "durationDays": 5.0},
			{"courseId": 2.0, "courseName": "B", "expectedDays": 10.0},
		},
	)

	timeline := BuildTimeline(snap.Courses)
	result := BuildDelayOverview(snap, timeline, "tháng 12")

	require.Len(t, result.Groups, 1)
	require.Len(t, result.Groups[0].Interns, 1)
	assert.Equal(t, "An", result.Groups[0].Interns[0].Name)
	assert.Equal(t, 15.0, result.Groups[0].Interns[0].DelayDays)
}
