package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoSnapshot() Snapshot {
	return Snapshot{
		Plans: []Plan{
			{ID: "12", Name: "Tháng 12"},
			{ID: "120", Name: "Batch X"},
			{ID: "7", Name: "Đợt hè"},
		},
		Courses: []Course{
			{ID: "1", Name: "A", DurationDays: 5},
			{ID: "2", Name: "B", DurationDays: 10},
			{ID: "3", Name: "C", DurationDays: 7},
		},
		Trainees: []Trainee{
			{
				Name: "Trần Thị Bích", PlanID: "12", TrainingDays: fptr(9),
				Scores: []ScoreRecord{fullScore("1", "A", 8)},
			},
			{
				Name: "Lê Văn Cường", PlanID: "12", TrainingDays: fptr(7),
				Scores: []ScoreRecord{fullScore("1", "A", 7)},
			},
			{
				Name: "Phạm Minh Duy", PlanID: "120", TrainingDays: fptr(30),
				Scores: []ScoreRecord{fullScore("1", "A", 6), fullScore("2", "B", 6)},
			},
			{
				Name: "Hoàng Anh", PlanID: "7", TrainingDays: fptr(4),
				Scores: []ScoreRecord{fullScore("1", "A", 9)},
			},
		},
	}
}

func demoTimeline(snap Snapshot) []TimelineEntry {
	return BuildTimeline(snap.Courses)
}

func TestBuildDelayOverview_NumericKeywordMatchesExactID(t *testing.T) {
	snap := demoSnapshot()
	result := BuildDelayOverview(snap, demoTimeline(snap), "12")

	// "12" chỉ khớp plan id 12, không khớp 120 dù "120" chứa "12".
	assert.Equal(t, map[string]bool{"12": true}, result.MatchedPlanIDs)
}

func TestBuildDelayOverview_NumericKeywordLeadingZeros(t *testing.T) {
	snap := demoSnapshot()
	result := BuildDelayOverview(snap, demoTimeline(snap), "012")

	assert.True(t, result.MatchedPlanIDs["12"])
	assert.False(t, result.MatchedPlanIDs["120"])
}

func TestBuildDelayOverview_NameKeywordSubstring(t *testing.T) {
	snap := demoSnapshot()
	result := BuildDelayOverview(snap, demoTimeline(snap), "THÁNG")

	assert.Equal(t, map[string]bool{"12": true}, result.MatchedPlanIDs)
}

func TestBuildDelayOverview_EmptyKeywordMatchesAll(t *testing.T) {
	snap := demoSnapshot()
	result := BuildDelayOverview(snap, demoTimeline(snap), "  ")

	assert.Len(t, result.MatchedPlanIDs, 3)
}

func TestBuildDelayOverview_LateSortedDescending(t *testing.T) {
	snap := demoSnapshot()
	result := BuildDelayOverview(snap, demoTimeline(snap), "12")

	require.Len(t, result.Groups, 1)
	g := result.Groups[0]
	assert.Equal(t, "Tháng 12", g.PlanName)
	require.Len(t, g.Interns, 2)

	// Bích chậm 4 ngày, Cường chậm 2 ngày.
	assert.Equal(t, "Trần Thị Bích", g.Interns[0].Name)
	assert.Equal(t, 4.0, g.Interns[0].DelayDays)
	assert.Equal(t, "Lê Văn Cường", g.Interns[1].Name)
	assert.Equal(t, 2.0, g.Interns[1].DelayDays)
}

func TestBuildDelayOverview_EarlyTraineeOmitted(t *testing.T) {
	snap := demoSnapshot()
	result := BuildDelayOverview(snap, demoTimeline(snap), "7")

	// Hoàng Anh đang NHANH => không nằm bảng nào.
	assert.Empty(t, result.Groups)
	assert.Empty(t, result.MismatchPlanIDs)
	// Nhưng kế hoạch vẫn được ghi nhận là có match.
	assert.True(t, result.MatchedPlanIDs["7"])
}

func TestBuildDelayOverview_MismatchBucket(t *testing.T) {
	snap := demoSnapshot()
	snap.Trainees = append(snap.Trainees,
		Trainee{
			Name: "Vũ Thị Em", PlanID: "7", TrainingDays: fptr(10),
			Scores: []ScoreRecord{fullScore("1", "A", 8), fullScore("3", "C", 8)},
		},
		Trainee{
			Name: "Đặng Văn Án", PlanID: "7", TrainingDays: fptr(12),
			Scores: []ScoreRecord{fullScore("3", "C", 6)},
		},
	)

	result := BuildDelayOverview(snap, demoTimeline(snap), "hè")

	assert.True(t, result.MismatchPlanIDs["7"])
	mp := result.MismatchByPlan["7"]
	require.NotNil(t, mp)
	require.Len(t, mp.Rows, 2)

	// Sort theo tên tiếng Việt tăng dần.
	assert.Equal(t, "Đặng Văn Án", mp.Rows[0].Name)
	assert.Equal(t, "Vũ Thị Em", mp.Rows[1].Name)

	// Snapshot điểm phủ đủ mọi môn trong lộ trình.
	row := mp.Rows[1]
	assert.Equal(t, "Vũ Thị Em", row.Name)
	assert.Equal(t, "B", row.MustLearn)
	require.Len(t, row.CourseScores, 3)
	assert.Equal(t, "8.00", row.CourseScores["A"])
	assert.Equal(t, "N/A", row.CourseScores["B"])
	assert.Equal(t, "8.00", row.CourseScores["C"])
}

func TestBuildDelayOverview_EmptyInputs(t *testing.T) {
	snap := demoSnapshot()

	empty := BuildDelayOverview(Snapshot{}, demoTimeline(snap), "12")
	assert.Empty(t, empty.Groups)
	assert.Empty(t, empty.MatchedPlanIDs)

	noTimeline := BuildDelayOverview(snap, nil, "12")
	assert.Empty(t, noTimeline.Groups)
	assert.Empty(t, noTimeline.MatchedPlanIDs)
}

func TestPlansFromTrainees_DedupAndSort(t *testing.T) {
	snap := demoSnapshot()
	refs := PlansFromTrainees(snap)

	require.Len(t, refs, 3)
	// "Batch X" < "Đợt hè" < "Tháng 12" theo collation tiếng Việt.
	assert.Equal(t, "Batch X", refs[0].PlanName)
	assert.Equal(t, "Đợt hè", refs[1].PlanName)
	assert.Equal(t, "Tháng 12", refs[2].PlanName)
}

func TestPlanNameByID_Fallback(t *testing.T) {
	plans := []Plan{{ID: "5", Name: "Đợt thu"}}

	assert.Equal(t, "Đợt thu", PlanNameByID(plans, "5"))
	assert.Equal(t, "Kế hoạch #9", PlanNameByID(plans, "9"))
	assert.Equal(t, "", PlanNameByID(plans, ""))
}
