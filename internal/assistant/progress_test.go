package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

// fullScore tạo dòng điểm đủ 3 thành phần cho một môn.
func fullScore(courseID, courseName string, avgComponent float64) ScoreRecord {
	return ScoreRecord{
		CourseID:   courseID,
		CourseName: courseName,
		Theory:     fptr(avgComponent),
		Practice:   fptr(avgComponent),
		Attitude:   fptr(avgComponent),
	}
}

func abcTimeline() []TimelineEntry {
	return BuildTimeline([]Course{
		{ID: "1", Name: "A", DurationDays: 5},
		{ID: "2", Name: "B", DurationDays: 10},
		{ID: "3", Name: "C", DurationDays: 7},
	})
}

func TestEvaluateProgress_InvalidSequence(t *testing.T) {
	// Đã hoàn thành A và C nhưng thiếu B => lệch thứ tự, phải học lại B.
	trainee := Trainee{
		Name:         "Nguyễn Văn An",
		TrainingDays: fptr(20),
		Scores: []ScoreRecord{
			fullScore("1", "A", 8),
			fullScore("3", "C", 7),
		},
	}

	phase := EvaluateProgress(trainee, abcTimeline())

	require.NotNil(t, phase)
	assert.True(t, phase.InvalidSequence)
	assert.Equal(t, "B", phase.MustCompleteCourseName)
	assert.Equal(t, []string{"C"}, phase.CompletedOutOfOrder)
	assert.Equal(t, []string{"A"}, phase.PrefixCompletedNames)
}

func TestEvaluateProgress_InvalidSequenceCollectsAllViolations(t *testing.T) {
	timeline := BuildTimeline([]Course{
		{ID: "1", Name: "A", DurationDays: 5},
		{ID: "2", Name: "B", DurationDays: 10},
		{ID: "3", Name: "C", DurationDays: 7},
		{ID: "4", Name: "D", DurationDays: 6},
	})
	trainee := Trainee{
		TrainingDays: fptr(3),
		Scores: []ScoreRecord{
			fullScore("3", "C", 9),
			fullScore("4", "D", 9),
		},
	}

	phase := EvaluateProgress(trainee, timeline)

	require.NotNil(t, phase)
	assert.True(t, phase.InvalidSequence)
	assert.Equal(t, "A", phase.MustCompleteCourseName)
	// Quét hết lộ trình, không dừng ở vi phạm đầu tiên.
	assert.Equal(t, []string{"C", "D"}, phase.CompletedOutOfOrder)
	assert.Empty(t, phase.PrefixCompletedNames)
}

func TestEvaluateProgress_InvalidSequenceWinsOverPace(t *testing.T) {
	// Prefix trông rất "đúng tiến độ" nhưng có môn học vượt => vẫn phải trả
	// nhánh lệch thứ tự.
	trainee := Trainee{
		TrainingDays: fptr(5),
		Scores: []ScoreRecord{
			fullScore("1", "A", 8),
			fullScore("3", "C", 8),
		},
	}

	phase := EvaluateProgress(trainee, abcTimeline())

	require.NotNil(t, phase)
	assert.True(t, phase.InvalidSequence)
	assert.Empty(t, phase.Status)
}

func TestEvaluateProgress_Early(t *testing.T) {
	trainee := Trainee{
		TrainingDays: fptr(3),
		Scores:       []ScoreRecord{fullScore("1", "A", 8)},
	}

	phase := EvaluateProgress(trainee, abcTimeline())

	require.NotNil(t, phase)
	assert.False(t, phase.InvalidSequence)
	assert.Equal(t, "A", phase.CurrentCourseName)
	assert.Equal(t, 5.0, phase.TargetDays)
	assert.Equal(t, StatusEarly, phase.Status)
}

func TestEvaluateProgress_Late(t *testing.T) {
	trainee := Trainee{
		TrainingDays: fptr(20),
		Scores: []ScoreRecord{
			fullScore("1", "A", 8),
			fullScore("2", "B", 8),
		},
	}

	phase := EvaluateProgress(trainee, abcTimeline())

	require.NotNil(t, phase)
	assert.Equal(t, StatusLate, phase.Status)
	assert.Equal(t, "B", phase.CurrentCourseName)
	assert.Equal(t, 15.0, phase.TargetDays)
	assert.Equal(t, 5.0, phase.DelayDays())
}

func TestEvaluateProgress_TieIsOnTime(t *testing.T) {
	trainee := Trainee{
		TrainingDays: fptr(5),
		Scores:       []ScoreRecord{fullScore("1", "A", 8)},
	}

	phase := EvaluateProgress(trainee, abcTimeline())

	require.NotNil(t, phase)
	assert.Equal(t, StatusOnTime, phase.Status)
	assert.Equal(t, 0.0, phase.DelayDays())
}

func TestEvaluateProgress_NotEvaluable(t *testing.T) {
	timeline := abcTimeline()

	// Thiếu số ngày thực tập.
	assert.Nil(t, EvaluateProgress(Trainee{Scores: []ScoreRecord{fullScore("1", "A", 8)}}, timeline))

	// Số ngày bằng 0 cũng coi như chưa đánh giá được.
	assert.Nil(t, EvaluateProgress(Trainee{TrainingDays: fptr(0)}, timeline))

	// Lộ trình rỗng.
	assert.Nil(t, EvaluateProgress(Trainee{TrainingDays: fptr(5)}, nil))

	// Chưa hoàn thành môn nào theo thứ tự.
	assert.Nil(t, EvaluateProgress(Trainee{TrainingDays: fptr(5)}, timeline))

	// Điểm chưa đủ 3 thành phần thì môn chưa tính là hoàn thành.
	partial := Trainee{
		TrainingDays: fptr(5),
		Scores: []ScoreRecord{{
			CourseID: "1",
			Theory:   fptr(8),
			Practice: fptr(7),
		}},
	}
	assert.Nil(t, EvaluateProgress(partial, timeline))
}

func TestEvaluateProgress_MatchByNameWhenNoID(t *testing.T) {
	// Dòng điểm không có courseId => so tên không phân biệt hoa thường.
	trainee := Trainee{
		TrainingDays: fptr(3),
		Scores: []ScoreRecord{{
			CourseName: "a",
			Theory:     fptr(8),
			Practice:   fptr(8),
			Attitude:   fptr(8),
		}},
	}

	phase := EvaluateProgress(trainee, abcTimeline())

	require.NotNil(t, phase)
	assert.Equal(t, "A", phase.CurrentCourseName)
}

func TestEvaluateProgress_IDTakesPriorityOverName(t *testing.T) {
	// Cùng có id hai bên: id lệch thì tên trùng cũng không khớp.
	trainee := Trainee{
		TrainingDays: fptr(3),
		Scores: []ScoreRecord{{
			CourseID:   "99",
			CourseName: "A",
			Theory:     fptr(8),
			Practice:   fptr(8),
			Attitude:   fptr(8),
		}},
	}

	assert.Nil(t, EvaluateProgress(trainee, abcTimeline()))
}

func TestDisplayScore(t *testing.T) {
	entry := abcTimeline()[0]

	scored := Trainee{Scores: []ScoreRecord{{
		CourseID: "1",
		Theory:   fptr(8),
		Practice: fptr(7),
		Attitude: fptr(9.5),
	}}}
	assert.Equal(t, "8.17", DisplayScore(scored, entry))

	missing := Trainee{Scores: []ScoreRecord{{
		CourseID: "1",
		Theory:   fptr(8),
	}}}
	assert.Equal(t, "N/A", DisplayScore(missing, entry))

	assert.Equal(t, "N/A", DisplayScore(Trainee{}, entry))
}
