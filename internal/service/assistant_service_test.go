package service

import (
	"hr_training_backend/internal/assistant"
	"hr_training_backend/internal/model"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTrainingSource struct{ trainings []model.Training }

func (s stubTrainingSource) FindAll(uint, model.TrainingStatus) ([]model.Training, error) {
	return s.trainings, nil
}

type stubPlanSource struct{ plans []model.RecruitmentPlan }

func (s stubPlanSource) FindAll(model.PlanStatus) ([]model.RecruitmentPlan, error) {
	return s.plans, nil
}

type stubCourseSource struct{ courses []model.Course }

func (s stubCourseSource) FindAllOrdered() ([]model.Course, error) {
	return s.courses, nil
}

func scorePtr(v float64) *float64 { return &v }

// newStubAssistantService dựng service trên dữ liệu cố định: một môn 5
// ngày, một kế hoạch và một TTS đã học xong môn đó nhưng thực tập 30 ngày,
// tức đang CHẬM.
func newStubAssistantService() *AssistantService {
	course := model.Course{CourseName: "Java cơ bản", DurationDays: 5, OrderIndex: 1}
	course.ID = 1

	plan := model.RecruitmentPlan{Name: "Kế hoạch Java tháng 12"}
	plan.ID = 1

	training := model.Training{
		TraineeName:       "Nguyễn Văn A",
		RecruitmentPlanID: 1,
		StartDate:         time.Now().AddDate(0, 0, -29),
		Scores: []model.TrainingScore{{
			CourseID:      1,
			CourseName:    "Java cơ bản",
			TheoryScore:   scorePtr(8),
			PracticeScore: scorePtr(7),
			AttitudeScore: scorePtr(9),
		}},
	}
	training.ID = 1

	return NewAssistantService(
		stubTrainingSource{[]model.Training{training}},
		stubPlanSource{[]model.RecruitmentPlan{plan}},
		stubCourseSource{[]model.Course{course}},
		nil,
	)
}

func TestAssistantServiceHandleMessage_DelayQuery(t *testing.T) {
	svc := newStubAssistantService()

	replies, err := svc.HandleMessage(1, "tts chậm tháng 12")
	require.NoError(t, err)
	require.Len(t, replies, 1)

	msg := replies[0]
	assert.Equal(t, assistant.KindDelayOverview, msg.Kind)
	assert.Equal(t, "tháng 12", msg.Keyword)
	require.Len(t, msg.Overview, 1)
	assert.Equal(t, "Kế hoạch Java tháng 12", msg.Overview[0].PlanName)
	require.Len(t, msg.Overview[0].Interns, 1)
	assert.Equal(t, "Nguyễn Văn A", msg.Overview[0].Interns[0].Name)
	assert.Equal(t, float64(25), msg.Overview[0].Interns[0].DelayDays)
}

func TestAssistantServiceHandleMessage_FallbackWithoutAI(t *testing.T) {
	svc := newStubAssistantService()

	replies, err := svc.HandleMessage(1, "thời tiết hôm nay thế nào")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, assistant.FallbackErrorText, replies[0].Text)

	// Câu trả lời fallback cũng phải nằm trong lịch sử phiên.
	sess := svc.GetSession(1)
	require.Len(t, sess.Messages, 3)
	assert.Equal(t, assistant.FallbackErrorText, sess.Messages[2].Text)
}

func TestAssistantServiceHandleMessage_SerializesTurnsPerUser(t *testing.T) {
	svc := newStubAssistantService()
	const turns = 8

	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.HandleMessage(1, "chậm")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Mỗi lượt ghi đúng một cặp câu hỏi / câu nhắc, không lượt nào chen
	// ngang giữa chừng lượt khác.
	sess := svc.GetSession(1)
	assert.Len(t, sess.Messages, 1+2*turns)
	assert.False(t, sess.AwaitingPick)
}

func TestAssistantServiceResetSession(t *testing.T) {
	svc := newStubAssistantService()

	_, err := svc.HandleMessage(1, "chậm")
	require.NoError(t, err)
	svc.ResetSession(1)

	sess := svc.GetSession(1)
	require.Len(t, sess.Messages, 1)
	assert.Contains(t, sess.Messages[0].Text, "Trợ lý Phúc")
}
