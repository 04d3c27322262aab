package controller

import (
	"bytes"
	"encoding/json"
	"hr_training_backend/internal/assistant"
	"hr_training_backend/internal/config"
	"hr_training_backend/internal/middleware"
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/service"
	"hr_training_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTrainings struct{ trainings []model.Training }

func (f fixedTrainings) FindAll(uint, model.TrainingStatus) ([]model.Training, error) {
	return f.trainings, nil
}

type fixedPlans struct{ plans []model.RecruitmentPlan }

func (f fixedPlans) FindAll(model.PlanStatus) ([]model.RecruitmentPlan, error) {
	return f.plans, nil
}

type fixedCourses struct{ courses []model.Course }

func (f fixedCourses) FindAllOrdered() ([]model.Course, error) {
	return f.courses, nil
}

func fullScore(v float64) *float64 { return &v }

// assistantTestRouter dựng router thật (auth middleware + controller) trên
// dữ liệu cố định: một TTS đang chậm 25 ngày so với lộ trình.
func assistantTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "assistant-test-secret-32-characters"
	cfg.JWT.ExpireTime = time.Hour

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
			TheoryScore:   fullScore(8),
			PracticeScore: fullScore(7),
			AttitudeScore: fullScore(9),
		}},
	}
	training.ID = 1

	svc := service.NewAssistantService(
		fixedTrainings{[]model.Training{training}},
		fixedPlans{[]model.RecruitmentPlan{plan}},
		fixedCourses{[]model.Course{course}},
		nil,
	)
	ctrl := NewAssistantController(svc)

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	api.GET("/assistant/session", ctrl.GetSession)
	api.POST("/assistant/messages", ctrl.SendMessage)
	api.DELETE("/assistant/session", ctrl.ResetSession)

	user := &model.User{Email: "hr@example.com", Role: model.HR}
	user.ID = 7
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	return r, token
}

func assistantRequest(t *testing.T, r *gin.Engine, token, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	return w
}

func TestAssistantSendMessage_DelayQuery(t *testing.T) {
	r, token := assistantTestRouter(t)

	w := assistantRequest(t, r, token, http.MethodPost, "/api/assistant/messages",
		gin.H{"text": "tts chậm tháng 12"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []assistant.Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)

	msg := resp.Data[0]
	assert.Equal(t, assistant.KindDelayOverview, msg.Kind)
	assert.Equal(t, "tháng 12", msg.Keyword)
	require.Len(t, msg.Overview, 1)
	assert.Equal(t, "Kế hoạch Java tháng 12", msg.Overview[0].PlanName)
	require.Len(t, msg.Overview[0].Interns, 1)
	assert.Equal(t, "Nguyễn Văn A", msg.Overview[0].Interns[0].Name)
	assert.Equal(t, float64(25), msg.Overview[0].Interns[0].DelayDays)
}

func TestAssistantSendMessage_MissingTextRejected(t *testing.T) {
	r, token := assistantTestRouter(t)

	w := assistantRequest(t, r, token, http.MethodPost, "/api/assistant/messages", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssistantSendMessage_RequiresAuth(t *testing.T) {
	r, _ := assistantTestRouter(t)

	body, err := json.Marshal(gin.H{"text": "chậm"})
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAssistantSessionLifecycle(t *testing.T) {
	r, token := assistantTestRouter(t)

	// Phiên mới mở bằng lời chào.
	w := assistantRequest(t, r, token, http.MethodGet, "/api/assistant/session", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data assistant.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Messages, 1)
	assert.Contains(t, resp.Data.Messages[0].Text, "Trợ lý Phúc")

	// Một lượt chat nối thêm cặp câu hỏi / trả lời vào lịch sử.
	w = assistantRequest(t, r, token, http.MethodPost, "/api/assistant/messages",
		gin.H{"text": "chậm"})
	require.Equal(t, http.StatusOK, w.Code)

	w = assistantRequest(t, r, token, http.MethodGet, "/api/assistant/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp.Data = assistant.Session{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Messages, 3)

	// Reset đưa phiên về lại lời chào.
	w = assistantRequest(t, r, token, http.MethodDelete, "/api/assistant/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp.Data = assistant.Session{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Messages, 1)
}
