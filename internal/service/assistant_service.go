package service

import (
	"hr_training_backend/internal/assistant"
	"hr_training_backend/internal/model"
	"hr_training_backend/pkg/logger"
	"hr_training_backend/pkg/monitoring"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// sessionTTL: phiên chat không hoạt động quá lâu sẽ bị dọn.
const sessionTTL = 24 * time.Hour

// historyLimit: số message gần nhất gửi kèm khi fallback sang AI chat.
const historyLimit = 10

// Nguồn dữ liệu dựng snapshot cho engine, khớp method của repository
// tương ứng để wire trực tiếp các repo gorm.
type TrainingSource interface {
	FindAll(planID uint, status model.TrainingStatus) ([]model.Training, error)
}

type PlanSource interface {
	FindAll(status model.PlanStatus) ([]model.RecruitmentPlan, error)
}

type CourseSource interface {
	FindAllOrdered() ([]model.Course, error)
}

// assistantSession giữ trạng thái hội thoại của một user. mu bảo đảm mỗi
// phiên chỉ xử lý một lượt tại một thời điểm: lượt sau phải đợi lượt trước
// xong mới được nhận.
type assistantSession struct {
	mu       sync.Mutex
	session  *assistant.Session
	lastUsed time.Time
}

// AssistantService là cầu nối giữa engine hội thoại (gói assistant, thuần
// logic) và phần còn lại của hệ thống: đọc snapshot từ DB, giữ session theo
// user và chuyển câu hỏi ngoài nghiệp vụ sang AI chat.
type AssistantService struct {
	TrainingRepo TrainingSource
	PlanRepo     PlanSource
	CourseRepo   CourseSource
	AI           *AIService

	mu       sync.Mutex
	sessions map[uint]*assistantSession
}

func NewAssistantService(
	trainingRepo TrainingSource,
	planRepo PlanSource,
	courseRepo CourseSource,
	ai *AIService,
) *AssistantService {
	return &AssistantService{
		TrainingRepo: trainingRepo,
		PlanRepo:     planRepo,
		CourseRepo:   courseRepo,
		AI:           ai,
		sessions:     make(map[uint]*assistantSession),
	}
}

// Snapshot đọc trạng thái hiện tại từ DB về dạng engine hiểu được. Số ngày
// thực tập tính đến thời điểm gọi (hoặc lúc dừng với TTS đã dừng).
func (s *AssistantService) Snapshot() (assistant.Snapshot, error) {
	var snap assistant.Snapshot

	trainings, err := s.TrainingRepo.FindAll(0, "")
	if err != nil {
		return snap, err
	}
	plans, err := s.PlanRepo.FindAll("")
	if err != nil {
		return snap, err
	}
	courses, err := s.CourseRepo.FindAllOrdered()
	if err != nil {
		return snap, err
	}

	now := time.Now()
	for _, t := range trainings {
		days := float64(t.TrainingDays(now))
		trainee := assistant.Trainee{
			ID:           strconv.FormatUint(uint64(t.ID), 10),
			Name:         t.TraineeName,
			PlanID:       strconv.FormatUint(uint64(t.RecruitmentPlanID), 10),
			TrainingDays: &days,
		}
		for _, sc := range t.Scores {
			trainee.Scores = append(trainee.Scores, assistant.ScoreRecord{
				CourseID:   strconv.FormatUint(uint64(sc.CourseID), 10),
				CourseName: sc.CourseName,
				Theory:     sc.TheoryScore,
				Practice:   sc.PracticeScore,
				Attitude:   sc.AttitudeScore,
			})
		}
		snap.Trainees = append(snap.Trainees, trainee)
	}

	for _, p := range plans {
		snap.Plans = append(snap.Plans, assistant.Plan{
			ID:   strconv.FormatUint(uint64(p.ID), 10),
			Name: p.Name,
		})
	}

	for _, c := range courses {
		snap.Courses = append(snap.Courses, assistant.Course{
			ID:           strconv.FormatUint(uint64(c.ID), 10),
			Name:         c.CourseName,
			DurationDays: float64(c.DurationDays),
		})
	}

	return snap, nil
}

func (s *AssistantService) getSession(userID uint) *assistantSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, entry := range s.sessions {
		if now.Sub(entry.lastUsed) > sessionTTL {
			delete(s.sessions, id)
		}
	}

	entry, ok := s.sessions[userID]
	if !ok {
		entry = &assistantSession{session: assistant.NewSession()}
		s.sessions[userID] = entry
	}
	entry.lastUsed = now
	return entry
}

// GetSession trả về bản chụp phiên chat hiện tại của user (tạo mới kèm lời
// chào nếu chưa có). Trả về copy để đọc không đụng lượt đang xử lý dở.
func (s *AssistantService) GetSession(userID uint) *assistant.Session {
	entry := s.getSession(userID)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	view := *entry.session
	view.Messages = append([]assistant.Message(nil), entry.session.Messages...)
	return &view
}

// ResetSession xoá phiên chat, lần hỏi tiếp theo bắt đầu lại từ lời chào.
func (s *AssistantService) ResetSession(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// chatHistory trích các message text gần nhất làm ngữ cảnh cho AI fallback.
func chatHistory(sess *assistant.Session) []AIChatMessage {
	var history []AIChatMessage
	for _, m := range sess.Messages {
		if m.Kind != assistant.KindText {
			continue
		}
		role := "assistant"
		if m.Sender == assistant.SenderUser {
			role = "user"
		}
		history = append(history, AIChatMessage{Role: role, Content: m.Text})
	}
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	return history
}

// HandleMessage xử lý một lượt nhập của user: engine nghiệp vụ trước, AI
// chat sau. Luôn trả về danh sách message trả lời (có thể rỗng khi input
// trống).
func (s *AssistantService) HandleMessage(userID uint, text string) ([]assistant.Message, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	// Giữ khoá phiên trọn lượt (kể cả nhánh fallback AI): lượt kế tiếp
	// của cùng user chỉ được nhận sau khi lượt này ghi xong trạng thái.
	entry := s.getSession(userID)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	sess := entry.session
	engine := assistant.NewEngine(snap)

	replies, needFallback := engine.HandleTurn(sess, text)
	if !needFallback {
		path := "dialog"
		for _, m := range replies {
			if m.Kind == assistant.KindDelayOverview || m.Kind == assistant.KindSequenceMismatch {
				path = "delay_query"
				break
			}
		}
		if len(replies) > 0 {
			monitoring.AssistantTurns.WithLabelValues(path).Inc()
		}
		return replies, nil
	}

	monitoring.AssistantTurns.WithLabelValues("llm_fallback").Inc()

	if s.AI == nil || !s.AI.Enabled() {
		return []assistant.Message{sess.AppendAssistantText(assistant.FallbackErrorText)}, nil
	}

	history := chatHistory(sess)
	// Bỏ message user vừa append khỏi history, nó được gửi riêng làm prompt.
	if len(history) > 0 {
		history = history[:len(history)-1]
	}

	answer, err := s.AI.Chat(text, history)
	if err != nil {
		logger.Log.Warn("Assistant AI fallback failed", zap.Error(err))
		return []assistant.Message{sess.AppendAssistantText(assistant.FallbackErrorText)}, nil
	}

	return []assistant.Message{sess.AppendAssistantText(answer)}, nil
}
