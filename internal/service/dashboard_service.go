package service

import (
	"context"
	"encoding/json"
	"errors"
	"hr_training_backend/internal/assistant"
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/repository"
	"hr_training_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dashboardCacheKey = "dashboard:summary"
const dashboardCacheTTL = 60 * time.Second

// DashboardSummary là số liệu tổng quan cho trang chủ: đếm theo trạng thái
// và phân bố tiến độ TTS do engine đánh giá.
type DashboardSummary struct {
	TotalCandidates int64     `json:"totalCandidates"`
	TotalTrainings  int64     `json:"totalTrainings"`
	ActiveTrainings int64     `json:"activeTrainings"`
	TotalPlans      int64     `json:"totalPlans"`
	PendingRequests int64     `json:"pendingRequests"`
	TotalCourses    int64     `json:"totalCourses"`
	LateInterns     int       `json:"lateInterns"`
	OnTimeInterns   int       `json:"onTimeInterns"`
	EarlyInterns    int       `json:"earlyInterns"`
	UnassessedCount int       `json:"unassessedCount"`
	MismatchedCount int       `json:"mismatchedCount"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

type DashboardService struct {
	CandidateRepo *repository.CandidateRepository
	TrainingRepo  *repository.TrainingRepository
	PlanRepo      *repository.RecruitmentPlanRepository
	RequestRepo   *repository.HRRequestRepository
	CourseRepo    *repository.CourseRepository
	Assistant     *AssistantService
	Redis         *redis.Client
}

func NewDashboardService(
	candidateRepo *repository.CandidateRepository,
	trainingRepo *repository.TrainingRepository,
	planRepo *repository.RecruitmentPlanRepository,
	requestRepo *repository.HRRequestRepository,
	courseRepo *repository.CourseRepository,
	assistantService *AssistantService,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		CandidateRepo: candidateRepo,
		TrainingRepo:  trainingRepo,
		PlanRepo:      planRepo,
		RequestRepo:   requestRepo,
		CourseRepo:    courseRepo,
		Assistant:     assistantService,
		Redis:         rdb,
	}
}

// Summary trả về số liệu tổng quan, cache 60s trên Redis vì phần đánh giá
// tiến độ phải quét toàn bộ trainings.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, dashboardCacheKey).Result()
		if err == nil {
			var cached DashboardSummary
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("Dashboard cache read failed", zap.Error(err))
		}
	}

	summary, err := s.compute()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.Redis.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("Dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return summary, nil
}

// Invalidate xoá cache, gọi sau khi chấm điểm hoặc đổi trạng thái TTS.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, dashboardCacheKey)
	}
}

func (s *DashboardService) compute() (*DashboardSummary, error) {
	summary := &DashboardSummary{GeneratedAt: time.Now()}

	var err error
	if summary.TotalCandidates, err = s.CandidateRepo.Count(); err != nil {
		return nil, err
	}
	if summary.TotalTrainings, err = s.TrainingRepo.Count(); err != nil {
		return nil, err
	}
	if summary.ActiveTrainings, err = s.TrainingRepo.CountByStatus(model.TrainingActive); err != nil {
		return nil, err
	}
	if summary.TotalPlans, err = s.PlanRepo.Count(); err != nil {
		return nil, err
	}
	if summary.PendingRequests, err = s.RequestRepo.CountByStatus(model.RequestPending); err != nil {
		return nil, err
	}
	if summary.TotalCourses, err = s.CourseRepo.Count(); err != nil {
		return nil, err
	}

	snap, err := s.Assistant.Snapshot()
	if err != nil {
		return nil, err
	}
	timeline := assistant.BuildTimeline(snap.Courses)

	for _, trainee := range snap.Trainees {
		phase := assistant.EvaluateProgress(trainee, timeline)
		switch {
		case phase == nil:
			summary.UnassessedCount++
		case phase.InvalidSequence:
			summary.MismatchedCount++
		case phase.Status == assistant.StatusLate:
			summary.LateInterns++
		case phase.Status == assistant.StatusEarly:
			summary.EarlyInterns++
		default:
			summary.OnTimeInterns++
		}
	}

	return summary, nil
}
