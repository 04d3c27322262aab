package service

import (
	"context"
	"errors"
	"fmt"
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/repository"
	"hr_training_backend/internal/util"
	"io"
	"net/mail"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Số điện thoại VN: bắt đầu bằng 0, đúng 10 chữ số.
var phonePattern = regexp.MustCompile(`^0[0-9]{9}$`)

type CandidateService struct {
	CandidateRepo *repository.CandidateRepository
	PlanRepo      *repository.RecruitmentPlanRepository
	TrainingRepo  *repository.TrainingRepository
	Storage       StorageProvider
}

func NewCandidateService(
	candidateRepo *repository.CandidateRepository,
	planRepo *repository.RecruitmentPlanRepository,
	trainingRepo *repository.TrainingRepository,
	storage StorageProvider,
) *CandidateService {
	return &CandidateService{
		CandidateRepo: candidateRepo,
		PlanRepo:      planRepo,
		TrainingRepo:  trainingRepo,
		Storage:       storage,
	}
}

func (s *CandidateService) validate(candidate *model.Candidate) error {
	if candidate.FullName == "" {
		return errors.New("họ tên ứng viên không được để trống")
	}
	if _, err := mail.ParseAddress(candidate.Email); err != nil {
		return errors.New("email ứng viên không hợp lệ")
	}
	if !phonePattern.MatchString(candidate.PhoneNumber) {
		return errors.New("số điện thoại phải gồm 10 chữ số và bắt đầu bằng 0")
	}
	if candidate.InterviewDate.Before(time.Now()) {
		return util.ErrInterviewInPast
	}
	return nil
}

func (s *CandidateService) Create(candidate *model.Candidate) error {
	if _, err := s.PlanRepo.FindByID(candidate.PlanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrPlanNotFound
		}
		return err
	}
	if err := s.validate(candidate); err != nil {
		return err
	}

	candidate.Status = model.CandidateNew
	return s.CandidateRepo.Create(candidate)
}

func (s *CandidateService) GetByID(id uint) (*model.Candidate, error) {
	candidate, err := s.CandidateRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCandidateNotFound
	}
	return candidate, err
}

func (s *CandidateService) List(planID uint, status model.CandidateStatus) ([]model.Candidate, error) {
	return s.CandidateRepo.FindAll(planID, status)
}

func (s *CandidateService) UpdateStatus(id uint, status model.CandidateStatus, note string) (*model.Candidate, error) {
	candidate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	candidate.Status = status
	if note != "" {
		candidate.Note = note
	}
	if err := s.CandidateRepo.Update(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// UploadCV lưu file CV qua storage provider và gắn link vào hồ sơ ứng viên.
func (s *CandidateService) UploadCV(ctx context.Context, id uint, originalName string, reader io.Reader, size int64, contentType string) (*model.Candidate, error) {
	candidate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(originalName)
	filename := fmt.Sprintf("cv/%d_%s%s", candidate.ID, uuid.New().String(), ext)
	url, err := s.Storage.Upload(ctx, filename, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	candidate.CVLink = url
	if err := s.CandidateRepo.Update(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// StartTraining chuyển ứng viên PASSED thành thực tập sinh. Tên TTS chụp
// lại từ hồ sơ ứng viên tại thời điểm chuyển.
func (s *CandidateService) StartTraining(id uint, startDate time.Time) (*model.Training, error) {
	candidate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if candidate.Status != model.CandidatePassed {
		return nil, util.ErrCandidateNotPassed
	}

	if startDate.IsZero() {
		startDate = time.Now()
	}
	training := &model.Training{
		CandidateID:       candidate.ID,
		TraineeName:       candidate.FullName,
		RecruitmentPlanID: candidate.PlanID,
		StartDate:         startDate,
		Status:            model.TrainingActive,
	}
	if err := s.TrainingRepo.Create(training); err != nil {
		return nil, err
	}
	return training, nil
}
