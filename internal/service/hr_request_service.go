package service

import (
	"errors"
	"fmt"
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/repository"
	"hr_training_backend/internal/util"

	"gorm.io/gorm"
)

type HRRequestService struct {
	RequestRepo      *repository.HRRequestRepository
	NotificationRepo *repository.NotificationRepository
}

func NewHRRequestService(requestRepo *repository.HRRequestRepository, notificationRepo *repository.NotificationRepository) *HRRequestService {
	return &HRRequestService{
		RequestRepo:      requestRepo,
		NotificationRepo: notificationRepo,
	}
}

func (s *HRRequestService) Create(req *model.HRRequest) error {
	req.Status = model.RequestPending
	if err := s.RequestRepo.Create(req); err != nil {
		return err
	}

	// LEAD nhận thông báo có yêu cầu mới chờ duyệt
	s.NotificationRepo.NotifyRole(model.Lead,
		"Yêu cầu tuyển dụng mới",
		fmt.Sprintf("Yêu cầu tuyển %d vị trí %s đang chờ duyệt.", req.Quantity, req.Position))
	return nil
}

func (s *HRRequestService) GetByID(id uint) (*model.HRRequest, error) {
	req, err := s.RequestRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRequestNotFound
	}
	return req, err
}

func (s *HRRequestService) List(status model.RequestStatus) ([]model.HRRequest, error) {
	return s.RequestRepo.FindAll(status)
}

func (s *HRRequestService) Approve(id uint) (*model.HRRequest, error) {
	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	req.Status = model.RequestApproved
	req.RejectReason = ""
	if err := s.RequestRepo.Update(req); err != nil {
		return nil, err
	}

	s.NotificationRepo.Create(&model.Notification{
		UserID:  req.CreatedBy,
		Title:   "Yêu cầu tuyển dụng được duyệt",
		Content: fmt.Sprintf("Yêu cầu tuyển vị trí %s đã được duyệt.", req.Position),
	})
	return req, nil
}

func (s *HRRequestService) Reject(id uint, reason string) (*model.HRRequest, error) {
	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	req.Status = model.RequestRejected
	req.RejectReason = reason
	if err := s.RequestRepo.Update(req); err != nil {
		return nil, err
	}

	s.NotificationRepo.Create(&model.Notification{
		UserID:  req.CreatedBy,
		Title:   "Yêu cầu tuyển dụng bị từ chối",
		Content: fmt.Sprintf("Yêu cầu tuyển vị trí %s bị từ chối: %s", req.Position, reason),
	})
	return req, nil
}
