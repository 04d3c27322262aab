package controller

import (
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/service"
	"hr_training_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Giới hạn dung lượng CV upload.
const maxCVSize = 10 << 20

type CandidateController struct {
	CandidateService *service.CandidateService
}

func NewCandidateController(candidateService *service.CandidateService) *CandidateController {
	return &CandidateController{CandidateService: candidateService}
}

// swagger:model CreateCandidateRequest
type CreateCandidateRequest struct {
	FullName      string    `json:"fullName" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	PhoneNumber   string    `json:"phoneNumber" binding:"required"`
	InterviewDate time.Time `json:"interviewDate" binding:"required"`
	PlanID        uint      `json:"planId" binding:"required"`
	Note          string    `json:"note"`
}

// Create godoc
// @Summary Thêm ứng viên vào kế hoạch tuyển dụng
// @Tags candidates
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   body body CreateCandidateRequest true "Thông tin ứng viên"
// @Success 201 {object} util.Response{data=model.Candidate}
// @Failure 400 {object} util.Response "Validate thất bại (SĐT, email, ngày phỏng vấn)"
// @Router /api/candidates [post]
func (c *CandidateController) Create(ctx *gin.Context) {
	var req CreateCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	candidate := &model.Candidate{
		FullName:      req.FullName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		InterviewDate: req.InterviewDate,
		PlanID:        req.PlanID,
		Note:          req.Note,
	}
	if err := c.CandidateService.Create(candidate); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, candidate)
}

// List godoc
// @Summary Danh sách ứng viên
// @Tags candidates
// @Security BearerAuth
// @Produce  json
// @Param   planId query int false "Lọc theo kế hoạch"
// @Param   status query string false "NEW / INTERVIEWED / PASSED / FAILED / CANCELED"
// @Success 200 {object} util.Response{data=[]model.Candidate}
// @Router /api/candidates [get]
func (c *CandidateController) List(ctx *gin.Context) {
	planID, _ := strconv.ParseUint(ctx.Query("planId"), 10, 32)
	candidates, err := c.CandidateService.List(uint(planID), model.CandidateStatus(ctx.Query("status")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, candidates)
}

// Get godoc
// @Summary Chi tiết ứng viên
// @Tags candidates
// @Security BearerAuth
// @Produce  json
// @Param   id path int true "Candidate ID"
// @Success 200 {object} util.Response{data=model.Candidate}
// @Failure 404 {object} util.Response
// @Router /api/candidates/{id} [get]
func (c *CandidateController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	candidate, err := c.CandidateService.GetByID(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, candidate)
}

// swagger:model UpdateCandidateStatusRequest
type UpdateCandidateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=NEW INTERVIEWED PASSED FAILED CANCELED"`
	Note   string `json:"note"`
}

// UpdateStatus godoc
// @Summary Cập nhật kết quả phỏng vấn
// @Tags candidates
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "Candidate ID"
// @Param   body body UpdateCandidateStatusRequest true "Trạng thái mới"
// @Success 200 {object} util.Response{data=model.Candidate}
// @Failure 404 {object} util.Response
// @Router /api/candidates/{id}/status [put]
func (c *CandidateController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req UpdateCandidateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	candidate, err := c.CandidateService.UpdateStatus(id, model.CandidateStatus(req.Status), req.Note)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, candidate)
}

// UploadCV godoc
// @Summary Upload CV ứng viên
// @Tags candidates
// @Security BearerAuth
// @Accept  multipart/form-data
// @Produce  json
// @Param   id path int true "Candidate ID"
// @Param   file formData file true "File CV"
// @Success 200 {object} util.Response{data=model.Candidate}
// @Failure 400 {object} util.Response
// @Router /api/candidates/{id}/cv [post]
func (c *CandidateController) UploadCV(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if file.Size > maxCVSize {
		util.BadRequest(ctx, "file quá lớn, tối đa 10MB")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	candidate, err := c.CandidateService.UploadCV(
		ctx.Request.Context(), id, file.Filename, src, file.Size,
		file.Header.Get("Content-Type"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, candidate)
}

// swagger:model StartTrainingRequest
type StartTrainingRequest struct {
	StartDate *time.Time `json:"startDate"`
}

// StartTraining godoc
// @Summary Chuyển ứng viên PASSED thành thực tập sinh
// @Tags candidates
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "Candidate ID"
// @Param   body body StartTrainingRequest true "Ngày bắt đầu (mặc định hôm nay)"
// @Success 201 {object} util.Response{data=model.Training}
// @Failure 400 {object} util.Response "Ứng viên chưa đạt phỏng vấn"
// @Router /api/candidates/{id}/start-training [post]
func (c *CandidateController) StartTraining(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req StartTrainingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	start := time.Time{}
	if req.StartDate != nil {
		start = *req.StartDate
	}
	training, err := c.CandidateService.StartTraining(id, start)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, training)
}
