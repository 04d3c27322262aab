package controller

import (
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/service"
	"hr_training_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TrainingController struct {
	TrainingService  *service.TrainingService
	DashboardService *service.DashboardService
}

func NewTrainingController(trainingService *service.TrainingService, dashboardService *service.DashboardService) *TrainingController {
	return &TrainingController{
		TrainingService:  trainingService,
		DashboardService: dashboardService,
	}
}

// List godoc
// @Summary Danh sách thực tập sinh
// @Tags trainings
// @Security BearerAuth
// @Produce  json
// @Param   planId query int false "Lọc theo kế hoạch tuyển dụng"
// @Param   status query string false "TRAINING / GRADUATED / FAILED / STOPPED"
// @Success 200 {object} util.Response{data=[]model.Training}
// @Router /api/trainings [get]
func (c *TrainingController) List(ctx *gin.Context) {
	planID, _ := strconv.ParseUint(ctx.Query("planId"), 10, 32)
	trainings, err := c.TrainingService.List(uint(planID), model.TrainingStatus(ctx.Query("status")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, trainings)
}

// Get godoc
// @Summary Chi tiết thực tập sinh kèm bảng điểm
// @Tags trainings
// @Security BearerAuth
// @Produce  json
// @Param   id path int true "Training ID"
// @Success 200 {object} util.Response{data=model.Training}
// @Failure 404 {object} util.Response
// @Router /api/trainings/{id} [get]
func (c *TrainingController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	training, err := c.TrainingService.GetByID(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, training)
}

// swagger:model SetScoreRequest
type SetScoreRequest struct {
	CourseID      uint     `json:"courseId" binding:"required"`
	TheoryScore   *float64 `json:"theoryScore"`
	PracticeScore *float64 `json:"practiceScore"`
	AttitudeScore *float64 `json:"attitudeScore"`
}

// SetScore godoc
// @Summary Chấm điểm một môn cho TTS
// @Description Từng thành phần có thể để trống; đã nhập thì phải trong khoảng 0-10
// @Tags trainings
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "Training ID"
// @Param   body body SetScoreRequest true "Điểm ba thành phần"
// @Success 200 {object} util.Response{data=model.Training}
// @Failure 400 {object} util.Response "Điểm ngoài khoảng hoặc TTS đã dừng"
// @Router /api/trainings/{id}/scores [put]
func (c *TrainingController) SetScore(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req SetScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	training, err := c.TrainingService.SetScore(id, req.CourseID, req.TheoryScore, req.PracticeScore, req.AttitudeScore)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	c.DashboardService.Invalidate(ctx.Request.Context())
	util.Success(ctx, training)
}

// swagger:model StopTrainingRequest
type StopTrainingRequest struct {
	Reason string `json:"reason"`
}

// Stop godoc
// @Summary Dừng thực tập
// @Description Số ngày thực tập chốt tại thời điểm dừng
// @Tags trainings
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "Training ID"
// @Param   body body StopTrainingRequest true "Lý do dừng"
// @Success 200 {object} util.Response{data=model.Training}
// @Failure 400 {object} util.Response "Đã dừng trước đó"
// @Router /api/trainings/{id}/stop [put]
func (c *TrainingController) Stop(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req StopTrainingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	training, err := c.TrainingService.Stop(id, req.Reason)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	c.DashboardService.Invalidate(ctx.Request.Context())
	util.Success(ctx, training)
}

// swagger:model UpdateTrainingStatusRequest
type UpdateTrainingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=TRAINING GRADUATED FAILED STOPPED"`
}

// UpdateStatus godoc
// @Summary Đổi trạng thái thực tập sinh
// @Tags trainings
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "Training ID"
// @Param   body body UpdateTrainingStatusRequest true "Trạng thái mới"
// @Success 200 {object} util.Response{data=model.Training}
// @Failure 404 {object} util.Response
// @Router /api/trainings/{id}/status [put]
func (c *TrainingController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req UpdateTrainingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	training, err := c.TrainingService.UpdateStatus(id, model.TrainingStatus(req.Status))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	c.DashboardService.Invalidate(ctx.Request.Context())
	util.Success(ctx, training)
}
