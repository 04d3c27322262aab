package controller

import (
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/service"
	"hr_training_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type RecruitmentPlanController struct {
	PlanService *service.RecruitmentPlanService
}

func NewRecruitmentPlanController(planService *service.RecruitmentPlanService) *RecruitmentPlanController {
	return &RecruitmentPlanController{PlanService: planService}
}

// swagger:model CreatePlanRequest
type CreatePlanRequest struct {
	Name      string     `json:"name" binding:"required"`
	RequestID uint       `json:"requestId" binding:"required"`
	Quantity  int        `json:"quantity" binding:"required,min=1"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// Create godoc
// @Summary Lập kế hoạch tuyển dụng từ yêu cầu đã duyệt
// @Tags recruitment-plans
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   body body CreatePlanRequest true "Thông tin kế hoạch"
// @Success 201 {object} util.Response{data=model.RecruitmentPlan}
// @Failure 400 {object} util.Response "Yêu cầu chưa được duyệt"
// @Router /api/recruitment-plans [post]
func (c *RecruitmentPlanController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan := &model.RecruitmentPlan{
		Name:      req.Name,
		RequestID: req.RequestID,
		Quantity:  req.Quantity,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedBy: claims.UserID,
	}
	if err := c.PlanService.Create(plan); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, plan)
}

// List godoc
// @Summary Danh sách kế hoạch tuyển dụng
// @Tags recruitment-plans
// @Security BearerAuth
// @Produce  json
// @Param   status query string false "NEW / APPROVED / DONE / CANCELED"
// @Success 200 {object} util.Response{data=[]model.RecruitmentPlan}
// @Router /api/recruitment-plans [get]
func (c *RecruitmentPlanController) List(ctx *gin.Context) {
	plans, err := c.PlanService.List(model.PlanStatus(ctx.Query("status")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, plans)
}

// Get godoc
// @Summary Chi tiết kế hoạch tuyển dụng
// @Tags recruitment-plans
// @Security BearerAuth
// @Produce  json
// @Param   id path int true "Plan ID"
// @Success 200 {object} util.Response{data=model.RecruitmentPlan}
// @Failure 404 {object} util.Response
// @Router /api/recruitment-plans/{id} [get]
func (c *RecruitmentPlanController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	plan, err := c.PlanService.GetByID(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}

// swagger:model UpdatePlanRequest
type UpdatePlanRequest struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
}

// Update godoc
// @Summary Sửa kế hoạch tuyển dụng
// @Tags recruitment-plans
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "Plan ID"
// @Param   body body UpdatePlanRequest true "Thông tin cập nhật"
// @Success 200 {object} util.Response{data=model.RecruitmentPlan}
// @Failure 404 {object} util.Response
// @Router /api/recruitment-plans/{id} [put]
func (c *RecruitmentPlanController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PlanService.Update(id, req.Name, req.Quantity)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}

// swagger:model UpdatePlanStatusRequest
type UpdatePlanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=NEW APPROVED DONE CANCELED"`
}

// UpdateStatus godoc
// @Summary Đổi trạng thái kế hoạch tuyển dụng
// @Tags recruitment-plans
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "Plan ID"
// @Param   body body UpdatePlanStatusRequest true "Trạng thái mới"
// @Success 200 {object} util.Response{data=model.RecruitmentPlan}
// @Failure 404 {object} util.Response
// @Router /api/recruitment-plans/{id}/status [put]
func (c *RecruitmentPlanController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req UpdatePlanStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PlanService.UpdateStatus(id, model.PlanStatus(req.Status))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}
