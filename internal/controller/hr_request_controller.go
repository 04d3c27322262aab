package controller

import (
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/service"
	"hr_training_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type HRRequestController struct {
	RequestService *service.HRRequestService
}

func NewHRRequestController(requestService *service.HRRequestService) *HRRequestController {
	return &HRRequestController{RequestService: requestService}
}

// swagger:model CreateHRRequestRequest
type CreateHRRequestRequest struct {
	Position string     `json:"position" binding:"required"`
	Quantity int        `json:"quantity" binding:"required,min=1"`
	Reason   string     `json:"reason"`
	Deadline *time.Time `json:"deadline"`
}

// Create godoc
// @Summary HR tạo yêu cầu tuyển dụng
// @Tags hr-requests
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   body body CreateHRRequestRequest true "Thông tin yêu cầu"
// @Success 201 {object} util.Response{data=model.HRRequest}
// @Router /api/hr-requests [post]
func (c *HRRequestController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateHRRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	request := &model.HRRequest{
		Position:  req.Position,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		Deadline:  req.Deadline,
		CreatedBy: claims.UserID,
	}
	if err := c.RequestService.Create(request); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, request)
}

// List godoc
// @Summary Danh sách yêu cầu tuyển dụng
// @Tags hr-requests
// @Security BearerAuth
// @Produce  json
// @Param   status query string false "PENDING / APPROVED / REJECTED"
// @Success 200 {object} util.Response{data=[]model.HRRequest}
// @Router /api/hr-requests [get]
func (c *HRRequestController) List(ctx *gin.Context) {
	requests, err := c.RequestService.List(model.RequestStatus(ctx.Query("status")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, requests)
}

// Get godoc
// @Summary Chi tiết yêu cầu tuyển dụng
// @Tags hr-requests
// @Security BearerAuth
// @Produce  json
// @Param   id path int true "Request ID"
// @Success 200 {object} util.Response{data=model.HRRequest}
// @Failure 404 {object} util.Response
// @Router /api/hr-requests/{id} [get]
func (c *HRRequestController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	request, err := c.RequestService.GetByID(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, request)
}

// Approve godoc
// @Summary LEAD duyệt yêu cầu tuyển dụng
// @Tags hr-requests
// @Security BearerAuth
// @Produce  json
// @Param   id path int true "Request ID"
// @Success 200 {object} util.Response{data=model.HRRequest}
// @Failure 404 {object} util.Response
// @Router /api/hr-requests/{id}/approve [put]
func (c *HRRequestController) Approve(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	request, err := c.RequestService.Approve(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, request)
}

// swagger:model RejectHRRequestRequest
type RejectHRRequestRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Reject godoc
// @Summary LEAD từ chối yêu cầu tuyển dụng
// @Tags hr-requests
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "Request ID"
// @Param   body body RejectHRRequestRequest true "Lý do từ chối"
// @Success 200 {object} util.Response{data=model.HRRequest}
// @Failure 404 {object} util.Response
// @Router /api/hr-requests/{id}/reject [put]
func (c *HRRequestController) Reject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req RejectHRRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	request, err := c.RequestService.Reject(id, req.Reason)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, request)
}
