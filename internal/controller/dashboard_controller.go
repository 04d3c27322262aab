package controller

import (
	"hr_training_backend/internal/service"
	"hr_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Summary godoc
// @Summary Số liệu tổng quan trang chủ
// @Description Đếm theo trạng thái và phân bố tiến độ TTS (cache 60s)
// @Tags dashboard
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} util.Response{data=service.DashboardSummary}
// @Router /api/dashboard/summary [get]
func (c *DashboardController) Summary(ctx *gin.Context) {
	summary, err := c.DashboardService.Summary(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
