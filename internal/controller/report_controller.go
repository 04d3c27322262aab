package controller

import (
	"hr_training_backend/internal/service"
	"hr_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// DelayReport godoc
// @Summary Xuất báo cáo PDF thực tập sinh chậm tiến độ
// @Description keyword lọc kế hoạch dùng cú pháp như hỏi trợ lý (tên kế hoạch hoặc số id)
// @Tags reports
// @Security BearerAuth
// @Produce  application/pdf
// @Param   keyword query string false "Tên hoặc id kế hoạch"
// @Success 200 {file} file
// @Failure 500 {object} util.Response
// @Router /api/reports/delay [get]
func (c *ReportController) DelayReport(ctx *gin.Context) {
	data, fileName, err := c.ReportService.DelayReport(ctx.Query("keyword"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+fileName)
	ctx.Data(200, "application/pdf", data)
}
