package controller

import (
	"hr_training_backend/internal/service"
	"hr_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	AssistantService *service.AssistantService
}

func NewAssistantController(assistantService *service.AssistantService) *AssistantController {
	return &AssistantController{AssistantService: assistantService}
}

// GetSession godoc
// @Summary Phiên chat hiện tại với Trợ lý Phúc
// @Description Trả về toàn bộ lịch sử message (tạo phiên mới kèm lời chào nếu chưa có)
// @Tags assistant
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} util.Response{data=assistant.Session}
// @Router /api/assistant/session [get]
func (c *AssistantController) GetSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.AssistantService.GetSession(claims.UserID))
}

// swagger:model AssistantMessageRequest
type AssistantMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// SendMessage godoc
// @Summary Gửi một câu cho Trợ lý Phúc
// @Description Engine nghiệp vụ xử lý trước ("chậm <kế hoạch>", chọn theo số); câu ngoài phạm vi chuyển sang AI chat
// @Tags assistant
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   body body AssistantMessageRequest true "Nội dung chat"
// @Success 200 {object} util.Response{data=[]assistant.Message}
// @Failure 400 {object} util.Response
// @Router /api/assistant/messages [post]
func (c *AssistantController) SendMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AssistantMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	replies, err := c.AssistantService.HandleMessage(claims.UserID, req.Text)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, replies)
}

// ResetSession godoc
// @Summary Xoá phiên chat, bắt đầu lại từ lời chào
// @Tags assistant
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} util.Response{data=assistant.Session}
// @Router /api/assistant/session [delete]
func (c *AssistantController) ResetSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	c.AssistantService.ResetSession(claims.UserID)
	util.Success(ctx, c.AssistantService.GetSession(claims.UserID))
}
