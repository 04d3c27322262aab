package controller

import (
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/service"
	"hr_training_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// List godoc
// @Summary Danh sách người dùng
// @Tags admin
// @Security BearerAuth
// @Produce  json
// @Param   role query string false "Lọc theo vai trò"
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.List(model.UserRole(ctx.Query("role")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// swagger:model SetRoleRequest
type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=SUPER_ADMIN HR LEAD QLDT"`
}

// SetRole godoc
// @Summary Đổi vai trò người dùng
// @Tags admin
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "User ID"
// @Param   body body SetRoleRequest true "Vai trò mới"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 403 {object} util.Response "Không thể hạ SUPER_ADMIN cuối cùng"
// @Router /api/admin/users/{id}/role [put]
func (c *UserController) SetRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req SetRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.SetRole(id, model.UserRole(req.Role))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// swagger:model SetLockedRequest
type SetLockedRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}

// SetLocked godoc
// @Summary Khoá / mở khoá tài khoản
// @Tags admin
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "User ID"
// @Param   body body SetLockedRequest true "Trạng thái khoá"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/admin/users/{id}/lock [put]
func (c *UserController) SetLocked(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req SetLockedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.SetLocked(id, *req.Locked)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
}

// UpdateProfile godoc
// @Summary Cập nhật hồ sơ cá nhân
// @Tags auth
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   body body UpdateProfileRequest true "Thông tin hồ sơ"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/auth/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req.FullName)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
