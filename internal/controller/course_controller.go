package controller

import (
	"hr_training_backend/internal/model"
	"hr_training_backend/internal/service"
	"hr_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// List godoc
// @Summary Lộ trình môn học theo thứ tự
// @Tags courses
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.CourseService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Get godoc
// @Summary Chi tiết môn học
// @Tags courses
// @Security BearerAuth
// @Produce  json
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.CourseService.GetByID(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	CourseName   string `json:"courseName" binding:"required"`
	Description  string `json:"description"`
	DurationDays int    `json:"durationDays" binding:"min=0"`
}

// Create godoc
// @Summary Thêm môn vào cuối lộ trình
// @Tags courses
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   body body CreateCourseRequest true "Thông tin môn học"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		CourseName:   req.CourseName,
		Description:  req.Description,
		DurationDays: req.DurationDays,
	}
	if err := c.CourseService.Create(course); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// swagger:model UpdateCourseRequest
type UpdateCourseRequest struct {
	CourseName   string `json:"courseName"`
	Description  string `json:"description"`
	DurationDays *int   `json:"durationDays"`
}

// Update godoc
// @Summary Sửa thông tin môn học
// @Tags courses
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "Course ID"
// @Param   body body UpdateCourseRequest true "Thông tin cập nhật"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(id, req.CourseName, req.Description, req.DurationDays)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Delete godoc
// @Summary Xoá môn học
// @Tags courses
// @Security BearerAuth
// @Produce  json
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.CourseService.Delete(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// swagger:model ReorderCoursesRequest
type ReorderCoursesRequest struct {
	OrderedIDs []uint `json:"orderedIds" binding:"required"`
}

// Reorder godoc
// @Summary Sắp xếp lại lộ trình môn học
// @Description Danh sách ID phải là hoán vị đúng của toàn bộ môn hiện có
// @Tags courses
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   body body ReorderCoursesRequest true "Thứ tự mới"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Failure 400 {object} util.Response
// @Router /api/courses/reorder [put]
func (c *CourseController) Reorder(ctx *gin.Context) {
	var req ReorderCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CourseService.Reorder(req.OrderedIDs); err != nil {
		handleServiceError(ctx, err)
		return
	}

	courses, err := c.CourseService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}
