package controller

import (
	"errors"
	"hr_training_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleServiceError map lỗi nghiệp vụ sang HTTP status. Lỗi không nhận
// diện được coi là lỗi hệ thống và được log lại.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrRequestNotFound),
		errors.Is(err, util.ErrPlanNotFound),
		errors.Is(err, util.ErrCandidateNotFound),
		errors.Is(err, util.ErrTrainingNotFound),
		errors.Is(err, util.ErrCourseNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrAccountLocked),
		errors.Is(err, util.ErrEmailNotVerified),
		errors.Is(err, util.ErrPermissionDenied):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrRequestNotApproved),
		errors.Is(err, util.ErrCandidateNotPassed),
		errors.Is(err, util.ErrTrainingStopped),
		errors.Is(err, util.ErrInvalidResetToken),
		errors.Is(err, util.ErrInvalidVerifyToken),
		errors.Is(err, util.ErrInterviewInPast),
		errors.Is(err, util.ErrScoreOutOfRange),
		errors.Is(err, util.ErrReorderListMismatch):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
