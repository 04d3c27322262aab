package util

import "errors"

var (
	ErrUserNotFound        = errors.New("người dùng không tồn tại")
	ErrEmailRegistered     = errors.New("email đã được đăng ký")
	ErrAccountLocked       = errors.New("tài khoản đã bị khoá")
	ErrEmailNotVerified    = errors.New("email chưa được xác thực")
	ErrInvalidCredentials  = errors.New("email hoặc mật khẩu không đúng")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrRequestNotFound     = errors.New("yêu cầu tuyển dụng không tồn tại")
	ErrRequestNotApproved  = errors.New("yêu cầu tuyển dụng chưa được duyệt")
	ErrPlanNotFound        = errors.New("kế hoạch tuyển dụng không tồn tại")
	ErrCandidateNotFound   = errors.New("ứng viên không tồn tại")
	ErrCandidateNotPassed  = errors.New("ứng viên chưa đạt phỏng vấn")
	ErrTrainingNotFound    = errors.New("hồ sơ thực tập không tồn tại")
	ErrTrainingStopped     = errors.New("hồ sơ thực tập đã dừng")
	ErrCourseNotFound      = errors.New("môn học không tồn tại")
	ErrInvalidResetToken   = errors.New("token đặt lại mật khẩu không hợp lệ hoặc đã hết hạn")
	ErrInvalidVerifyToken  = errors.New("token xác thực email không hợp lệ")
	ErrInterviewInPast     = errors.New("thời gian hẹn phỏng vấn phải ở trong tương lai")
	ErrScoreOutOfRange     = errors.New("điểm phải nằm trong khoảng 0-10")
	ErrReorderListMismatch = errors.New("danh sách sắp xếp không khớp với môn học hiện có")
)
