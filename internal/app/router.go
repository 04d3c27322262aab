package app

import (
	"hr_training_backend/docs"
	"hr_training_backend/internal/config"
	"hr_training_backend/internal/middleware"
	"hr_training_backend/internal/model"

	"hr_training_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerAccountRoutes(api, c)
		a.registerRecruitmentRoutes(api, c)
		a.registerTrainingRoutes(api, c)
		a.registerAssistantRoutes(api, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/auth/verify-email", c.auth.VerifyEmail)
		public.POST("/auth/forgot-password", c.auth.ForgotPassword)
		public.POST("/auth/reset-password", c.auth.ResetPassword)
	}
}

func (a *App) registerAccountRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/auth/me", c.auth.Me)
	api.POST("/auth/change-password", c.auth.ChangePassword)
	api.PUT("/auth/profile", c.user.UpdateProfile)

	api.GET("/notifications", c.notification.List)
	api.GET("/notifications/unread-count", c.notification.UnreadCount)
	api.PUT("/notifications/read-all", c.notification.MarkAllRead)
	api.PUT("/notifications/:id/read", c.notification.MarkRead)

	api.GET("/dashboard/summary", c.dashboard.Summary)
}

func (a *App) registerRecruitmentRoutes(api *gin.RouterGroup, c *controllers) {
	// Yêu cầu tuyển dụng: HR tạo, LEAD duyệt
	api.POST("/hr-requests", middleware.RoleMiddleware(model.HR), c.request.Create)
	api.GET("/hr-requests", c.request.List)
	api.GET("/hr-requests/:id", c.request.Get)
	api.PUT("/hr-requests/:id/approve", middleware.RoleMiddleware(model.Lead), c.request.Approve)
	api.PUT("/hr-requests/:id/reject", middleware.RoleMiddleware(model.Lead), c.request.Reject)

	// Kế hoạch tuyển dụng
	api.POST("/recruitment-plans", middleware.RoleMiddleware(model.HR, model.Lead), c.plan.Create)
	api.GET("/recruitment-plans", c.plan.List)
	api.GET("/recruitment-plans/:id", c.plan.Get)
	api.PUT("/recruitment-plans/:id", middleware.RoleMiddleware(model.HR, model.Lead), c.plan.Update)
	api.PUT("/recruitment-plans/:id/status", middleware.RoleMiddleware(model.Lead), c.plan.UpdateStatus)

	// Ứng viên
	api.POST("/candidates", middleware.RoleMiddleware(model.HR), c.candidate.Create)
	api.GET("/candidates", c.candidate.List)
	api.GET("/candidates/:id", c.candidate.Get)
	api.PUT("/candidates/:id/status", middleware.RoleMiddleware(model.HR), c.candidate.UpdateStatus)
	api.POST("/candidates/:id/cv", middleware.RoleMiddleware(model.HR), c.candidate.UploadCV)
	api.POST("/candidates/:id/start-training", middleware.RoleMiddleware(model.HR, model.QLDT), c.candidate.StartTraining)
}

func (a *App) registerTrainingRoutes(api *gin.RouterGroup, c *controllers) {
	// Lộ trình môn học
	api.GET("/courses", c.course.List)
	api.GET("/courses/:id", c.course.Get)
	api.POST("/courses", middleware.RoleMiddleware(model.QLDT), c.course.Create)
	api.PUT("/courses/reorder", middleware.RoleMiddleware(model.QLDT), c.course.Reorder)
	api.PUT("/courses/:id", middleware.RoleMiddleware(model.QLDT), c.course.Update)
	api.DELETE("/courses/:id", middleware.RoleMiddleware(model.QLDT), c.course.Delete)

	// Thực tập sinh
	api.GET("/trainings", c.training.List)
	api.GET("/trainings/:id", c.training.Get)
	api.PUT("/trainings/:id/scores", middleware.RoleMiddleware(model.QLDT), c.training.SetScore)
	api.PUT("/trainings/:id/stop", middleware.RoleMiddleware(model.QLDT), c.training.Stop)
	api.PUT("/trainings/:id/status", middleware.RoleMiddleware(model.QLDT), c.training.UpdateStatus)

	// Báo cáo PDF
	api.GET("/reports/delay", c.report.DelayReport)
}

func (a *App) registerAssistantRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/assistant/session", c.assistant.GetSession)
	api.POST("/assistant/messages", c.assistant.SendMessage)
	api.DELETE("/assistant/session", c.assistant.ResetSession)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.SuperAdmin))
	{
		admin.GET("/users", c.user.List)
		admin.PUT("/users/:id/role", c.user.SetRole)
		admin.PUT("/users/:id/lock", c.user.SetLocked)
	}
}
