package app

import (
	"context"
	"hr_training_backend/internal/config"
	"hr_training_backend/internal/controller"
	"hr_training_backend/internal/repository"
	"hr_training_backend/internal/service"
	"hr_training_backend/pkg/database"
	"hr_training_backend/pkg/logger"
	"hr_training_backend/pkg/monitoring"
	"hr_training_backend/pkg/security"
	"hr_training_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	course       *repository.CourseRepository
	request      *repository.HRRequestRepository
	plan         *repository.RecruitmentPlanRepository
	candidate    *repository.CandidateRepository
	training     *repository.TrainingRepository
	notification *repository.NotificationRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	course       *service.CourseService
	request      *service.HRRequestService
	plan         *service.RecruitmentPlanService
	candidate    *service.CandidateService
	training     *service.TrainingService
	notification *service.NotificationService
	assistant    *service.AssistantService
	ai           *service.AIService
	dashboard    *service.DashboardService
	report       *service.ReportService
	storage      service.StorageProvider
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	course       *controller.CourseController
	request      *controller.HRRequestController
	plan         *controller.RecruitmentPlanController
	candidate    *controller.CandidateController
	training     *controller.TrainingController
	dashboard    *controller.DashboardController
	notification *controller.NotificationController
	assistant    *controller.AssistantController
	report       *controller.ReportController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig nhận config mới từ watcher và chạy các callback đã đăng ký.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		course:       repository.NewCourseRepository(db),
		request:      repository.NewHRRequestRepository(db),
		plan:         repository.NewRecruitmentPlanRepository(db),
		candidate:    repository.NewCandidateRepository(db),
		training:     repository.NewTrainingRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage provider", zap.Error(err))
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course)
	s.request = service.NewHRRequestService(repos.request, repos.notification)
	s.plan = service.NewRecruitmentPlanService(repos.plan, repos.request)
	s.candidate = service.NewCandidateService(repos.candidate, repos.plan, repos.training, s.storage)
	s.training = service.NewTrainingService(repos.training, repos.course)
	s.notification = service.NewNotificationService(repos.notification)

	s.ai = service.NewAIService(cfg.AI)
	s.assistant = service.NewAssistantService(repos.training, repos.plan, repos.course, s.ai)
	s.dashboard = service.NewDashboardService(repos.candidate, repos.training, repos.plan, repos.request, repos.course, s.assistant, rdb)
	s.report = service.NewReportService(s.assistant, &cfg.Storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.user),
		user:         controller.NewUserController(s.user),
		course:       controller.NewCourseController(s.course),
		request:      controller.NewHRRequestController(s.request),
		plan:         controller.NewRecruitmentPlanController(s.plan),
		candidate:    controller.NewCandidateController(s.candidate),
		training:     controller.NewTrainingController(s.training, s.dashboard),
		dashboard:    controller.NewDashboardController(s.dashboard),
		notification: controller.NewNotificationController(s.notification),
		assistant:    controller.NewAssistantController(s.assistant),
		report:       controller.NewReportController(s.report),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("hr-training-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
