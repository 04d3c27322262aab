// @title HR Training Backend API
// @version 1.0
// @description Backend quản lý tuyển dụng và đào tạo thực tập sinh, kèm Trợ lý Phúc theo dõi tiến độ.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"hr_training_backend/internal/app"
	"hr_training_backend/internal/config"
	"hr_training_backend/pkg/configwatcher"
	"hr_training_backend/pkg/logger"
	"log"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "chỉ chạy migrate rồi thoát")
	migrate := flag.Bool("migrate", false, "ép chạy migrate khi khởi động (kể cả release)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	// Theo dõi file config, áp dụng thay đổi không cần restart
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if c, ok := newCfg.(*config.Config); ok {
			application.ApplyConfig(c)
		}
	})

	application.Run()
}
