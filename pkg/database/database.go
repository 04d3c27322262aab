package database

import (
	"fmt"
	"hr_training_backend/internal/config"
	"hr_training_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.HRRequest{},
		&model.RecruitmentPlan{},
		&model.Candidate{},
		&model.Training{},
		&model.TrainingScore{},
		&model.Notification{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Khung chương trình mặc định khi bảng môn học còn trống
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count == 0 {
		defaultCourses := []model.Course{
			{CourseName: "Nhập môn lập trình", DurationDays: 10, OrderIndex: 1},
			{CourseName: "Cơ sở dữ liệu", DurationDays: 7, OrderIndex: 2},
			{CourseName: "Lập trình web", DurationDays: 14, OrderIndex: 3},
			{CourseName: "Dự án tốt nghiệp", DurationDays: 10, OrderIndex: 4},
		}
		for _, course := range defaultCourses {
			db.Create(&course)
		}
	}

	return db, nil
}
