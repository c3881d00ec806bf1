package database

import (
	"fmt"
	"time"

	"github.com/binehq/bine-server/internal/config"
	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	var logLevel gormlogger.LogLevel
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	} else {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		SkipDefaultTransaction: true, // Skip wrapping every operation in a transaction
		PrepareStmt:            true, // Cache prepared statements
		TranslateError:         true, // Surface unique violations as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("Database connected successfully")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.FriendRelation{},
		&models.BookCategory{},
		&models.Book{},
		&models.BookNote{},
		&models.BookNoteLikeit{},
		&models.BookNoteReply{},
	)

	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// SeedCategories inserts the age-band book categories the recommendation
// query depends on. Existing rows are left untouched.
func SeedCategories(db *gorm.DB) error {
	logger.Info("Checking for book categories...")

	for _, name := range models.AgeBandCategories() {
		var existing models.BookCategory
		err := db.Where("name = ?", name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&models.BookCategory{Name: name}).Error; err != nil {
				return fmt.Errorf("failed to seed category %q: %w", name, err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to check category %q: %w", name, err)
		}
	}

	return nil
}
