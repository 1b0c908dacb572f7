package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cannaconscious/booking-api/internal/config"
	"github.com/cannaconscious/booking-api/internal/models"
)

func NewDB(cfg *config.Config, log *logrus.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Appointment{},
		&models.ContactMessage{},
		&models.AuditLog{},
	); err != nil {
		log.WithError(err).Fatal("failed to migrate")
	}

	// storage-level backstop for the booking invariant: at most one
	// non-canceled appointment per (date, slot)
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (appointment_date, time_slot)
        WHERE status <> 'canceled'
    `)

	return db
}
