package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// gen_random_uuid + tipos range para a constraint de exclusão
	db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`)
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Única garantia de não-sobreposição do sistema: dois intervalos
	// não-cancelados do mesmo barbeiro nunca coexistem. Violações
	// chegam como SQLSTATE 23P01.
	db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint
                WHERE conname = 'appointments_no_overlap'
            ) THEN
                ALTER TABLE appointments
                    ADD CONSTRAINT appointments_no_overlap
                    EXCLUDE USING gist (
                        barber_id WITH =,
                        tstzrange(start_time, end_time) WITH &&
                    )
                    WHERE (status <> 'cancelled');
            END IF;
        END$$;
    `)

	return db
}
