package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/consultorio/internal/config"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

// DefaultSpecialties é a lista usada pelo comando seed-specialties quando
// nenhum nome é informado.
var DefaultSpecialties = []string{
	"Cardiologia",
	"Clínica Geral",
	"Dermatologia",
	"Endocrinologia",
	"Ginecologia",
	"Neurologia",
	"Ortopedia",
	"Pediatria",
	"Psiquiatria",
}

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Physician{},
		&models.Specialty{},
		&models.PhysicianSpecialty{},
		&models.Patient{},
		&models.Session{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedSpecialties insere as especialidades que ainda não existem e devolve
// quantas foram criadas.
func SeedSpecialties(db *gorm.DB, names []string) (int64, error) {
	if len(names) == 0 {
		names = DefaultSpecialties
	}

	rows := make([]models.Specialty, 0, len(names))
	for _, n := range names {
		rows = append(rows, models.Specialty{Name: n})
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return 0, fmt.Errorf("seed specialties: %w", res.Error)
	}
	return res.RowsAffected, nil
}
