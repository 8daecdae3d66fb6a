// Package testutil reúne helpers compartilhados pelos testes.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/consultorio/internal/db"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

// NewDB abre um sqlite em memória isolado por teste, já migrado.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

// SeedSpecialties cria as especialidades informadas e devolve na mesma ordem.
func SeedSpecialties(t *testing.T, db *gorm.DB, names ...string) []models.Specialty {
	t.Helper()

	out := make([]models.Specialty, 0, len(names))
	for _, n := range names {
		s := models.Specialty{Name: n}
		require.NoError(t, db.Create(&s).Error)
		out = append(out, s)
	}
	return out
}

// CreatePhysician grava um médico com senha já em hash.
func CreatePhysician(t *testing.T, db *gorm.DB, email, loginCode, passwordHash string) *models.Physician {
	t.Helper()

	p := &models.Physician{
		Name:         "Dr. " + email,
		Email:        email,
		PasswordHash: passwordHash,
		LoginCode:    loginCode,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

// CreatePatient grava um paciente do médico informado.
func CreatePatient(t *testing.T, db *gorm.DB, physicianID uint, name string) *models.Patient {
	t.Helper()

	p := &models.Patient{PhysicianID: physicianID, Name: name}
	require.NoError(t, db.Omit("Physician").Create(p).Error)
	return p
}
