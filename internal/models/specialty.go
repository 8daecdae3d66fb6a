package models

type Specialty struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

// PhysicianSpecialty é a tabela de junção médico x especialidade.
type PhysicianSpecialty struct {
	PhysicianID uint `gorm:"primaryKey"`
	SpecialtyID uint `gorm:"primaryKey"`

	Physician Physician `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Specialty Specialty `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
