package model

import "time"

// Vaccination é uma dose de vacina registrada pelo usuário.
type Vaccination struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	Name         string    `gorm:"not null;size:255" json:"name"`
	Dose         string    `gorm:"not null;size:255" json:"dose"`
	Manufacturer string    `gorm:"not null;size:255" json:"manufacturer"`
	Lot          string    `gorm:"not null;size:255" json:"lot"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName define o nome da tabela
func (Vaccination) TableName() string {
	return "vaccinations"
}

// OwnerID retorna o usuário dono do registro
func (v Vaccination) OwnerID() uint {
	return v.UserID
}
