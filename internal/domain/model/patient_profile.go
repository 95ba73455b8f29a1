package model

import "time"

// PatientProfile guarda os dados pessoais do paciente. No máximo um por
// usuário; o POST do perfil é um upsert chaveado por user_id.
type PatientProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	CPF       string    `gorm:"not null;size:11;column:cpf" json:"cpf"`
	Birthday  time.Time `gorm:"not null" json:"birthday"`
	Phone     string    `gorm:"not null;size:15" json:"phone"`
	Blood     string    `gorm:"not null;size:3" json:"blood"`
	Sex       string    `gorm:"not null;size:20" json:"sex"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName define o nome da tabela
func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// OwnerID retorna o usuário dono do registro
func (p PatientProfile) OwnerID() uint {
	return p.UserID
}
