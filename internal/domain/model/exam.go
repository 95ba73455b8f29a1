package model

import "time"

// Exam é um exame registrado pelo usuário. UserID é imutável após a
// criação; toda leitura por id, atualização e remoção passa pela checagem
// de posse.
type Exam struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	ExamType    string    `gorm:"not null;size:255" json:"examType"`
	Description string    `gorm:"not null" json:"description"`
	Local       string    `gorm:"not null;size:255" json:"local"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName define o nome da tabela
func (Exam) TableName() string {
	return "exams"
}

// OwnerID retorna o usuário dono do registro
func (e Exam) OwnerID() uint {
	return e.UserID
}
