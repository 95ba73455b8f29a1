package model

import "time"

// User é o dono de todos os registros de saúde. Quando o cadastro é feito
// sem senha, Password guarda uma credencial aleatória opaca que nunca
// passa pelo fluxo de login.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName define o nome da tabela
func (User) TableName() string {
	return "users"
}

// Session prova que um token segue válido: a assinatura do JWT é condição
// necessária, a existência da linha é a condição suficiente. Um usuário
// pode manter várias sessões simultâneas.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null;type:text" json:"token"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName define o nome da tabela
func (Session) TableName() string {
	return "sessions"
}
