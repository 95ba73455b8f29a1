package security

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost segue o custo do sistema original (12 rounds).
const BcryptCost = 12

// HashPassword gera o hash irreversível da senha. O texto plano nunca
// é persistido.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compara a senha informada com o hash armazenado.
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// RandomCredential gera uma credencial opaca para cadastros sem senha.
// O valor nunca é comparado pelo fluxo normal de login; só precisa ser
// imprevisível e nunca colidir entre duas chamadas.
func RandomCredential() string {
	return uuid.NewString()
}
