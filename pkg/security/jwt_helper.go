package security

import (
	"os"
)

// GetJWTSecret obtém o segredo JWT de diferentes fontes na seguinte ordem:
// 1. Variável de ambiente JWT_SECRET_KEY
// 2. Variável de ambiente específica HA_AUTH_JWT_SECRET_KEY
// Sem fallback: em produção o segredo precisa vir do ambiente ou do
// arquivo de configuração carregado pelo chamador.
func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret != "" {
		return []byte(secret)
	}

	secret = os.Getenv("HA_AUTH_JWT_SECRET_KEY")
	if secret != "" {
		return []byte(secret)
	}

	return nil
}
