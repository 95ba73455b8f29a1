package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"go.uber.org/zap"
)

// Claims carrega o id do usuário dono da sessão.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// KeyManager assina e verifica tokens de sessão (HS256).
type KeyManager struct {
	secretKey []byte
	logger    *zap.Logger
}

// NewKeyManager cria um gerenciador de chaves com o segredo informado.
func NewKeyManager(secretKey []byte, logger *zap.Logger) (*KeyManager, error) {
	if len(secretKey) < 32 {
		return nil, errors.New("jwt secret key muito curta")
	}

	return &KeyManager{
		secretKey: secretKey,
		logger:    logger,
	}, nil
}

// GenerateToken emite um token assinado contendo o id do usuário.
func (km *KeyManager) GenerateToken(userID uint, duration time.Duration) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(km.secretKey)
	if err != nil {
		km.logger.Error("falha ao gerar token JWT", zap.Error(err))
		return "", err
	}

	return tokenString, nil
}

// VerifyToken valida assinatura e formato do token. A existência de uma
// sessão persistida para o token é verificada em outra camada; aqui só a
// validade criptográfica é atestada.
func (km *KeyManager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return km.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
