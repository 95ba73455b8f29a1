package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"go.uber.org/zap/zaptest"
)

var testSecret = []byte("segredo-de-teste-com-32-bytes!!!")

func TestNewKeyManagerSegredoCurto(t *testing.T) {
	_, err := NewKeyManager([]byte("curto"), zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	km, err := NewKeyManager(testSecret, zaptest.NewLogger(t))
	require.NoError(t, err)

	token, err := km.GenerateToken(42, time.Hour)
	require.NoError(t, err)

	claims, err := km.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestVerifyTokenExpirado(t *testing.T) {
	km, err := NewKeyManager(testSecret, zaptest.NewLogger(t))
	require.NoError(t, err)

	token, err := km.GenerateToken(42, -time.Minute)
	require.NoError(t, err)

	_, err = km.VerifyToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyTokenOutroSegredo(t *testing.T) {
	km, err := NewKeyManager(testSecret, zaptest.NewLogger(t))
	require.NoError(t, err)

	outro, err := NewKeyManager([]byte("outro-segredo-tambem-com-32-byte"), zaptest.NewLogger(t))
	require.NoError(t, err)

	token, err := outro.GenerateToken(42, time.Hour)
	require.NoError(t, err)

	_, err = km.VerifyToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestHashECheckPassword(t *testing.T) {
	hashed, err := HashPassword("senha-forte")
	require.NoError(t, err)

	assert.NotEqual(t, "senha-forte", hashed)
	assert.True(t, CheckPassword(hashed, "senha-forte"))
	assert.False(t, CheckPassword(hashed, "senha-errada"))
}

func TestRandomCredentialNaoColide(t *testing.T) {
	a := RandomCredential()
	b := RandomCredential()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
