// Package auth implementa cadastro, login e a resolução de bearer token
// para usuário em cada requisição protegida.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/domain/repository"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"github.com/vidasync/health-api/pkg/security"
	"go.uber.org/zap"
)

// Service gerencia operações de autenticação
type Service struct {
	keyManager    *security.KeyManager
	userRepo      repository.UserRepository
	tokenDuration time.Duration
	logger        *zap.Logger
}

// NewService cria um novo serviço de autenticação
func NewService(keyManager *security.KeyManager, userRepo repository.UserRepository, tokenDuration time.Duration, logger *zap.Logger) *Service {
	return &Service{
		keyManager:    keyManager,
		userRepo:      userRepo,
		tokenDuration: tokenDuration,
		logger:        logger,
	}
}

// SignUp cadastra um novo usuário. Email repetido falha com
// ErrDuplicateEmail. Sem senha, uma credencial aleatória é armazenada no
// lugar do hash, viabilizando contas sem senha.
func (s *Service) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("tentativa de cadastro com email já existente", zap.String("email", email))
		return nil, apperrors.ErrDuplicateEmail
	}

	var credential string
	if password != "" {
		credential, err = security.HashPassword(password)
		if err != nil {
			s.logger.Error("falha ao gerar hash da senha", zap.Error(err))
			return nil, err
		}
	} else {
		credential = security.RandomCredential()
	}

	user := &model.User{
		Email:    email,
		Password: credential,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("usuário cadastrado", zap.Uint("user_id", user.ID))
	return user, nil
}

// SignIn autentica por email e senha, emite um token assinado com o id
// do usuário e persiste a sessão correspondente.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !security.CheckPassword(user.Password, password) {
		s.logger.Warn("falha na autenticação", zap.String("email", email))
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.keyManager.GenerateToken(user.ID, s.tokenDuration)
	if err != nil {
		s.logger.Error("falha ao gerar token", zap.Uint("user_id", user.ID), zap.Error(err))
		return "", err
	}

	session := &model.Session{
		Token:  token,
		UserID: user.ID,
	}
	if err := s.userRepo.CreateSession(ctx, session); err != nil {
		return "", err
	}

	s.logger.Info("login bem-sucedido", zap.Uint("user_id", user.ID))
	return token, nil
}

// Authenticate resolve um bearer token para o id do usuário dono da
// sessão. As três variantes de falha são distintas: token ausente,
// token criptograficamente inválido e token válido sem sessão persistida
// (revogado). Na borda HTTP as três viram 401.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (uint, error) {
	if rawToken == "" {
		return 0, apperrors.ErrMissingToken
	}

	claims, err := s.keyManager.VerifyToken(rawToken)
	if err != nil {
		return 0, err
	}

	session, err := s.userRepo.GetSessionByToken(ctx, rawToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.ErrNoActiveSession
		}
		return 0, err
	}

	// A sessão é criada a partir do token assinado; divergência aqui
	// indica corrupção do armazenamento, não uma requisição inválida.
	if session.UserID != claims.UserID {
		s.logger.Error("sessão não corresponde ao token",
			zap.Uint("session_user", session.UserID),
			zap.Uint("token_user", claims.UserID))
		return 0, apperrors.ErrNoActiveSession
	}

	return claims.UserID, nil
}
