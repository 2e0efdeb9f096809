package service

//go:generate mockgen -destination=../../mocks/mock_credential_store.go -package=mocks github.com/lsweb/lsweb-api/internal/auth/domain CredentialStore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lsweb/lsweb-api/internal/auth/domain"
	"github.com/lsweb/lsweb-api/internal/auth/dto"
	autherrors "github.com/lsweb/lsweb-api/internal/errors"
)

const (
	msgLoginOK      = "Login exitoso"
	msgInvalidCreds = "Credenciales inválidas"
)

type AuthService struct {
	creds       domain.CredentialStore
	tokens      TokenGenerator
	validate    *validator.Validate
	adminEmail  string
	adminSecret string
}

func NewAuthService(creds domain.CredentialStore, tokens TokenGenerator, adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		creds:       creds,
		tokens:      tokens,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		adminEmail:  adminEmail,
		adminSecret: adminPassword,
	}
}

// Login verifies the supplied credentials and issues a session token.
// Unknown email and wrong password produce the same generic response so the
// endpoint cannot be used to enumerate users. Store faults are returned as
// errors and never reach the response body.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	// A malformed email or too-short password can never match a stored
	// credential, so it gets the same generic answer without a store lookup.
	if err := s.validate.Struct(input); err != nil {
		return &dto.LoginResponse{
			Success: false,
			Message: msgInvalidCreds,
		}, nil
	}

	user, err := s.creds.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, &autherrors.StorageError{Op: "get credential", Err: err}
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return &dto.LoginResponse{
			Success: false,
			Message: msgInvalidCreds,
		}, nil
	}

	token, _, err := s.tokens.Generate(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		Success: true,
		Message: msgLoginOK,
		Token:   token,
		User: &dto.UserClaim{
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// EnsureDefaultAdmin creates the default admin credential if it does not
// exist yet. It never touches an existing record, so running it on every
// start is safe. Returns true when a credential was created.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	existing, err := s.creds.GetByEmail(ctx, s.adminEmail)
	if err != nil {
		return false, &autherrors.StorageError{Op: "get admin credential", Err: err}
	}
	if existing != nil {
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.adminSecret), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	admin := &domain.User{
		ID:           uuid.New().String(),
		Email:        s.adminEmail,
		PasswordHash: string(hashed),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.creds.Create(ctx, admin); err != nil {
		return false, &autherrors.StorageError{Op: "create admin credential", Err: err}
	}

	return true, nil
}
