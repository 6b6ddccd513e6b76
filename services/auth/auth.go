package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"pickuphoops/services/user"
	"pickuphoops/validator"
)

var (
	EmailTaken         = errors.New("email is already registered")
	InvalidCredentials = errors.New("invalid email or password")
)

type Service interface {
	// Register creates a profile for a new email/password credential pair and
	// returns the profile along with a signed session token.
	Register(ctx context.Context, email, password, displayName string) (*user.User, string, error)
	// Login exchanges credentials for the stored profile and a session token.
	Login(ctx context.Context, email, password string) (*user.User, string, error)
}

type service struct {
	users     user.Service
	jwtSecret string
}

var _ Service = (*service)(nil)

func NewService(users user.Service, jwtSecret string) Service {
	return &service{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, email, password, displayName string) (*user.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", InvalidCredentials
	}
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, user.NotFound) {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, "", EmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.users.CreateUser(ctx, &user.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := validator.GenerateToken(u.ID, s.jwtSecret)
	if err != nil {
		log.Error().Err(err).Str("userId", u.ID).Msg("failed to sign session token")
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, user.NotFound) {
		return nil, "", InvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", InvalidCredentials
	}

	token, err := validator.GenerateToken(u.ID, s.jwtSecret)
	if err != nil {
		log.Error().Err(err).Str("userId", u.ID).Msg("failed to sign session token")
		return nil, "", err
	}
	return u, token, nil
}
