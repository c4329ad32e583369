package auth

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/lonamusi/trending-collections/internal/config"
	"github.com/lonamusi/trending-collections/internal/database/users"
	"github.com/lonamusi/trending-collections/internal/entities"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailInvalid       = errors.New("invalid email format")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore defines the credential store operations the service needs.
type UserStore interface {
	Create(email, passwordHash string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
}

// Service handles registration, login, and the delete authorization check.
type Service struct {
	users  UserStore
	tokens *TokenIssuer
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(store UserStore, tokens *TokenIssuer, cfg config.Auth) *Service {
	return &Service{
		users:  store,
		tokens: tokens,
		config: cfg,
	}
}

// Register creates a new non-admin user. The email format is validated
// before any store access. Matching is exact and case-sensitive, so case
// variants of the same address register as separate accounts.
func (s *Service) Register(email, password string) (*entities.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	// Validate email format and length (RFC 5321 limit is 254)
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(email, passwordHash)
	if err != nil {
		if errors.Is(err, users.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login validates credentials and issues a bearer token. Unknown email and
// wrong password both return ErrInvalidCredentials so the caller cannot
// tell which case occurred.
func (s *Service) Login(email, password string) (*entities.User, string, error) {
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return nil, "", ErrEmailInvalid
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// CanDelete reports whether the identity is allowed to delete trends.
// The admin flag is re-read from the store at decision time rather than
// trusted from token claims, so demoting a user takes effect immediately
// even though their already-issued tokens stay structurally valid.
func (s *Service) CanDelete(email string) bool {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return false
	}
	return user.IsAdmin
}
