// Package accounts is the credential store: it bootstraps the admin account,
// registers users and authenticates login attempts against bcrypt hashes.
package accounts

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"analystDashboard/internal/auth"
	"analystDashboard/internal/db"
	"analystDashboard/models"
	"analystDashboard/repository"
)

// Options configures a Store.
type Options struct {
	BcryptCost int
	// AdminInitialPassword seeds the bootstrap admin. When empty a random
	// password is generated and logged once, on the run that creates the row.
	AdminInitialPassword string
	Logger               *slog.Logger
}

// Store owns the users table.
type Store struct {
	users         repository.UserRepositoryI
	cost          int
	adminPassword string
	logger        *slog.Logger
}

func NewStore(users repository.UserRepositoryI, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		users:         users,
		cost:          opts.BcryptCost,
		adminPassword: opts.AdminInitialPassword,
		logger:        logger.With("component", "accounts"),
	}
}

// Initialize creates the bootstrap admin account if it does not exist yet.
// Tables are created by the migrations that run when the database is opened.
// An existing admin row is left untouched; any other storage error is returned.
func (s *Store) Initialize(ctx context.Context) error {
	password, generated := s.adminPassword, false
	if password == "" {
		p, err := generatePassword()
		if err != nil {
			return fmt.Errorf("generate admin password: %w", err)
		}
		password, generated = p, true
	}
	hash, err := auth.HashPassword(password, s.cost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.NewAdmin(models.BootstrapAdminUsername)
	_, err = s.users.Create(ctx, admin.Username, hash, admin.Role)
	switch {
	case err == nil:
		if generated {
			s.logger.WarnContext(ctx, "FIRST RUN: created bootstrap admin account with a generated password; sign in and store it now, it will not be shown again",
				"username", admin.Username, "password", password)
		} else {
			s.logger.WarnContext(ctx, "FIRST RUN: created bootstrap admin account from ADMIN_INITIAL_PASSWORD", "username", admin.Username)
		}
		return nil
	case db.IsUniqueViolation(err):
		s.logger.DebugContext(ctx, "bootstrap admin already present", "username", admin.Username)
		return nil
	default:
		return fmt.Errorf("bootstrap admin: %w", err)
	}
}

var (
	// ErrInvalidInput is returned for an empty username or an unusable password.
	ErrInvalidInput = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when the username already has an account.
	ErrUsernameTaken = errors.New("username already exists")
)

// Register creates a user account with role "user". It reports false when the
// input is empty, the username is taken, or storage fails.
func (s *Store) Register(ctx context.Context, username, password string) bool {
	return s.CreateUser(ctx, username, password) == nil
}

// CreateUser is Register with the reason for a refusal: ErrInvalidInput,
// ErrUsernameTaken, or a wrapped storage error.
func (s *Store) CreateUser(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrInvalidInput
	}
	hash, err := auth.HashPassword(password, s.cost)
	if err != nil {
		s.logger.WarnContext(ctx, "register: password rejected", "username", username, "error", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.users.Create(ctx, username, hash, models.RoleUser); err != nil {
		if db.IsUniqueViolation(err) {
			s.logger.InfoContext(ctx, "register: username taken", "username", username)
			return ErrUsernameTaken
		}
		s.logger.ErrorContext(ctx, "register: storage error", "username", username, "error", err)
		return fmt.Errorf("create user: %w", err)
	}
	s.logger.InfoContext(ctx, "user registered", "username", username)
	return nil
}

// Login returns the stored role when password matches username's hash.
// Unknown users, wrong passwords and lookup failures all report false so the
// caller cannot tell which one happened.
func (s *Store) Login(ctx context.Context, username, password string) (models.Role, bool) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		s.logger.ErrorContext(ctx, "login: lookup failed", "error", err)
		auth.EqualizeTiming(password, s.cost)
		return "", false
	}
	if u == nil {
		auth.EqualizeTiming(password, s.cost)
		return "", false
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", false
	}
	return u.Role, true
}

func generatePassword() (string, error) {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
