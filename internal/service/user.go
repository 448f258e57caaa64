package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ridesmart/backend/internal/domain"
	"github.com/ridesmart/backend/internal/repo"
)

// Registration carries the fields needed to create an account.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserService implements account registration, login and profile updates.
type UserService struct {
	users      repo.UserRepo
	bcryptCost int
}

// NewUserService constructs a UserService. bcryptCost outside bcrypt's valid
// range falls back to bcrypt.DefaultCost.
func NewUserService(users repo.UserRepo, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// Register creates a new account with a bcrypt-hashed password.
// Returns domain.ErrValidation for missing fields and domain.ErrIntegrity if
// the email is already registered.
func (s *UserService) Register(ctx context.Context, reg Registration) (domain.User, error) {
	user := domain.User{
		FirstName: strings.TrimSpace(reg.FirstName),
		LastName:  strings.TrimSpace(reg.LastName),
		Email:     normalizeEmail(reg.Email),
	}
	if err := validateProfile(user); err != nil {
		return domain.User{}, err
	}
	if reg.Password == "" {
		return domain.User{}, fmt.Errorf("%w: missing required fields: password", domain.ErrValidation)
	}

	exists, err := s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}
	if exists {
		return domain.User{}, fmt.Errorf("%w: user already exists", domain.ErrIntegrity)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.bcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}
	return created, nil
}

// Login returns the user whose email and password match.
// Unknown emails and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: missing required fields: email, password", domain.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns a single user. Returns domain.ErrNotFound if absent.
func (s *UserService) GetByID(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByID: %w", err)
	}
	return user, nil
}

// Update changes a user's name and email.
// Returns domain.ErrValidation, domain.ErrNotFound or domain.ErrIntegrity
// (email taken by another account).
func (s *UserService) Update(ctx context.Context, user domain.User) (domain.User, error) {
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	user.Email = normalizeEmail(user.Email)
	if err := validateProfile(user); err != nil {
		return domain.User{}, err
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Update: %w", err)
	}
	return updated, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateProfile(u domain.User) error {
	var missing []string
	if u.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if u.LastName == "" {
		missing = append(missing, "last_name")
	}
	if u.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
