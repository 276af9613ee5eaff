package application

import (
	"errors"
	"strings"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/api/middleware"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/user"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

var (
	ErrEmailTaken          = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDisabled     = errors.New("account is deactivated")
	ErrUserNotFound        = errors.New("user not found")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type AuthService struct {
	Repos *repository.Repos
}

// normalizeEmail canonicalizes an address for lookup and persistence.
// Emails are unique case-insensitively, so every path lower-cases and
// trims before touching the store.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewAuthService(repos *repository.Repos) *AuthService {
	return &AuthService{
		Repos: repos,
	}
}

func (s *AuthService) Register(input user.RegisterInput) (user.User, string, error) {
	email := normalizeEmail(input.Email)
	_, err := s.Repos.User.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, "", err
	}
	if err == nil {
		return user.User{}, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return user.User{}, "", ErrPasswordHashFailure
	}

	usr := user.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         input.Role,
		Name:         input.Name,
		Phone:        input.Phone,
		IsActive:     true,
	}
	if input.Role == user.RoleAgent {
		usr.LicenseNumber = input.LicenseNumber
		usr.Brokerage = input.Brokerage
	}

	if err := s.Repos.User.Create(&usr); err != nil {
		return user.User{}, "", err
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Role)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

// Login authenticates by the (email, role) pair; a token is only
// issued when the stored role matches the requested one. Lookup and
// password failures are indistinguishable to the caller.
func (s *AuthService) Login(input user.LoginInput) (user.User, string, error) {
	usr, err := s.Repos.User.FindByEmailAndRole(normalizeEmail(input.Email), input.Role)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(input.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if !usr.IsActive {
		return user.User{}, "", ErrAccountDisabled
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Role)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *AuthService) Profile(id uint) (user.User, error) {
	usr, err := s.Repos.User.FindByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

// SeedAdmin creates the first admin account when none exists yet.
// Returns true if an account was created.
func (s *AuthService) SeedAdmin(email, password, name string) (bool, error) {
	n, err := s.Repos.User.CountByRole(user.RoleAdmin)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, ErrPasswordHashFailure
	}
	usr := user.User{
		Email:        normalizeEmail(email),
		PasswordHash: string(hashed),
		Role:         user.RoleAdmin,
		Name:         name,
		IsActive:     true,
	}
	if err := s.Repos.User.Create(&usr); err != nil {
		return false, err
	}
	return true, nil
}
