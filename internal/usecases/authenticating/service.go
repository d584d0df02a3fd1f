package authenticating

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(ctx context.Context, uid string) (*domain.Profile, error)
	ListUsers(ctx context.Context) ([]domain.UserRecord, error)
	CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, requesterUID, uid string) error
	EnsureAdmin(ctx context.Context, email, password string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      config.Auth
	now      func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now for token issuing and validation.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(userRepo repository.UserRepository, cfg config.Auth, opts ...Option) Authenticator {
	s := &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		return "", NewAuthError(fmt.Errorf("%w: %v", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "failed to look up user")
	}

	if user == nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.UID, "invalid email or password")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "failed to sign token")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UID:   user.UID,
		Email: user.Email,
		Roles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// ValidateToken verifies signature and expiry, tolerating the configured clock
// skew on the time-based claims.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(s.cfg.ClockSkew),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.UID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GetUserProfile(ctx context.Context, uid string) (*domain.Profile, error) {
	user, err := s.userRepo.GetUserByUID(ctx, uid)
	if err != nil {
		logrus.WithError(err).WithField("user_id", uid).Error("Failed to load user profile")
		return nil, NewAuthError(fmt.Errorf("%w: %v", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "failed to load profile")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, uid, "user not found")
	}

	profile := user.Profile()
	return &profile, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.UserRecord, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, NewAuthError(fmt.Errorf("%w: %v", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "failed to list users")
	}

	records := make([]domain.UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, u.Record())
	}
	return records, nil
}

func (s *Service) CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	email := handleEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email and password are required")
	}

	if len(req.Password) < minPasswordLength {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, fmt.Sprintf("password must have at least %d characters", minPasswordLength))
	}

	roles, err := domain.ParseRoleClaims(req.Roles)
	if err != nil {
		return nil, NewAuthError(ErrUnknownRole, apiErrors.ErrUnknownRole, err.Error())
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(fmt.Errorf("%w: %v", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "failed to look up user")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "failed to hash password")
	}

	user := &domain.User{
		UID:          utils.NewUUID(),
		Email:        email,
		DisplayName:  utils.SanitizeText(req.DisplayName),
		PasswordHash: string(hashedPassword),
		Roles:        roles,
	}

	user, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "email already registered")
		}
		return nil, NewAuthError(fmt.Errorf("%w: %v", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "failed to create user")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.UID,
		"roles":   user.Roles,
	}).Info("User created")

	return user, nil
}

// UpdateUser changes the display name when given. A non-nil role set replaces
// the stored roles; an empty one clears them.
func (s *Service) UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) (*domain.User, error) {
	if req.UID == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "uid is required")
	}

	var roles []domain.Role
	if req.Roles != nil {
		parsed, err := domain.ParseRoleClaims(req.Roles)
		if err != nil {
			return nil, NewUserAuthError(ErrUnknownRole, apiErrors.ErrUnknownRole, req.UID, err.Error())
		}
		roles = parsed
	}

	user, err := s.userRepo.GetUserByUID(ctx, req.UID)
	if err != nil {
		return nil, NewAuthError(fmt.Errorf("%w: %v", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "failed to look up user")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, req.UID, "user not found")
	}

	if req.DisplayName != nil {
		user.DisplayName = utils.SanitizeText(*req.DisplayName)
	}
	if req.Roles != nil {
		user.Roles = roles
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, NewUserAuthError(fmt.Errorf("%w: %v", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, user.UID, "failed to update user")
	}

	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, requesterUID, uid string) error {
	if uid == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "uid is required")
	}

	if requesterUID == uid {
		return NewUserAuthError(ErrSelfDeletion, apiErrors.ErrSelfDeletion, uid, "you cannot delete your own account")
	}

	deleted, err := s.userRepo.DeleteUser(ctx, uid)
	if err != nil {
		return NewUserAuthError(fmt.Errorf("%w: %v", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, uid, "failed to delete user")
	}
	if !deleted {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, uid, "user not found")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    uid,
		"deleted_by": requesterUID,
	}).Info("User deleted")

	return nil
}

// EnsureAdmin creates an admin account for email unless one already exists.
// Empty credentials are a no-op.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		return fmt.Errorf("look up bootstrap admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	_, err = s.CreateUser(ctx, &domain.CreateUserRequest{
		Email:       email,
		Password:    password,
		DisplayName: "Administrator",
		Roles:       domain.RoleClaims([]domain.Role{domain.RoleAdmin}),
	})
	return err
}
