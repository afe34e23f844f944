package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"companion_rental/internal/model"
	"companion_rental/internal/repository"
	"companion_rental/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrForbidden          = errors.New("forbidden")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	ChangePassword(ctx context.Context, identity model.Identity, oldPassword, newPassword string) error
	IsAdmin(ctx context.Context, identity model.Identity) (bool, error)
}

type authService struct {
	userRepo             repository.UserRepository
	jwtUtil              *utils.JWTUtil
	initialAdminUsername string
	now                  func() time.Time
	log                  zerolog.Logger
}

// NewAuthService creates a new AuthService. now is the clock used for token issuance.
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, initialAdminUsername string, now func() time.Time, log zerolog.Logger) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		userRepo:             userRepo,
		jwtUtil:              jwtUtil,
		initialAdminUsername: initialAdminUsername,
		now:                  now,
		log:                  log,
	}
}

// Register creates a new user account with the ordinary role
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if len(req.Password) > utils.MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	existing, err := s.userRepo.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		if existing.Username == req.Username {
			return nil, ErrUsernameTaken
		}
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := model.RoleOrdinary
	if s.initialAdminUsername != "" && req.Username == s.initialAdminUsername {
		role = model.RoleAdmin
		s.log.Info().Str("username", req.Username).Msg("registering initial admin from INITIAL_ADMIN_USERNAME")
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		Age:          req.Age,
		Height:       req.Height,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		Gender:       req.Gender,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still win the unique index.
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Login authenticates a user and returns a signed token valid for one hour
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(model.Identity{UserID: user.ID, Username: user.Username}, s.now())
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

func (s *authService) ChangePassword(ctx context.Context, identity model.Identity, oldPassword, newPassword string) error {
	if len(newPassword) > utils.MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	user, err := s.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		return fmt.Errorf("failed to find user for password change: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// IsAdmin reads the role from the store on every call so demotions apply immediately.
// A user that no longer exists is not an admin.
func (s *authService) IsAdmin(ctx context.Context, identity model.Identity) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to look up role: %w", err)
	}
	if user == nil {
		s.log.Debug().Str("user_id", identity.UserID).Msg("admin check for a user that no longer exists")
		return false, nil
	}
	return user.IsAdmin(), nil
}
