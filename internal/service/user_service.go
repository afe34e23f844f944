package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"companion_rental/internal/model"
	"companion_rental/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidFileFormat = errors.New("invalid file format. only .jpg, .jpeg, .png are allowed")
	ErrFileSizeExceeded  = errors.New("file size exceeds limit")
)

const MaxFileSize = 5 * 1024 * 1024 // 5MB

var allowedPictureExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// UserService covers profile reads and edits plus the admin cascade delete
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.User, error)
	UpdateProfilePicture(ctx context.Context, userID string, file *multipart.FileHeader) (*model.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	repo       repository.UserRepository
	uploadsDir string
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository, uploadsDir string) UserService {
	return &userService{repo: repo, uploadsDir: uploadsDir}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	conflict, err := s.repo.FindConflicting(ctx, userID, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check profile conflicts: %w", err)
	}
	if conflict != nil {
		if conflict.Username == req.Username {
			return nil, ErrUsernameTaken
		}
		return nil, ErrEmailTaken
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Age = req.Age
	user.Height = req.Height
	user.Phone = req.Phone

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update profile in repo: %w", err)
	}
	return user, nil
}

// UpdateProfilePicture stores the upload under <uploads>/profile_pictures and records its path
func (s *userService) UpdateProfilePicture(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*model.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileSizeExceeded
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedPictureExts[ext] {
		return nil, ErrInvalidFileFormat
	}

	pictureDir := filepath.Join(s.uploadsDir, "profile_pictures")
	if err := os.MkdirAll(pictureDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Client file names are never used on disk.
	filePath := filepath.Join(pictureDir, user.ID+"_"+uuid.NewString()+ext)
	relativeFilePath := filepath.ToSlash(filePath)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if err := saveUpload(src, filePath); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProfilePicture(ctx, user.ID, relativeFilePath); err != nil {
		_ = os.Remove(filePath)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile picture path: %w", err)
	}
	user.ProfilePicture = &relativeFilePath
	return user, nil
}

// saveUpload writes src to path. A partial file is removed on failure.
func saveUpload(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file on server: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

// DeleteUser removes the user together with their packages, orders, ratings and messages
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.repo.DeleteCascade(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
