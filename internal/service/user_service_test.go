package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"companion_rental/internal/model"
	"companion_rental/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("PUT", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(MaxFileSize))
	_, header, err := req.FormFile(field)
	require.NoError(t, err)
	return header
}

func TestUserService_UpdateProfilePicture(t *testing.T) {
	dir := t.TempDir()
	repo := new(mockUserRepo)
	svc := NewUserService(repo, dir)

	repo.On("FindByID", mock.Anything, "u1").Return(&model.User{ID: "u1"}, nil)
	repo.On("UpdateProfilePicture", mock.Anything, "u1", mock.AnythingOfType("string")).Return(nil)

	user, err := svc.UpdateProfilePicture(context.Background(), "u1", multipartFile(t, "profile_picture", "me.PNG", []byte("png-bytes")))
	require.NoError(t, err)
	require.NotNil(t, user.ProfilePicture)
	assert.True(t, strings.HasSuffix(*user.ProfilePicture, ".png"))

	saved, err := os.ReadFile(filepath.FromSlash(*user.ProfilePicture))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(saved))
}

func TestSaveUpload_RemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.png")
	src := io.MultiReader(strings.NewReader("first half"), iotest.ErrReader(errors.New("connection reset")))

	err := saveUpload(src, path)
	assert.ErrorContains(t, err, "connection reset")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.png")
	require.NoError(t, saveUpload(strings.NewReader("png-bytes"), path))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(saved))
}

func TestUserService_UpdateProfilePicture_RejectsExtension(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, t.TempDir())
	repo.On("FindByID", mock.Anything, "u1").Return(&model.User{ID: "u1"}, nil)

	_, err := svc.UpdateProfilePicture(context.Background(), "u1", multipartFile(t, "profile_picture", "notes.pdf", []byte("%PDF")))
	assert.ErrorIs(t, err, ErrInvalidFileFormat)
	repo.AssertNotCalled(t, "UpdateProfilePicture", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfile_Conflict(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, t.TempDir())
	req := model.UpdateProfileRequest{Username: "bob", Email: "alice@example.com", Age: 30, Height: 170, Phone: "0812"}

	repo.On("FindByID", mock.Anything, "u1").Return(&model.User{ID: "u1", Username: "alice"}, nil)
	repo.On("FindConflicting", mock.Anything, "u1", "bob", "alice@example.com").Return(&model.User{ID: "u2", Username: "bob"}, nil)

	_, err := svc.UpdateProfile(context.Background(), "u1", req)
	assert.ErrorIs(t, err, ErrUsernameTaken)
	repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo, t.TempDir())
	repo.On("DeleteCascade", mock.Anything, "u1").Return(nil)
	repo.On("DeleteCascade", mock.Anything, "ghost").Return(repository.ErrNotFound)

	assert.NoError(t, svc.DeleteUser(context.Background(), "u1"))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "ghost"), ErrUserNotFound)
}
